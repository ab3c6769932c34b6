package jsonrpc

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/Michal-Suhak/microservices-communication-benchmark/internal/metrics"
)

const protocol = "jsonrpc"

// HandlerFunc handles a single method call. A non-nil *ErrorObject becomes
// the error member of the response envelope.
type HandlerFunc func(ctx context.Context, params json.RawMessage) (any, *ErrorObject)

// Server dispatches JSON-RPC requests by explicit method lookup. The
// registry is filled once at startup and read-only afterwards.
type Server struct {
	service string
	methods map[string]HandlerFunc
}

func NewServer(service string) *Server {
	return &Server{
		service: service,
		methods: make(map[string]HandlerFunc),
	}
}

func (s *Server) Register(method string, fn HandlerFunc) {
	s.methods[method] = fn
}

// Router exposes the single POST / dispatch endpoint plus the mirrored
// health and metrics endpoints.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Post("/", s.handle)
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{
			"status":  "healthy",
			"service": s.service + "-" + protocol,
		})
	})
	r.Method(http.MethodGet, "/metrics", metrics.Handler())
	return r
}

func (s *Server) handle(w http.ResponseWriter, r *http.Request) {
	gauge := metrics.ActiveConnections.WithLabelValues(protocol, s.service)
	gauge.Inc()
	defer gauge.Dec()

	body, err := io.ReadAll(r.Body)
	if err != nil {
		s.respond(w, errorResponse(nil, CodeParse, "unable to read request body"))
		return
	}
	metrics.ObservePayload(protocol, s.service, metrics.DirectionRequest, len(body))

	var req Request
	if err := json.Unmarshal(body, &req); err != nil {
		s.respond(w, errorResponse(nil, CodeParse, "parse error"))
		return
	}
	if req.Jsonrpc != Version || req.Method == "" {
		s.respond(w, errorResponse(req.ID, CodeInvalidRequest, "invalid request"))
		return
	}

	fn, ok := s.methods[req.Method]
	if !ok {
		s.respond(w, errorResponse(req.ID, CodeMethodNotFound, "method not found"))
		return
	}

	result, rpcErr := fn(r.Context(), req.Params)

	// A request without an id is a notification; no response body is owed.
	if req.ID == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	resp := Response{Jsonrpc: Version, ID: req.ID}
	if rpcErr != nil {
		resp.Error = rpcErr
	} else {
		resp.Result = result
	}
	s.respond(w, resp)
}

func (s *Server) respond(w http.ResponseWriter, resp Response) {
	out, err := json.Marshal(resp)
	if err != nil {
		out, _ = json.Marshal(errorResponse(resp.ID, CodeServerError, "internal error"))
	}
	metrics.ObservePayload(protocol, s.service, metrics.DirectionResponse, len(out))
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(out)
}

func errorResponse(id json.RawMessage, code int, message string) Response {
	if id == nil {
		id = json.RawMessage("null")
	}
	return Response{Jsonrpc: Version, Error: NewError(code, message), ID: id}
}
