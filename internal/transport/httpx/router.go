// Package httpx is the REST binding: chi routers translating JSON-over-HTTP
// requests into the protocol-agnostic cores and mapping fault kinds onto
// HTTP status codes. Business failure stays a 200 with success=false;
// only validation, unavailability, and internal faults become error codes.
package httpx

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/Michal-Suhak/microservices-communication-benchmark/internal/metrics"
)

const protocol = "rest"

// NewRouter builds the service router with the shared health and metrics
// endpoints; mount adds the service-specific routes.
func NewRouter(service string, mount func(r chi.Router)) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(trackConnections(service))

	r.Get("/health", healthHandler(service))
	r.Method(http.MethodGet, "/metrics", metrics.Handler())
	mount(r)
	return r
}

func trackConnections(service string) func(http.Handler) http.Handler {
	gauge := metrics.ActiveConnections.WithLabelValues(protocol, service)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gauge.Inc()
			defer gauge.Dec()
			next.ServeHTTP(w, r)
		})
	}
}

func healthHandler(service string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{
			"status":  "healthy",
			"service": service + "-" + protocol,
		})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeBody is writeJSON for pre-marshalled payloads, used where the
// response size has already been observed.
func writeBody(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

func writeError(w http.ResponseWriter, status int, code, msg string) {
	writeJSON(w, status, ErrorResponse{Error: code, Message: msg})
}
