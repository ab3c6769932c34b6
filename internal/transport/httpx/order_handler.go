package httpx

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Michal-Suhak/microservices-communication-benchmark/internal/domain"
	"github.com/Michal-Suhak/microservices-communication-benchmark/internal/metrics"
	"github.com/Michal-Suhak/microservices-communication-benchmark/internal/order"
	"github.com/Michal-Suhak/microservices-communication-benchmark/internal/transport/wire"
)

type OrderHandler struct {
	svc *order.Service
}

func NewOrderHandler(svc *order.Service) *OrderHandler {
	return &OrderHandler{svc: svc}
}

func (h *OrderHandler) Mount(r chi.Router) {
	r.Post("/orders", h.CreateOrder)
}

func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	defer metrics.Track(protocol, "order", "create_order")()

	body, err := io.ReadAll(r.Body)
	if err != nil {
		metrics.RecordError(protocol, "order", domain.FaultValidation)
		writeError(w, http.StatusBadRequest, "invalid_body", "unable to read request body")
		return
	}
	metrics.ObservePayload(protocol, "order", metrics.DirectionRequest, len(body))

	var req wire.CreateOrderRequest
	if err := json.Unmarshal(body, &req); err != nil {
		metrics.RecordError(protocol, "order", domain.FaultValidation)
		writeError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}

	oc, err := req.ToDomain()
	if err != nil {
		metrics.RecordError(protocol, "order", domain.FaultValidation)
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	res, err := h.svc.CreateOrder(r.Context(), oc)
	if err != nil {
		kind := domain.KindOf(err)
		metrics.RecordError(protocol, "order", kind)
		switch kind {
		case domain.FaultPaymentFailed:
			// Business failure: a well-formed negative result, not a
			// transport error. Nothing downstream is attached.
			h.respond(w, http.StatusOK, wire.OrderResponse{Success: false, Order: wire.FromOrder(res.Order)})
		case domain.FaultConnection:
			writeError(w, http.StatusServiceUnavailable, "service_unavailable", "payment service unavailable")
		default:
			slog.ErrorContext(r.Context(), "create order failed", "error", err)
			writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		}
		return
	}

	h.respond(w, http.StatusOK, wire.OrderResponse{
		Success:               true,
		Order:                 wire.FromOrder(res.Order),
		Payment:               wire.FromPayment(res.Payment),
		Notification:          wire.FromNotification(res.Notification),
		TotalProcessingTimeMS: res.TotalProcessingTimeMS,
	})
}

func (h *OrderHandler) respond(w http.ResponseWriter, status int, resp wire.OrderResponse) {
	out, err := json.Marshal(resp)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}
	metrics.ObservePayload(protocol, "order", metrics.DirectionResponse, len(out))
	writeBody(w, status, out)
}
