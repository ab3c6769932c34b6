package httpx

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Michal-Suhak/microservices-communication-benchmark/internal/domain"
	"github.com/Michal-Suhak/microservices-communication-benchmark/internal/metrics"
	"github.com/Michal-Suhak/microservices-communication-benchmark/internal/payment"
	"github.com/Michal-Suhak/microservices-communication-benchmark/internal/transport/wire"
)

type PaymentHandler struct {
	svc *payment.Service
}

func NewPaymentHandler(svc *payment.Service) *PaymentHandler {
	return &PaymentHandler{svc: svc}
}

func (h *PaymentHandler) Mount(r chi.Router) {
	r.Post("/payments", h.ProcessPayment)
}

func (h *PaymentHandler) ProcessPayment(w http.ResponseWriter, r *http.Request) {
	defer metrics.Track(protocol, "payment", "process_payment")()

	body, err := io.ReadAll(r.Body)
	if err != nil {
		metrics.RecordError(protocol, "payment", domain.FaultValidation)
		writeError(w, http.StatusBadRequest, "invalid_body", "unable to read request body")
		return
	}
	metrics.ObservePayload(protocol, "payment", metrics.DirectionRequest, len(body))

	var req wire.PaymentRequest
	if err := json.Unmarshal(body, &req); err != nil {
		metrics.RecordError(protocol, "payment", domain.FaultValidation)
		writeError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}

	pr, err := req.ToDomain()
	if err != nil {
		metrics.RecordError(protocol, "payment", domain.FaultValidation)
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	res, err := h.svc.ProcessPayment(r.Context(), pr)
	if err != nil {
		metrics.RecordError(protocol, "payment", domain.KindOf(err))
		slog.ErrorContext(r.Context(), "process payment failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	out, err := json.Marshal(wire.PaymentResponse{
		Success:          res.Success,
		Payment:          wire.FromPayment(res.Payment),
		Notification:     wire.FromNotification(res.Notification),
		ProcessingTimeMS: res.ProcessingTimeMS,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}
	metrics.ObservePayload(protocol, "payment", metrics.DirectionResponse, len(out))
	writeBody(w, http.StatusOK, out)
}
