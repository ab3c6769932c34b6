package httpx

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Michal-Suhak/microservices-communication-benchmark/internal/domain"
	"github.com/Michal-Suhak/microservices-communication-benchmark/internal/metrics"
	"github.com/Michal-Suhak/microservices-communication-benchmark/internal/notification"
	"github.com/Michal-Suhak/microservices-communication-benchmark/internal/transport/wire"
)

type NotificationHandler struct {
	svc *notification.Service
}

func NewNotificationHandler(svc *notification.Service) *NotificationHandler {
	return &NotificationHandler{svc: svc}
}

func (h *NotificationHandler) Mount(r chi.Router) {
	r.Post("/notifications", h.SendNotification)
}

func (h *NotificationHandler) SendNotification(w http.ResponseWriter, r *http.Request) {
	defer metrics.Track(protocol, "notification", "send_notification")()

	body, err := io.ReadAll(r.Body)
	if err != nil {
		metrics.RecordError(protocol, "notification", domain.FaultValidation)
		writeError(w, http.StatusBadRequest, "invalid_body", "unable to read request body")
		return
	}
	metrics.ObservePayload(protocol, "notification", metrics.DirectionRequest, len(body))

	var req wire.NotificationRequest
	if err := json.Unmarshal(body, &req); err != nil {
		metrics.RecordError(protocol, "notification", domain.FaultValidation)
		writeError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}

	nr, err := req.ToDomain()
	if err != nil {
		metrics.RecordError(protocol, "notification", domain.FaultValidation)
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	res, err := h.svc.SendNotification(r.Context(), nr)
	if err != nil {
		metrics.RecordError(protocol, "notification", domain.KindOf(err))
		slog.ErrorContext(r.Context(), "send notification failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	out, err := json.Marshal(wire.NotificationResponse{
		Success:          res.Success,
		Notification:     wire.FromNotification(res.Notification),
		ProcessingTimeMS: res.ProcessingTimeMS,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}
	metrics.ObservePayload(protocol, "notification", metrics.DirectionResponse, len(out))
	writeBody(w, http.StatusOK, out)
}
