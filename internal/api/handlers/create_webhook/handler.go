package create_webhook

import (
	"errors"
	"net/http"

	"github.com/randevuhub/RH-AppointmentService/internal/api/handlers"
	webhooksService "github.com/randevuhub/RH-AppointmentService/internal/service/webhooks"
	"github.com/randevuhub/RH-AppointmentService/internal/service/webhooks/models"
)

const (
	msgInvalidBody      = "Geçersiz istek gövdesi"
	msgBusinessNotFound = "İşletme bulunamadı"
	msgUnauthorized     = "Yetkilendirme hatası"
)

type Handler struct {
	service WebhooksService
	logger  Logger
}

func NewHandler(service WebhooksService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/webhooks
// Требует заголовок X-Admin-Token
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateWebhookRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /webhooks - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	req.AdminToken = handlers.AdminToken(r)

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, webhooksService.ErrBusinessNotFound):
			h.logger.Warn("POST /webhooks - Business not found")
			handlers.RespondNotFound(w, msgBusinessNotFound)

		case errors.Is(err, webhooksService.ErrAccessDenied):
			h.logger.Warn("POST /webhooks - Access denied")
			handlers.RespondUnauthorized(w, msgUnauthorized)

		case errors.Is(err, webhooksService.ErrInvalidInput):
			h.logger.Warn("POST /webhooks - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /webhooks - Failed to create webhook: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /webhooks - Webhook created: id=%d, event=%s", result.ID, result.Event)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
