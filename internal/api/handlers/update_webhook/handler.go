package update_webhook

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/randevuhub/RH-AppointmentService/internal/api/handlers"
	webhooksService "github.com/randevuhub/RH-AppointmentService/internal/service/webhooks"
	"github.com/randevuhub/RH-AppointmentService/internal/service/webhooks/models"
)

const (
	msgInvalidWebhookID = "Geçersiz webhook ID"
	msgInvalidBody      = "Geçersiz istek gövdesi"
	msgWebhookNotFound  = "Webhook bulunamadı"
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

// Handle PUT /api/v1/webhooks/{webhookId}
// Требует заголовок X-Admin-Token
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	webhookID, err := strconv.ParseInt(mux.Vars(r)["webhookId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /webhooks/{id} - Invalid webhook ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidWebhookID)
		return
	}

	var req models.UpdateWebhookRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /webhooks/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	req.WebhookID = webhookID
	req.AdminToken = handlers.AdminToken(r)

	result, err := h.service.Update(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, webhooksService.ErrWebhookNotFound):
			h.logger.Warn("PUT /webhooks/{id} - Webhook not found: id=%d", webhookID)
			handlers.RespondNotFound(w, msgWebhookNotFound)

		case errors.Is(err, webhooksService.ErrBusinessNotFound):
			h.logger.Warn("PUT /webhooks/{id} - Business not found")
			handlers.RespondNotFound(w, msgBusinessNotFound)

		case errors.Is(err, webhooksService.ErrAccessDenied):
			h.logger.Warn("PUT /webhooks/{id} - Access denied: id=%d", webhookID)
			handlers.RespondUnauthorized(w, msgUnauthorized)

		case errors.Is(err, webhooksService.ErrInvalidInput):
			h.logger.Warn("PUT /webhooks/{id} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("PUT /webhooks/{id} - Failed to update webhook: id=%d, error=%v", webhookID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /webhooks/{id} - Webhook updated: id=%d", webhookID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
