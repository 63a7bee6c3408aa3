package delete_webhook

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/randevuhub/RH-AppointmentService/internal/api/handlers"
	webhooksService "github.com/randevuhub/RH-AppointmentService/internal/service/webhooks"
)

const (
	msgInvalidWebhookID = "Geçersiz webhook ID"
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

// Handle DELETE /api/v1/webhooks/{webhookId}
// Требует заголовок X-Admin-Token
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	webhookID, err := strconv.ParseInt(mux.Vars(r)["webhookId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /webhooks/{id} - Invalid webhook ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidWebhookID)
		return
	}

	if err := h.service.Delete(r.Context(), webhookID, handlers.AdminToken(r)); err != nil {
		switch {
		case errors.Is(err, webhooksService.ErrWebhookNotFound):
			h.logger.Warn("DELETE /webhooks/{id} - Webhook not found: id=%d", webhookID)
			handlers.RespondNotFound(w, msgWebhookNotFound)

		case errors.Is(err, webhooksService.ErrBusinessNotFound):
			h.logger.Warn("DELETE /webhooks/{id} - Business not found")
			handlers.RespondNotFound(w, msgBusinessNotFound)

		case errors.Is(err, webhooksService.ErrAccessDenied):
			h.logger.Warn("DELETE /webhooks/{id} - Access denied: id=%d", webhookID)
			handlers.RespondUnauthorized(w, msgUnauthorized)

		default:
			h.logger.Error("DELETE /webhooks/{id} - Failed to delete webhook: id=%d, error=%v", webhookID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /webhooks/{id} - Webhook deleted: id=%d", webhookID)
	handlers.RespondJSON(w, http.StatusOK, map[string]bool{"success": true})
}
