package list_webhooks

import (
	"errors"
	"net/http"

	"github.com/randevuhub/RH-AppointmentService/internal/api/handlers"
	webhooksService "github.com/randevuhub/RH-AppointmentService/internal/service/webhooks"
)

const (
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

// Handle GET /api/v1/webhooks
// Требует заголовок X-Admin-Token
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context(), handlers.AdminToken(r))
	if err != nil {
		switch {
		case errors.Is(err, webhooksService.ErrBusinessNotFound):
			h.logger.Warn("GET /webhooks - Business not found")
			handlers.RespondNotFound(w, msgBusinessNotFound)

		case errors.Is(err, webhooksService.ErrAccessDenied):
			h.logger.Warn("GET /webhooks - Access denied")
			handlers.RespondUnauthorized(w, msgUnauthorized)

		default:
			h.logger.Error("GET /webhooks - Failed to list webhooks: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
