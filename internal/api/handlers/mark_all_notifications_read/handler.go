package mark_all_notifications_read

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/randevuhub/RH-AppointmentService/internal/api/handlers"
	notificationsService "github.com/randevuhub/RH-AppointmentService/internal/service/notifications"
)

const (
	msgInvalidBusinessID = "Geçersiz işletme ID"
	msgBusinessNotFound  = "İşletme bulunamadı"
	msgUnauthorized      = "Yetkilendirme hatası"
)

type Handler struct {
	service NotificationsService
	logger  Logger
}

func NewHandler(service NotificationsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/businesses/{businessId}/notifications/read-all
// Требует заголовок X-Admin-Token
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	businessID, err := strconv.ParseInt(mux.Vars(r)["businessId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /businesses/{id}/notifications/read-all - Invalid business ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBusinessID)
		return
	}

	if err := h.service.MarkAllRead(r.Context(), businessID, handlers.AdminToken(r)); err != nil {
		switch {
		case errors.Is(err, notificationsService.ErrBusinessNotFound):
			h.logger.Warn("PUT /businesses/{id}/notifications/read-all - Business not found: id=%d", businessID)
			handlers.RespondNotFound(w, msgBusinessNotFound)

		case errors.Is(err, notificationsService.ErrAccessDenied):
			h.logger.Warn("PUT /businesses/{id}/notifications/read-all - Access denied: id=%d", businessID)
			handlers.RespondUnauthorized(w, msgUnauthorized)

		case errors.Is(err, notificationsService.ErrInvalidInput):
			h.logger.Warn("PUT /businesses/{id}/notifications/read-all - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("PUT /businesses/{id}/notifications/read-all - Failed to mark all read: id=%d, error=%v",
				businessID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, map[string]bool{"success": true})
}
