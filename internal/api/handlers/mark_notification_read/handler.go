package mark_notification_read

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/randevuhub/RH-AppointmentService/internal/api/handlers"
	notificationsService "github.com/randevuhub/RH-AppointmentService/internal/service/notifications"
)

const (
	msgInvalidNotificationID = "Geçersiz bildirim ID"
	msgNotificationNotFound  = "Bildirim bulunamadı"
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

// Handle PUT /api/v1/notifications/{notificationId}/read
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	notificationID, err := strconv.ParseInt(mux.Vars(r)["notificationId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /notifications/{id}/read - Invalid notification ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidNotificationID)
		return
	}

	if err := h.service.MarkRead(r.Context(), notificationID); err != nil {
		switch {
		case errors.Is(err, notificationsService.ErrNotificationNotFound):
			h.logger.Warn("PUT /notifications/{id}/read - Notification not found: id=%d", notificationID)
			handlers.RespondNotFound(w, msgNotificationNotFound)

		case errors.Is(err, notificationsService.ErrInvalidInput):
			h.logger.Warn("PUT /notifications/{id}/read - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("PUT /notifications/{id}/read - Failed to mark read: id=%d, error=%v",
				notificationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, map[string]bool{"success": true})
}
