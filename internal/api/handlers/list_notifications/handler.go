package list_notifications

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/randevuhub/RH-AppointmentService/internal/api/handlers"
	notificationsService "github.com/randevuhub/RH-AppointmentService/internal/service/notifications"
	"github.com/randevuhub/RH-AppointmentService/internal/service/notifications/models"
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

// Handle GET /api/v1/businesses/{businessId}/notifications?unreadOnly=
// Требует заголовок X-Admin-Token
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	businessID, err := strconv.ParseInt(mux.Vars(r)["businessId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /businesses/{id}/notifications - Invalid business ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBusinessID)
		return
	}

	result, err := h.service.List(r.Context(), &models.ListNotificationsRequest{
		BusinessID: businessID,
		AdminToken: handlers.AdminToken(r),
		UnreadOnly: r.URL.Query().Get("unreadOnly") == "true",
	})

	if err != nil {
		switch {
		case errors.Is(err, notificationsService.ErrBusinessNotFound):
			h.logger.Warn("GET /businesses/{id}/notifications - Business not found: id=%d", businessID)
			handlers.RespondNotFound(w, msgBusinessNotFound)

		case errors.Is(err, notificationsService.ErrAccessDenied):
			h.logger.Warn("GET /businesses/{id}/notifications - Access denied: id=%d", businessID)
			handlers.RespondUnauthorized(w, msgUnauthorized)

		case errors.Is(err, notificationsService.ErrInvalidInput):
			h.logger.Warn("GET /businesses/{id}/notifications - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("GET /businesses/{id}/notifications - Failed to list notifications: id=%d, error=%v",
				businessID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
