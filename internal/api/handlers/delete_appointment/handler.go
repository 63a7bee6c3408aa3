package delete_appointment

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/randevuhub/RH-AppointmentService/internal/api/handlers"
	appointmentsService "github.com/randevuhub/RH-AppointmentService/internal/service/appointments"
)

const (
	msgInvalidAppointmentID = "Geçersiz randevu ID"
	msgAppointmentNotFound  = "Randevu bulunamadı"
	msgUnauthorized         = "Yetkilendirme hatası"
)

type Handler struct {
	service AppointmentsService
	logger  Logger
}

func NewHandler(service AppointmentsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/appointments/{appointmentId}
// Требует заголовок X-Admin-Token
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	appointmentID, err := strconv.ParseInt(mux.Vars(r)["appointmentId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /appointments/{id} - Invalid appointment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	if err := h.service.Delete(r.Context(), appointmentID, handlers.AdminToken(r)); err != nil {
		switch {
		case errors.Is(err, appointmentsService.ErrAppointmentNotFound):
			h.logger.Warn("DELETE /appointments/{id} - Appointment not found: id=%d", appointmentID)
			handlers.RespondNotFound(w, msgAppointmentNotFound)

		case errors.Is(err, appointmentsService.ErrAccessDenied):
			h.logger.Warn("DELETE /appointments/{id} - Access denied: id=%d", appointmentID)
			handlers.RespondUnauthorized(w, msgUnauthorized)

		case errors.Is(err, appointmentsService.ErrInvalidInput):
			h.logger.Warn("DELETE /appointments/{id} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("DELETE /appointments/{id} - Failed to delete appointment: id=%d, error=%v",
				appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /appointments/{id} - Appointment deleted: id=%d", appointmentID)
	handlers.RespondJSON(w, http.StatusOK, map[string]bool{"success": true})
}
