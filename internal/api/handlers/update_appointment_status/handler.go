package update_appointment_status

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/randevuhub/RH-AppointmentService/internal/api/handlers"
	updateAppointmentStatus "github.com/randevuhub/RH-AppointmentService/internal/usecase/update_appointment_status"
)

const (
	msgInvalidAppointmentID = "Geçersiz randevu ID"
	msgInvalidBody          = "Geçersiz istek gövdesi"
	msgAppointmentNotFound  = "Randevu bulunamadı"
	msgInvalidTransition    = "Geçersiz durum geçişi"
	msgUnauthorized         = "Yetkilendirme hatası"
)

type Handler struct {
	useCase UpdateAppointmentStatusUseCase
	logger  Logger
}

func NewHandler(useCase UpdateAppointmentStatusUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/appointments/{appointmentId}/status
// Требует заголовок X-Admin-Token
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	appointmentID, err := strconv.ParseInt(mux.Vars(r)["appointmentId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /appointments/{id}/status - Invalid appointment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	var req UpdateStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /appointments/{id}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &updateAppointmentStatus.Request{
		AppointmentID: appointmentID,
		TargetStatus:  req.Status,
		AdminToken:    handlers.AdminToken(r),
	})

	if err != nil {
		switch {
		case errors.Is(err, updateAppointmentStatus.ErrAppointmentNotFound):
			h.logger.Warn("PUT /appointments/{id}/status - Appointment not found: id=%d", appointmentID)
			handlers.RespondNotFound(w, msgAppointmentNotFound)

		case errors.Is(err, updateAppointmentStatus.ErrUnauthorized):
			h.logger.Warn("PUT /appointments/{id}/status - Unauthorized: id=%d", appointmentID)
			handlers.RespondUnauthorized(w, msgUnauthorized)

		case errors.Is(err, updateAppointmentStatus.ErrInvalidTransition):
			h.logger.Warn("PUT /appointments/{id}/status - Invalid transition: id=%d, target=%s",
				appointmentID, req.Status)
			handlers.RespondUnprocessable(w, msgInvalidTransition)

		case errors.Is(err, updateAppointmentStatus.ErrInvalidInput):
			h.logger.Warn("PUT /appointments/{id}/status - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("PUT /appointments/{id}/status - Failed to update status: id=%d, error=%v",
				appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /appointments/{id}/status - Status updated: id=%d, status=%s",
		appointmentID, result.Appointment.Status)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
