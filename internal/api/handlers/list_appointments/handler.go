package list_appointments

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/randevuhub/RH-AppointmentService/internal/api/handlers"
	"github.com/randevuhub/RH-AppointmentService/internal/domain"
	appointmentsService "github.com/randevuhub/RH-AppointmentService/internal/service/appointments"
	"github.com/randevuhub/RH-AppointmentService/internal/service/appointments/models"
)

const (
	msgBusinessNotFound  = "İşletme bulunamadı"
	msgUnauthorized      = "Yetkilendirme hatası"
	msgInvalidDateFormat = "Geçersiz tarih formatı, YYYY-MM-DD bekleniyor"
	msgInvalidMonth      = "Geçersiz ay formatı, YYYY-MM bekleniyor"
)

const monthFormat = "2006-01"

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

// Handle GET /api/v1/businesses/{slug}/appointments?date=&month=&status=
// Требует заголовок X-Admin-Token
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]
	query := r.URL.Query()

	req := &models.ListAppointmentsRequest{
		Slug:       slug,
		AdminToken: handlers.AdminToken(r),
	}

	if raw := query.Get("date"); raw != "" {
		date, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			h.logger.Warn("GET /businesses/{slug}/appointments - Invalid date %q: %v", raw, err)
			handlers.RespondBadRequest(w, msgInvalidDateFormat)
			return
		}
		req.Date = &date
	}

	if raw := query.Get("month"); raw != "" {
		month, err := time.Parse(monthFormat, raw)
		if err != nil {
			h.logger.Warn("GET /businesses/{slug}/appointments - Invalid month %q: %v", raw, err)
			handlers.RespondBadRequest(w, msgInvalidMonth)
			return
		}
		req.Month = &month
	}

	if status := query.Get("status"); status != "" {
		req.Status = &status
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, appointmentsService.ErrBusinessNotFound):
			h.logger.Warn("GET /businesses/{slug}/appointments - Business not found: slug=%s", slug)
			handlers.RespondNotFound(w, msgBusinessNotFound)

		case errors.Is(err, appointmentsService.ErrAccessDenied):
			h.logger.Warn("GET /businesses/{slug}/appointments - Access denied: slug=%s", slug)
			handlers.RespondUnauthorized(w, msgUnauthorized)

		case errors.Is(err, appointmentsService.ErrInvalidInput):
			h.logger.Warn("GET /businesses/{slug}/appointments - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("GET /businesses/{slug}/appointments - Failed to list appointments: slug=%s, error=%v",
				slug, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
