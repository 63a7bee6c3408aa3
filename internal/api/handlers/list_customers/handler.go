package list_customers

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/randevuhub/RH-AppointmentService/internal/api/handlers"
	businessService "github.com/randevuhub/RH-AppointmentService/internal/service/business"
)

const (
	msgBusinessNotFound = "İşletme bulunamadı"
	msgUnauthorized     = "Yetkilendirme hatası"
)

type Handler struct {
	service BusinessService
	logger  Logger
}

func NewHandler(service BusinessService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/businesses/{slug}/customers
// Требует заголовок X-Admin-Token
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]

	result, err := h.service.ListCustomers(r.Context(), slug, handlers.AdminToken(r))
	if err != nil {
		switch {
		case errors.Is(err, businessService.ErrBusinessNotFound):
			h.logger.Warn("GET /businesses/{slug}/customers - Business not found: slug=%s", slug)
			handlers.RespondNotFound(w, msgBusinessNotFound)

		case errors.Is(err, businessService.ErrAccessDenied):
			h.logger.Warn("GET /businesses/{slug}/customers - Access denied: slug=%s", slug)
			handlers.RespondUnauthorized(w, msgUnauthorized)

		case errors.Is(err, businessService.ErrInvalidInput):
			h.logger.Warn("GET /businesses/{slug}/customers - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("GET /businesses/{slug}/customers - Failed to list customers: slug=%s, error=%v",
				slug, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
