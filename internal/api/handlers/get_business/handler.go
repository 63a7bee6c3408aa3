package get_business

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/randevuhub/RH-AppointmentService/internal/api/handlers"
	businessService "github.com/randevuhub/RH-AppointmentService/internal/service/business"
)

const (
	msgBusinessNotFound = "İşletme bulunamadı"
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

// Handle GET /api/v1/businesses/{slug}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]

	result, err := h.service.GetBySlug(r.Context(), slug)
	if err != nil {
		switch {
		case errors.Is(err, businessService.ErrBusinessNotFound):
			h.logger.Warn("GET /businesses/{slug} - Business not found: slug=%s", slug)
			handlers.RespondNotFound(w, msgBusinessNotFound)

		case errors.Is(err, businessService.ErrInvalidInput):
			h.logger.Warn("GET /businesses/{slug} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("GET /businesses/{slug} - Failed to get business: slug=%s, error=%v", slug, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
