package update_business

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/randevuhub/RH-AppointmentService/internal/api/handlers"
	businessService "github.com/randevuhub/RH-AppointmentService/internal/service/business"
	"github.com/randevuhub/RH-AppointmentService/internal/service/business/models"
)

const (
	msgInvalidBody      = "Geçersiz istek gövdesi"
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

// Handle PUT /api/v1/businesses/{slug}
// Требует заголовок X-Admin-Token
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]

	var req models.UpdateBusinessRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /businesses/{slug} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	req.Slug = slug
	req.AdminToken = handlers.AdminToken(r)

	result, err := h.service.Update(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, businessService.ErrBusinessNotFound):
			h.logger.Warn("PUT /businesses/{slug} - Business not found: slug=%s", slug)
			handlers.RespondNotFound(w, msgBusinessNotFound)

		case errors.Is(err, businessService.ErrAccessDenied):
			h.logger.Warn("PUT /businesses/{slug} - Access denied: slug=%s", slug)
			handlers.RespondUnauthorized(w, msgUnauthorized)

		case errors.Is(err, businessService.ErrInvalidInput):
			h.logger.Warn("PUT /businesses/{slug} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("PUT /businesses/{slug} - Failed to update business: slug=%s, error=%v", slug, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /businesses/{slug} - Business updated: id=%d, slug=%s", result.ID, result.Slug)
	handlers.RespondJSON(w, http.StatusOK, result)
}
