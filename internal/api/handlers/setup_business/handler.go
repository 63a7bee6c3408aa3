package setup_business

import (
	"errors"
	"net/http"

	"github.com/randevuhub/RH-AppointmentService/internal/api/handlers"
	businessService "github.com/randevuhub/RH-AppointmentService/internal/service/business"
	"github.com/randevuhub/RH-AppointmentService/internal/service/business/models"
)

const (
	msgInvalidBody    = "Geçersiz istek gövdesi"
	msgBusinessExists = "İşletme zaten kurulmuş"
	msgUnknownSector  = "Bilinmeyen sektör"
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

// Handle POST /api/v1/setup
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.SetupRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /setup - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	result, err := h.service.Setup(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, businessService.ErrBusinessExists):
			h.logger.Warn("POST /setup - Business already exists")
			handlers.RespondConflict(w, msgBusinessExists)

		case errors.Is(err, businessService.ErrUnknownSector):
			h.logger.Warn("POST /setup - Unknown sector: %s", req.Sector)
			handlers.RespondBadRequest(w, msgUnknownSector)

		case errors.Is(err, businessService.ErrInvalidInput):
			h.logger.Warn("POST /setup - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /setup - Failed to setup business: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /setup - Business created: id=%d, slug=%s", result.ID, result.Slug)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
