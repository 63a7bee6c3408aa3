package reset_setup

import (
	"errors"
	"net/http"

	"github.com/randevuhub/RH-AppointmentService/internal/api/handlers"
	businessService "github.com/randevuhub/RH-AppointmentService/internal/service/business"
)

const (
	msgInvalidBody      = "Geçersiz istek gövdesi"
	msgPasswordRequired = "Şifre gerekli"
	msgWrongPassword    = "Şifre hatalı"
	msgBusinessNotFound = "Silinecek şirket bulunamadı"
)

type resetRequest struct {
	Password string `json:"password"`
}

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

// Handle DELETE /api/v1/setup/reset
// Полный сброс деплоя: пароль единственного бизнеса передаётся в теле запроса
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req resetRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("DELETE /setup/reset - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	if err := h.service.Reset(r.Context(), req.Password); err != nil {
		switch {
		case errors.Is(err, businessService.ErrInvalidInput):
			h.logger.Warn("DELETE /setup/reset - Password missing")
			handlers.RespondBadRequest(w, msgPasswordRequired)

		case errors.Is(err, businessService.ErrBusinessNotFound):
			h.logger.Warn("DELETE /setup/reset - No business to reset")
			handlers.RespondNotFound(w, msgBusinessNotFound)

		case errors.Is(err, businessService.ErrAccessDenied):
			h.logger.Warn("DELETE /setup/reset - Wrong password")
			handlers.RespondUnauthorized(w, msgWrongPassword)

		default:
			h.logger.Error("DELETE /setup/reset - Failed to reset: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /setup/reset - Deployment data wiped")
	handlers.RespondJSON(w, http.StatusOK, map[string]bool{"success": true})
}
