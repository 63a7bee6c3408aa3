package setup_business

import (
	"context"

	"github.com/randevuhub/RH-AppointmentService/internal/service/business/models"
)

type BusinessService interface {
	Setup(ctx context.Context, req *models.SetupRequest) (*models.BusinessResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
