package list_customers

import (
	"context"

	"github.com/randevuhub/RH-AppointmentService/internal/service/business/models"
)

type BusinessService interface {
	ListCustomers(ctx context.Context, slug, adminToken string) (*models.ListCustomersResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
