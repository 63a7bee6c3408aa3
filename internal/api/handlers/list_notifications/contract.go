package list_notifications

import (
	"context"

	"github.com/randevuhub/RH-AppointmentService/internal/service/notifications/models"
)

type NotificationsService interface {
	List(ctx context.Context, req *models.ListNotificationsRequest) (*models.ListNotificationsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
