package list_webhooks

import (
	"context"

	"github.com/randevuhub/RH-AppointmentService/internal/service/webhooks/models"
)

type WebhooksService interface {
	List(ctx context.Context, adminToken string) (*models.ListWebhooksResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
