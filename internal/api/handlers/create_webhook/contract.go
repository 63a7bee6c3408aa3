package create_webhook

import (
	"context"

	"github.com/randevuhub/RH-AppointmentService/internal/service/webhooks/models"
)

type WebhooksService interface {
	Create(ctx context.Context, req *models.CreateWebhookRequest) (*models.WebhookResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
