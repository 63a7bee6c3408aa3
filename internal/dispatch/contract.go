package dispatch

import (
	"context"

	"github.com/randevuhub/RH-AppointmentService/internal/domain"
)

// WebhookRepository интерфейс репозитория подписок
type WebhookRepository interface {
	// GetActiveByEvent получает активные подписки на событие
	GetActiveByEvent(ctx context.Context, event domain.WebhookEvent) ([]*domain.Webhook, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
