package webhooks

import (
	"context"

	"github.com/randevuhub/RH-AppointmentService/internal/domain"
)

// WebhookRepository интерфейс репозитория подписок
type WebhookRepository interface {
	Create(ctx context.Context, hook *domain.Webhook) (*domain.Webhook, error)
	GetByID(ctx context.Context, id int64) (*domain.Webhook, error)
	GetByBusiness(ctx context.Context, businessID int64) ([]*domain.Webhook, error)
	Update(ctx context.Context, hook *domain.Webhook) error
	Delete(ctx context.Context, id int64) error
}

// BusinessRepository интерфейс репозитория бизнесов
type BusinessRepository interface {
	// GetFirst получает единственный бизнес деплоя
	GetFirst(ctx context.Context) (*domain.Business, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
