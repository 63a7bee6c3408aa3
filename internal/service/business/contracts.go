package business

import (
	"context"

	"github.com/randevuhub/RH-AppointmentService/internal/domain"
)

// BusinessRepository интерфейс репозитория бизнесов
type BusinessRepository interface {
	Create(ctx context.Context, biz *domain.Business) (*domain.Business, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Business, error)
	GetFirst(ctx context.Context) (*domain.Business, error)
	Exists(ctx context.Context) (bool, error)
	Update(ctx context.Context, biz *domain.Business) error
	DeleteAll(ctx context.Context) error
}

// ServiceRepository интерфейс репозитория услуг
type ServiceRepository interface {
	CreateBatch(ctx context.Context, services []*domain.Service) error
	GetActiveByBusiness(ctx context.Context, businessID int64) ([]*domain.Service, error)
	DeleteByBusiness(ctx context.Context, businessID int64) error
	DeleteAll(ctx context.Context) error
}

// CustomerRepository интерфейс репозитория клиентов
type CustomerRepository interface {
	GetSummariesByBusiness(ctx context.Context, businessID int64) ([]*domain.CustomerSummary, error)
	DeleteAll(ctx context.Context) error
}

// AppointmentRepository интерфейс репозитория записей (только сброс)
type AppointmentRepository interface {
	DeleteAll(ctx context.Context) error
}

// NotificationRepository интерфейс репозитория уведомлений (только сброс)
type NotificationRepository interface {
	DeleteAll(ctx context.Context) error
}

// WebhookRepository интерфейс репозитория вебхуков (только сброс)
type WebhookRepository interface {
	DeleteAll(ctx context.Context) error
}

// TxManager интерфейс менеджера транзакций
type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
