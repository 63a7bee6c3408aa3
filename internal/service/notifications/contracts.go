package notifications

import (
	"context"

	"github.com/randevuhub/RH-AppointmentService/internal/domain"
)

// NotificationRepository интерфейс репозитория уведомлений
type NotificationRepository interface {
	GetByBusiness(ctx context.Context, businessID int64, unreadOnly bool, limit uint64) ([]*domain.Notification, error)
	CountUnread(ctx context.Context, businessID int64) (int64, error)
	MarkRead(ctx context.Context, id int64) error
	MarkAllRead(ctx context.Context, businessID int64) error
}

// BusinessRepository интерфейс репозитория бизнесов
type BusinessRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Business, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
