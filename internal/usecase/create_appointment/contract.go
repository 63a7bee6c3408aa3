package create_appointment

import (
	"context"
	"time"

	"github.com/randevuhub/RH-AppointmentService/internal/domain"
	"github.com/randevuhub/RH-AppointmentService/pkg/types"
)

// BusinessRepository интерфейс репозитория бизнесов
type BusinessRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Business, error)
}

// ServiceRepository интерфейс репозитория услуг
type ServiceRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
}

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	// HasActiveAtSlot проверяет наличие активной записи на слот (с блокировкой в транзакции)
	HasActiveAtSlot(ctx context.Context, businessID int64, date time.Time, startTime types.TimeString) (bool, error)
	Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error)
}

// CustomerRepository интерфейс репозитория клиентов
type CustomerRepository interface {
	// Upsert создает или обновляет карточку клиента по телефону
	Upsert(ctx context.Context, phone, name string) (*domain.Customer, error)
}

// NotificationRepository интерфейс репозитория уведомлений
type NotificationRepository interface {
	Create(ctx context.Context, notif *domain.Notification) (*domain.Notification, error)
}

// WebhookDispatcher интерфейс диспетчера исходящих событий
type WebhookDispatcher interface {
	Dispatch(ctx context.Context, event domain.WebhookEvent, appt *domain.Appointment, svc *domain.Service)
}

// TxManager интерфейс менеджера транзакций
type TxManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
