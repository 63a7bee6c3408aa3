package get_available_slots

import (
	"context"
	"time"

	"github.com/randevuhub/RH-AppointmentService/internal/domain"
	"github.com/randevuhub/RH-AppointmentService/pkg/types"
)

// BusinessRepository интерфейс репозитория бизнесов
type BusinessRepository interface {
	GetBySlug(ctx context.Context, slug string) (*domain.Business, error)
}

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	// GetBookedTimes получает времена начала активных записей на дату
	GetBookedTimes(ctx context.Context, businessID int64, date time.Time) ([]types.TimeString, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
