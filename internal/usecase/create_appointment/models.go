package create_appointment

import (
	"time"

	"github.com/randevuhub/RH-AppointmentService/internal/domain"
	"github.com/randevuhub/RH-AppointmentService/pkg/types"
)

// Request модель запроса на создание записи
type Request struct {
	BusinessID    int64
	ServiceID     *int64 // опциональная ссылка на услугу
	CustomerName  string
	CustomerPhone string
	Date          time.Time
	StartTime     types.TimeString
	Notes         *string
}

// Response модель ответа с созданной записью
// Service заполнен, если запись ссылается на услугу
type Response struct {
	Appointment *domain.Appointment
	Service     *domain.Service
}
