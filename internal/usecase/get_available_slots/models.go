package get_available_slots

import (
	"time"

	"github.com/randevuhub/RH-AppointmentService/internal/domain"
)

// Request модель запроса на получение сетки слотов
type Request struct {
	Slug string    // Slug бизнеса
	Date time.Time // Дата без времени
}

// Response модель ответа с сеткой слотов на день
// При нерабочем дне Slots пустой, а Reason содержит код причины
type Response struct {
	BusinessID int64
	Date       time.Time
	Slots      []domain.TimeSlot
	Reason     string // пустая строка, если день рабочий
}
