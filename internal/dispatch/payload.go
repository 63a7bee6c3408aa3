package dispatch

import (
	"time"

	"github.com/randevuhub/RH-AppointmentService/internal/domain"
	"github.com/randevuhub/RH-AppointmentService/pkg/types"
)

// Payload полезная нагрузка вебхука
// Формат контрактный: внешние системы разбирают его по полям
type Payload struct {
	Event     domain.WebhookEvent `json:"event"`
	Timestamp string              `json:"timestamp"` // RFC3339, момент постановки в очередь
	Data      PayloadData         `json:"data"`
}

// PayloadData снимок записи на момент события
type PayloadData struct {
	ID            int64            `json:"id"`
	CustomerName  string           `json:"customerName"`
	CustomerPhone string           `json:"customerPhone"`
	Date          string           `json:"date"` // YYYY-MM-DD
	Time          types.TimeString `json:"time"`
	Status        string           `json:"status"`
	Service       *PayloadService  `json:"service"` // null, если запись без услуги
	Notes         *string          `json:"notes"`
	CreatedAt     string           `json:"createdAt"` // RFC3339
}

// PayloadService снимок услуги внутри полезной нагрузки
type PayloadService struct {
	Name     string   `json:"name"`
	Duration int      `json:"duration"`
	Price    *float64 `json:"price"`
}

// buildPayload собирает полезную нагрузку из снимка записи
func buildPayload(event domain.WebhookEvent, appt *domain.Appointment, svc *domain.Service, now time.Time) Payload {
	var payloadSvc *PayloadService
	if svc != nil {
		payloadSvc = &PayloadService{
			Name:     svc.Name,
			Duration: svc.DurationMinutes,
			Price:    svc.Price,
		}
	}

	return Payload{
		Event:     event,
		Timestamp: now.UTC().Format(time.RFC3339),
		Data: PayloadData{
			ID:            appt.ID,
			CustomerName:  appt.CustomerName,
			CustomerPhone: appt.CustomerPhone,
			Date:          appt.Date.Format(domain.DateFormat),
			Time:          appt.StartTime,
			Status:        string(appt.Status),
			Service:       payloadSvc,
			Notes:         appt.Notes,
			CreatedAt:     appt.CreatedAt.UTC().Format(time.RFC3339),
		},
	}
}
