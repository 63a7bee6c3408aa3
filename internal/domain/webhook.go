package domain

import "time"

// WebhookEvent тип события, на которое оформлена подписка
type WebhookEvent string

const (
	EventAppointmentCreated  WebhookEvent = "appointment_created"
	EventAppointmentApproved WebhookEvent = "appointment_approved"
)

// Valid проверяет, что событие является одним из распознаваемых литералов
func (e WebhookEvent) Valid() bool {
	return e == EventAppointmentCreated || e == EventAppointmentApproved
}

// Webhook подписка внешней системы на события жизненного цикла записей
// Жизненный цикл подписки независим от записей
type Webhook struct {
	ID         int64
	BusinessID int64
	URL        string
	Event      WebhookEvent
	Secret     *string
	IsActive   bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
