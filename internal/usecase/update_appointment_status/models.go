package update_appointment_status

import (
	"github.com/randevuhub/RH-AppointmentService/internal/domain"
)

// Request модель запроса на смену статуса записи
type Request struct {
	AppointmentID int64
	TargetStatus  string // литерал из TargetStatuses
	AdminToken    string // сверяется с админским секретом бизнеса
}

// Response модель ответа с обновлённой записью
type Response struct {
	Appointment *domain.Appointment
}
