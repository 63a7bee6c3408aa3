package update_appointment_status

import (
	"time"

	"github.com/randevuhub/RH-AppointmentService/internal/domain"
	updateAppointmentStatus "github.com/randevuhub/RH-AppointmentService/internal/usecase/update_appointment_status"
)

// UpdateStatusRequest HTTP request model
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID            int64     `json:"id"`
	BusinessID    int64     `json:"businessId"`
	ServiceID     *int64    `json:"serviceId,omitempty"`
	CustomerName  string    `json:"customerName"`
	CustomerPhone string    `json:"customerPhone"`
	Date          string    `json:"date"`
	Time          string    `json:"time"`
	Status        string    `json:"status"`
	Notes         *string   `json:"notes,omitempty"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *updateAppointmentStatus.Response) *AppointmentResponse {
	appt := resp.Appointment

	return &AppointmentResponse{
		ID:            appt.ID,
		BusinessID:    appt.BusinessID,
		ServiceID:     appt.ServiceID,
		CustomerName:  appt.CustomerName,
		CustomerPhone: appt.CustomerPhone,
		Date:          appt.Date.Format(domain.DateFormat),
		Time:          appt.StartTime.String(),
		Status:        string(appt.Status),
		Notes:         appt.Notes,
		UpdatedAt:     appt.UpdatedAt,
	}
}
