package create_appointment

import (
	"time"

	"github.com/randevuhub/RH-AppointmentService/internal/domain"
	createAppointment "github.com/randevuhub/RH-AppointmentService/internal/usecase/create_appointment"
	"github.com/randevuhub/RH-AppointmentService/pkg/types"
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	BusinessID    int64   `json:"businessId"`
	ServiceID     *int64  `json:"serviceId,omitempty"`
	CustomerName  string  `json:"customerName"`
	CustomerPhone string  `json:"customerPhone"`
	Date          string  `json:"date"` // YYYY-MM-DD
	Time          string  `json:"time"` // HH:MM
	Notes         *string `json:"notes,omitempty"`
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID            int64            `json:"id"`
	BusinessID    int64            `json:"businessId"`
	ServiceID     *int64           `json:"serviceId,omitempty"`
	CustomerName  string           `json:"customerName"`
	CustomerPhone string           `json:"customerPhone"`
	Date          string           `json:"date"`
	Time          string           `json:"time"`
	Status        string           `json:"status"`
	Notes         *string          `json:"notes,omitempty"`
	Service       *ServiceSnapshot `json:"service,omitempty"`
	CreatedAt     time.Time        `json:"createdAt"`
}

// ServiceSnapshot снимок услуги в ответе
type ServiceSnapshot struct {
	ID       int64    `json:"id"`
	Name     string   `json:"name"`
	Duration int      `json:"duration"`
	Price    *float64 `json:"price,omitempty"`
}

// ToUseCaseRequest создает запрос use case из HTTP запроса
func (r *CreateAppointmentRequest) ToUseCaseRequest() (*createAppointment.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	return &createAppointment.Request{
		BusinessID:    r.BusinessID,
		ServiceID:     r.ServiceID,
		CustomerName:  r.CustomerName,
		CustomerPhone: r.CustomerPhone,
		Date:          date,
		StartTime:     types.TimeString(r.Time),
		Notes:         r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createAppointment.Response) *AppointmentResponse {
	appt := resp.Appointment

	out := &AppointmentResponse{
		ID:            appt.ID,
		BusinessID:    appt.BusinessID,
		ServiceID:     appt.ServiceID,
		CustomerName:  appt.CustomerName,
		CustomerPhone: appt.CustomerPhone,
		Date:          appt.Date.Format(domain.DateFormat),
		Time:          appt.StartTime.String(),
		Status:        string(appt.Status),
		Notes:         appt.Notes,
		CreatedAt:     appt.CreatedAt,
	}

	if resp.Service != nil {
		out.Service = &ServiceSnapshot{
			ID:       resp.Service.ID,
			Name:     resp.Service.Name,
			Duration: resp.Service.DurationMinutes,
			Price:    resp.Service.Price,
		}
	}

	return out
}
