package models

import (
	"time"

	"github.com/randevuhub/RH-AppointmentService/internal/domain"
	"github.com/randevuhub/RH-AppointmentService/pkg/types"
)

// Request модели

// ListAppointmentsRequest запрос на получение записей бизнеса
// Фильтры взаимоисключающими не являются, но Month перекрывает Date
type ListAppointmentsRequest struct {
	Slug       string
	AdminToken string
	Date       *time.Time // конкретная дата
	Month      *time.Time // первый день месяца, разворачивается в период
	Status     *string    // фильтр по статусу
}

// Response модели

// AppointmentResponse ответ с данными записи
type AppointmentResponse struct {
	ID            int64            `json:"id"`
	BusinessID    int64            `json:"businessId"`
	ServiceID     *int64           `json:"serviceId,omitempty"`
	CustomerName  string           `json:"customerName"`
	CustomerPhone string           `json:"customerPhone"`
	Date          string           `json:"date"` // YYYY-MM-DD
	Time          types.TimeString `json:"time"`
	Status        string           `json:"status"`
	Notes         *string          `json:"notes,omitempty"`
	Service       *ServiceSnapshot `json:"service,omitempty"`
	CreatedAt     time.Time        `json:"createdAt"`
	UpdatedAt     time.Time        `json:"updatedAt"`
}

// ServiceSnapshot снимок услуги внутри ответа с записью
type ServiceSnapshot struct {
	ID       int64    `json:"id"`
	Name     string   `json:"name"`
	Duration int      `json:"duration"`
	Price    *float64 `json:"price,omitempty"`
}

// ListAppointmentsResponse ответ со списком записей
type ListAppointmentsResponse struct {
	Appointments []*AppointmentResponse `json:"appointments"`
}

// FromDomainAppointment конвертирует доменную модель в ответ
func FromDomainAppointment(appt *domain.Appointment, svc *domain.Service) *AppointmentResponse {
	resp := &AppointmentResponse{
		ID:            appt.ID,
		BusinessID:    appt.BusinessID,
		ServiceID:     appt.ServiceID,
		CustomerName:  appt.CustomerName,
		CustomerPhone: appt.CustomerPhone,
		Date:          appt.Date.Format(domain.DateFormat),
		Time:          appt.StartTime,
		Status:        string(appt.Status),
		Notes:         appt.Notes,
		CreatedAt:     appt.CreatedAt,
		UpdatedAt:     appt.UpdatedAt,
	}

	if svc != nil {
		resp.Service = &ServiceSnapshot{
			ID:       svc.ID,
			Name:     svc.Name,
			Duration: svc.DurationMinutes,
			Price:    svc.Price,
		}
	}

	return resp
}
