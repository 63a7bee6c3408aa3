package models

import (
	"time"

	"github.com/randevuhub/RH-AppointmentService/internal/domain"
	"github.com/randevuhub/RH-AppointmentService/pkg/types"
)

// Request модели

// SetupRequest запрос первичной настройки бизнеса
type SetupRequest struct {
	Sector      string  `json:"sector"`
	Name        string  `json:"name"`
	Phone       string  `json:"phone"`
	Password    string  `json:"password"`
	Address     *string `json:"address,omitempty"`
	Description *string `json:"description,omitempty"`
}

// UpdateBusinessRequest запрос на обновление бизнеса
// Все поля опциональны - обновляются только переданные значения
type UpdateBusinessRequest struct {
	Slug       string `json:"-"`
	AdminToken string `json:"-"`

	Name         *string           `json:"name,omitempty"`
	Description  *string           `json:"description,omitempty"`
	Address      *string           `json:"address,omitempty"`
	Phone        *string           `json:"phone,omitempty"`
	WorkingDays  *string           `json:"workingDays,omitempty"` // CSV "1,2,3,4,5,6"
	OpenTime     *types.TimeString `json:"openTime,omitempty"`
	CloseTime    *types.TimeString `json:"closeTime,omitempty"`
	SlotDuration *int              `json:"slotDuration,omitempty"`
	NewPassword  *string           `json:"newPassword,omitempty"`

	// Полная замена набора услуг, nil - услуги не трогаются
	Services []ServiceInput `json:"services,omitempty"`
}

// ServiceInput услуга в запросе на обновление
type ServiceInput struct {
	Name     string   `json:"name"`
	Duration *int     `json:"duration,omitempty"`
	Price    *float64 `json:"price,omitempty"`
}

// Response модели

// BusinessResponse ответ с данными бизнеса
// Админский секрет наружу не сериализуется
type BusinessResponse struct {
	ID              int64              `json:"id"`
	Name            string             `json:"name"`
	Slug            string             `json:"slug"`
	Sector          string             `json:"sector"`
	Description     *string            `json:"description,omitempty"`
	Address         *string            `json:"address,omitempty"`
	Phone           *string            `json:"phone,omitempty"`
	WorkingDays     string             `json:"workingDays"`
	OpenTime        types.TimeString   `json:"openTime"`
	CloseTime       types.TimeString   `json:"closeTime"`
	SlotDuration    int                `json:"slotDuration"`
	IsSetupComplete bool               `json:"isSetupComplete"`
	Services        []*ServiceResponse `json:"services,omitempty"`
	CreatedAt       time.Time          `json:"createdAt"`
	UpdatedAt       time.Time          `json:"updatedAt"`
}

// ServiceResponse услуга в ответе
type ServiceResponse struct {
	ID       int64    `json:"id"`
	Name     string   `json:"name"`
	Duration int      `json:"duration"`
	Price    *float64 `json:"price,omitempty"`
	IsActive bool     `json:"isActive"`
}

// CustomerResponse карточка клиента со сводкой
type CustomerResponse struct {
	ID                  int64      `json:"id"`
	Phone               string     `json:"phone"`
	Name                string     `json:"name"`
	AppointmentCount    int64      `json:"appointmentCount"`
	LastAppointmentDate *string    `json:"lastAppointmentDate,omitempty"` // YYYY-MM-DD
	CreatedAt           time.Time  `json:"createdAt"`
}

// ListCustomersResponse ответ со списком клиентов
type ListCustomersResponse struct {
	Customers []*CustomerResponse `json:"customers"`
}

// FromDomainBusiness конвертирует доменную модель бизнеса в ответ
func FromDomainBusiness(biz *domain.Business, services []*domain.Service) *BusinessResponse {
	resp := &BusinessResponse{
		ID:              biz.ID,
		Name:            biz.Name,
		Slug:            biz.Slug,
		Sector:          biz.Sector,
		Description:     biz.Description,
		Address:         biz.Address,
		Phone:           biz.Phone,
		WorkingDays:     biz.WorkingDays.String(),
		OpenTime:        biz.OpenTime,
		CloseTime:       biz.CloseTime,
		SlotDuration:    biz.SlotDurationMinutes,
		IsSetupComplete: biz.IsSetupComplete,
		CreatedAt:       biz.CreatedAt,
		UpdatedAt:       biz.UpdatedAt,
	}

	for _, svc := range services {
		resp.Services = append(resp.Services, &ServiceResponse{
			ID:       svc.ID,
			Name:     svc.Name,
			Duration: svc.DurationMinutes,
			Price:    svc.Price,
			IsActive: svc.IsActive,
		})
	}

	return resp
}

// FromDomainCustomerSummary конвертирует сводку клиента в ответ
func FromDomainCustomerSummary(summary *domain.CustomerSummary) *CustomerResponse {
	resp := &CustomerResponse{
		ID:               summary.ID,
		Phone:            summary.Phone,
		Name:             summary.Name,
		AppointmentCount: summary.AppointmentCount,
		CreatedAt:        summary.CreatedAt,
	}

	if summary.LastAppointmentDate != nil {
		formatted := summary.LastAppointmentDate.Format(domain.DateFormat)
		resp.LastAppointmentDate = &formatted
	}

	return resp
}
