package domain

import (
	"time"

	"github.com/randevuhub/RH-AppointmentService/pkg/types"
)

// AppointmentStatus статус записи
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusApproved  AppointmentStatus = "approved"
	StatusCancelled AppointmentStatus = "cancelled"
	StatusCompleted AppointmentStatus = "completed"
)

// ActiveStatuses статусы, при которых запись занимает слот
// Отменённые и завершённые записи слот не блокируют
var ActiveStatuses = []AppointmentStatus{
	StatusPending,
	StatusApproved,
}

// TargetStatuses допустимые целевые статусы для операции смены статуса
var TargetStatuses = []AppointmentStatus{
	StatusApproved,
	StatusCancelled,
	StatusCompleted,
}

// Appointment запись клиента на услугу
type Appointment struct {
	ID         int64
	BusinessID int64
	ServiceID  *int64 // запись может не ссылаться на услугу

	CustomerName  string
	CustomerPhone string

	Date      time.Time // календарная дата без времени, локальное время бизнеса
	StartTime types.TimeString
	Status    AppointmentStatus
	Notes     *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive возвращает true, если запись занимает слот
func (a *Appointment) IsActive() bool {
	return a.Status == StatusPending || a.Status == StatusApproved
}

// IsTerminal возвращает true для конечных статусов
// Из конечного статуса переходы запрещены
func (s AppointmentStatus) IsTerminal() bool {
	return s == StatusCancelled || s == StatusCompleted
}

// CanTransitionTo проверяет допустимость перехода статуса
// Таблица переходов:
//
//	pending  -> approved | cancelled
//	approved -> completed | cancelled
//
// Повторный переход в текущий статус не является переходом и запрещён
func (s AppointmentStatus) CanTransitionTo(target AppointmentStatus) bool {
	switch s {
	case StatusPending:
		return target == StatusApproved || target == StatusCancelled
	case StatusApproved:
		return target == StatusCompleted || target == StatusCancelled
	default:
		return false
	}
}

// IsTargetStatus проверяет, что строка является одним из распознаваемых целевых статусов
func IsTargetStatus(s string) bool {
	for _, target := range TargetStatuses {
		if AppointmentStatus(s) == target {
			return true
		}
	}
	return false
}

// AppointmentsFilter фильтр для выборки записей бизнеса
type AppointmentsFilter struct {
	BusinessID int64              // Обязательный параметр
	Date       *time.Time         // Конкретная дата (опционально)
	StartDate  *time.Time         // Начало периода (опционально)
	EndDate    *time.Time         // Конец периода, не включается (опционально)
	Status     *AppointmentStatus // Фильтр по статусу (опционально)
	ActiveOnly bool               // Только pending/approved
}
