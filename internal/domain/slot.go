package domain

import "github.com/randevuhub/RH-AppointmentService/pkg/types"

// TimeSlot слот в рамках рабочего дня - атомарная единица бронирования
type TimeSlot struct {
	StartTime types.TimeString
	Available bool
}

// Коды причин пустого списка слотов
const (
	// ReasonClosedDay дата вне набора рабочих дней бизнеса
	ReasonClosedDay = "closed_day"
)
