package domain

import "time"

// Customer денормализованная карточка клиента, ключ - номер телефона
// Имя перезаписывается при каждой новой записи с того же номера
// Не является источником истины: восстанавливается из истории записей
type Customer struct {
	ID        int64
	Phone     string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CustomerSummary карточка клиента со сводкой по записям для админского списка
type CustomerSummary struct {
	Customer
	AppointmentCount    int64
	LastAppointmentDate *time.Time
}
