package domain

import "time"

// Service услуга бизнеса
// Запись может ссылаться максимум на одну услугу
type Service struct {
	ID              int64
	BusinessID      int64
	Name            string
	DurationMinutes int
	Price           *float64 // цена опциональна
	IsActive        bool
	CreatedAt       time.Time
}
