package domain

// Значения по умолчанию для нового бизнеса
const (
	DefaultSlotDurationMinutes    = 30
	DefaultServiceDurationMinutes = 30
	DefaultOpenTime               = "09:00"
	DefaultCloseTime              = "18:00"
	DefaultWorkingDays            = "1,2,3,4,5,6" // понедельник-суббота
)

// Ограничения входных данных
const (
	MaxCustomerNameLength  = 120
	MaxCustomerPhoneLength = 32
	MaxNotesLength         = 500
	MaxServiceNameLength   = 120
)

// Форматы даты и времени
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
