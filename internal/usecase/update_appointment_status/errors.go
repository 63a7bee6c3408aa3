package update_appointment_status

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда запись не найдена
	ErrAppointmentNotFound = errors.New("appointment not found")

	// ErrInvalidTransition возвращается при недопустимом переходе статуса
	// Повторный переход в текущий статус тоже считается недопустимым
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrUnauthorized возвращается при неверном админском токене
	ErrUnauthorized = errors.New("invalid admin credentials")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
