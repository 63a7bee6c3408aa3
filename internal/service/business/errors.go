package business

import "errors"

var (
	// ErrBusinessNotFound возвращается, когда бизнес не найден
	ErrBusinessNotFound = errors.New("business not found")

	// ErrBusinessExists возвращается при повторной попытке первичной настройки
	ErrBusinessExists = errors.New("business already exists")

	// ErrUnknownSector возвращается при неизвестном отраслевом шаблоне
	ErrUnknownSector = errors.New("unknown sector")

	// ErrAccessDenied возвращается при неверном админском токене
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
