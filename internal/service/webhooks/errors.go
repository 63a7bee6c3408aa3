package webhooks

import "errors"

var (
	// ErrWebhookNotFound возвращается, когда подписка не найдена
	ErrWebhookNotFound = errors.New("webhook not found")

	// ErrBusinessNotFound возвращается, когда бизнес ещё не настроен
	ErrBusinessNotFound = errors.New("business not found")

	// ErrAccessDenied возвращается при неверном админском токене
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
