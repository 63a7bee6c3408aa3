package webhook

import "errors"

var (
	// ErrWebhookNotFound возвращается, когда подписка не найдена
	ErrWebhookNotFound = errors.New("webhook.repository: webhook not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("webhook.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("webhook.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("webhook.repository: failed to scan row")
)
