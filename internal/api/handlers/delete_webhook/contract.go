package delete_webhook

import "context"

type WebhooksService interface {
	Delete(ctx context.Context, id int64, adminToken string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
