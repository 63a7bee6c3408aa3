package mark_all_notifications_read

import "context"

type NotificationsService interface {
	MarkAllRead(ctx context.Context, businessID int64, adminToken string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
