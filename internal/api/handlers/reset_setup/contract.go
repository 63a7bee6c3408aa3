package reset_setup

import "context"

type BusinessService interface {
	Reset(ctx context.Context, password string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
