package update_appointment_status

import (
	"context"

	updateAppointmentStatus "github.com/randevuhub/RH-AppointmentService/internal/usecase/update_appointment_status"
)

type UpdateAppointmentStatusUseCase interface {
	Execute(ctx context.Context, req *updateAppointmentStatus.Request) (*updateAppointmentStatus.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
