package update_appointment_status

import (
	"context"
)

type AppointmentsService interface {
	UpdateStatus(ctx context.Context, appointmentID int64, status string) error
	Cancel(ctx context.Context, appointmentID int64, reason string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
