package get_student_appointments

import (
	"context"

	"github.com/m04kA/SMC-CounselingService/internal/domain"
)

type AppointmentsService interface {
	GetStudentAppointments(ctx context.Context, studentID int64, status *string) ([]*domain.Appointment, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
