package check_group_slots

import (
	"context"

	"github.com/m04kA/SMC-CounselingService/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей на консультации
type AppointmentRepository interface {
	// GetWithFilter получает записи по фильтру
	GetWithFilter(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
