package get_available_slots

import (
	"context"

	"github.com/m04kA/SMC-CounselingService/internal/domain"
	availabilityRepo "github.com/m04kA/SMC-CounselingService/internal/infra/storage/availability"
)

// AvailabilityRepository интерфейс репозитория доступности консультантов
type AvailabilityRepository interface {
	// GetByCounselorAndWeekday получает сохраненные диапазоны одного консультанта на день недели
	GetByCounselorAndWeekday(ctx context.Context, counselorID int64, weekday domain.Weekday) ([]availabilityRepo.Row, error)
	// ListByWeekday получает диапазоны всех консультантов на день недели
	ListByWeekday(ctx context.Context, weekday domain.Weekday) ([]availabilityRepo.Row, error)
}

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
