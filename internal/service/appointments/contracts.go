package appointments

import (
	"context"

	"github.com/m04kA/SMC-CounselingService/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей на консультации
type AppointmentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	GetWithFilter(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error)
	GetByStudent(ctx context.Context, studentID int64, status *domain.AppointmentStatus) ([]*domain.Appointment, error)
	CountByDay(ctx context.Context, from, to string, counselorID *int64) (map[string]int, error)
	UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus) error
	Cancel(ctx context.Context, id int64, reason string) error
}

// TransactionManager интерфейс менеджера транзакций
type TransactionManager interface {
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
