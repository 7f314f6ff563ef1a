package availability

import (
	"context"

	"github.com/m04kA/SMC-CounselingService/internal/domain"
	availabilityRepo "github.com/m04kA/SMC-CounselingService/internal/infra/storage/availability"
)

// AvailabilityRepository интерфейс репозитория доступности
type AvailabilityRepository interface {
	GetByCounselor(ctx context.Context, counselorID int64) ([]availabilityRepo.Row, error)
	DeleteRange(ctx context.Context, counselorID int64, weekday domain.Weekday, label string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
