package get_counselors_by_availability

import (
	"context"

	"github.com/m04kA/SMC-CounselingService/internal/domain"
	availabilityRepo "github.com/m04kA/SMC-CounselingService/internal/infra/storage/availability"
	"github.com/m04kA/SMC-CounselingService/internal/integrations/accountservice"
)

// AvailabilityRepository интерфейс репозитория доступности консультантов
type AvailabilityRepository interface {
	// ListByWeekday получает диапазоны всех консультантов на день недели
	ListByWeekday(ctx context.Context, weekday domain.Weekday) ([]availabilityRepo.Row, error)
}

// AccountServiceClient интерфейс клиента для AccountService
type AccountServiceClient interface {
	ListCounselors(ctx context.Context) ([]accountservice.Counselor, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
