package update_availability

import (
	"context"

	"github.com/m04kA/SMC-CounselingService/internal/domain"
)

// AvailabilityRepository интерфейс репозитория доступности
type AvailabilityRepository interface {
	// ReplaceDay заменяет сохраненные диапазоны дня новым merged-набором
	ReplaceDay(ctx context.Context, counselorID int64, weekday domain.Weekday, labels []string) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
