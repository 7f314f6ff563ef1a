package update_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CounselingService/internal/domain"
	"github.com/m04kA/SMC-CounselingService/internal/schedule"
)

// UseCase use case сохранения недельной доступности консультанта
//
// Конвейер: normalize -> merge -> persist. Перевернутые и нулевые диапазоны
// молча отбрасываются (продуктовое решение: диапазоны приходят из UI-контрола
// по одному, и одно некорректное значение не должно валить все сохранение).
// Вся замена выполняется в одной транзакции, так что конкурентные правки
// одного консультанта не переплетаются
type UseCase struct {
	availabilityRepo AvailabilityRepository
	txManager        TransactionManager
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(availabilityRepo AvailabilityRepository, txManager TransactionManager, logger Logger) *UseCase {
	return &UseCase{
		availabilityRepo: availabilityRepo,
		txManager:        txManager,
		logger:           logger,
	}
}

// Execute выполняет сохранение доступности
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateAvailability: counselor=%d, days=%d", req.CounselorID, len(req.Days))

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("UpdateAvailability: validation failed: %v", err)
		return nil, err
	}

	// 1. Нормализуем и merge-им диапазоны каждого дня до открытия транзакции
	dropped := 0
	merged := make(map[domain.Weekday]domain.DayAvailability, len(req.Days))

	for _, day := range req.Days {
		weekday, ok := domain.ParseWeekday(day)
		if !ok {
			uc.logger.Warn("UpdateAvailability: invalid weekday %q for counselor=%d", day, req.CounselorID)
			return nil, ErrInvalidWeekday
		}

		ranges := make([]domain.Range, 0, len(req.TimesByDay[day]))
		for _, label := range req.TimesByDay[day] {
			r, err := schedule.NormalizeLabel(label)
			if err != nil {
				// Перевернутый или нечитаемый диапазон отбрасывается молча,
				// остальные элементы пакета обрабатываются дальше
				uc.logger.Warn("UpdateAvailability: dropping range %q for counselor=%d day=%s: %v",
					label, req.CounselorID, weekday, err)
				dropped++
				continue
			}

			if err := validateWithinWindow(r); err != nil {
				uc.logger.Warn("UpdateAvailability: range %q outside selectable window for counselor=%d", label, req.CounselorID)
				return nil, err
			}

			ranges = append(ranges, r)
		}

		// Весь набор дня пересобирается заново, а не merge только с новым
		// элементом - историческая фрагментация самоустраняется
		merged[weekday] = domain.DayAvailability{
			Weekday: weekday,
			Ranges:  schedule.Merge(ranges),
		}
	}

	// 2. Персистим все дни атомарно
	savedRanges := 0
	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		for _, day := range merged {
			labels := make([]string, len(day.Ranges))
			for i, r := range day.Ranges {
				labels[i] = r.Label()
			}

			if err := uc.availabilityRepo.ReplaceDay(txCtx, req.CounselorID, day.Weekday, labels); err != nil {
				return fmt.Errorf("%w: failed to replace day %s: %v", ErrInternal, day.Weekday, err)
			}
			savedRanges += len(labels)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrInternal) {
			uc.logger.Error("UpdateAvailability: persistence failed for counselor=%d: %v", req.CounselorID, err)
			return nil, err
		}
		uc.logger.Error("UpdateAvailability: transaction failed for counselor=%d: %v", req.CounselorID, err)
		return nil, fmt.Errorf("%w: transaction failed: %v", ErrInternal, err)
	}

	uc.logger.Info("UpdateAvailability: counselor=%d saved days=%d ranges=%d dropped=%d",
		req.CounselorID, len(merged), savedRanges, dropped)

	return &Response{
		SavedDays:    len(merged),
		SavedRanges:  savedRanges,
		DroppedItems: dropped,
	}, nil
}
