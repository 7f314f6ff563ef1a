package availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CounselingService/internal/domain"
	availabilityRepo "github.com/m04kA/SMC-CounselingService/internal/infra/storage/availability"
	"github.com/m04kA/SMC-CounselingService/pkg/types"
)

// Service сервис для чтения и точечного редактирования доступности консультантов
// Пакетное сохранение (add-range -> normalize -> merge -> persist) живет
// в usecase update_availability; здесь только чтение и удаление одного диапазона
type Service struct {
	availabilityRepo AvailabilityRepository
	logger           Logger
}

// NewService создает новый экземпляр сервиса доступности
func NewService(availabilityRepo AvailabilityRepository, logger Logger) *Service {
	return &Service{
		availabilityRepo: availabilityRepo,
		logger:           logger,
	}
}

// GetByCounselor возвращает сохраненные merged-диапазоны консультанта,
// сгруппированные по дням недели
//
// Повреждённые строки пропускаются по одной: одна битая запись не должна
// обнулять доступность всего дня
func (s *Service) GetByCounselor(ctx context.Context, counselorID int64) (domain.AvailabilitySet, error) {
	if counselorID <= 0 {
		return nil, fmt.Errorf("%w: counselorID must be positive", ErrInvalidInput)
	}

	s.logger.Info("GetByCounselor: fetching availability for counselor=%d", counselorID)

	rows, err := s.availabilityRepo.GetByCounselor(ctx, counselorID)
	if err != nil {
		s.logger.Error("GetByCounselor: repository error for counselor=%d: %v", counselorID, err)
		return nil, fmt.Errorf("%w: GetByCounselor - repository error: %v", ErrInternal, err)
	}

	set := make(domain.AvailabilitySet)
	for _, row := range rows {
		from, to, err := types.ParseRangeLabel(row.TimeScheduled)
		if err != nil || from >= to {
			s.logger.Warn("GetByCounselor: skipping corrupt availability row id=%d (%q): %v",
				row.ID, row.TimeScheduled, err)
			continue
		}
		set[row.Weekday] = append(set[row.Weekday], domain.Range{From: from, To: to})
	}

	s.logger.Info("GetByCounselor: fetched availability for counselor=%d, days=%d", counselorID, len(set))
	return set, nil
}

// DeleteRange удаляет один диапазон дня
// Запись дня исчезает только при явном удалении последнего диапазона,
// никогда автоматически
func (s *Service) DeleteRange(ctx context.Context, counselorID int64, day, from, to string) error {
	if counselorID <= 0 {
		return fmt.Errorf("%w: counselorID must be positive", ErrInvalidInput)
	}

	weekday, ok := domain.ParseWeekday(day)
	if !ok {
		s.logger.Warn("DeleteRange: invalid weekday %q for counselor=%d", day, counselorID)
		return ErrInvalidWeekday
	}

	fromTime, err := types.ParseTime12(from)
	if err != nil {
		return fmt.Errorf("%w: invalid 'from' time: %v", ErrInvalidInput, err)
	}
	toTime, err := types.ParseTime12(to)
	if err != nil {
		return fmt.Errorf("%w: invalid 'to' time: %v", ErrInvalidInput, err)
	}

	label := types.FormatRange(fromTime, toTime)

	s.logger.Info("DeleteRange: counselor=%d, day=%s, range=%s", counselorID, weekday, label)

	if err := s.availabilityRepo.DeleteRange(ctx, counselorID, weekday, label); err != nil {
		if errors.Is(err, availabilityRepo.ErrRangeNotFound) {
			s.logger.Warn("DeleteRange: range %s not found for counselor=%d, day=%s", label, counselorID, weekday)
			return ErrRangeNotFound
		}
		s.logger.Error("DeleteRange: repository error for counselor=%d: %v", counselorID, err)
		return fmt.Errorf("%w: DeleteRange - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteRange: successfully deleted range %s for counselor=%d, day=%s", label, counselorID, weekday)
	return nil
}
