package get_counselors_by_availability

import (
	"context"
	"fmt"
	"sort"

	"github.com/m04kA/SMC-CounselingService/internal/domain"
	"github.com/m04kA/SMC-CounselingService/internal/schedule"
)

// UseCase use case поиска консультантов, доступных в заданное время
type UseCase struct {
	availabilityRepo AvailabilityRepository
	accountClient    AccountServiceClient
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	availabilityRepo AvailabilityRepository,
	accountClient AccountServiceClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		availabilityRepo: availabilityRepo,
		accountClient:    accountClient,
		logger:           logger,
	}
}

// Execute выполняет use case поиска консультантов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetCounselorsByAvailability: weekday=%s, mode=%s", req.Weekday, req.TimeMode)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetCounselorsByAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем доступность всех консультантов на день недели одним запросом
	rows, err := uc.availabilityRepo.ListByWeekday(ctx, req.Weekday)
	if err != nil {
		uc.logger.Error("GetCounselorsByAvailability: failed to load availability: %v", err)
		return nil, fmt.Errorf("%w: failed to load availability: %v", ErrInternal, err)
	}

	// 3. Резолвим слоты каждого консультанта и применяем окно
	rangesByCounselor := make(map[int64][]domain.Range)
	for _, row := range rows {
		r, err := schedule.NormalizeLabel(row.TimeScheduled)
		if err != nil {
			uc.logger.Warn("GetCounselorsByAvailability: skipping corrupt row id=%d counselor=%d: %v",
				row.ID, row.CounselorID, err)
			continue
		}
		rangesByCounselor[row.CounselorID] = append(rangesByCounselor[row.CounselorID], r)
	}

	matched := make([]int64, 0, len(rangesByCounselor))
	for counselorID, ranges := range rangesByCounselor {
		starts := schedule.Expand(schedule.Merge(ranges))
		if req.Window != nil {
			starts = schedule.FilterWindow(starts, *req.Window, req.TimeMode)
		}
		if len(starts) > 0 {
			matched = append(matched, counselorID)
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i] < matched[j] })

	if len(matched) == 0 {
		return &Response{Counselors: []Counselor{}}, nil
	}

	// 4. Обогащаем именами из AccountService. Недоступность сервиса аккаунтов
	// не роняет поиск: отдаем ID без имен
	names := uc.fetchNames(ctx)

	counselors := make([]Counselor, 0, len(matched))
	for _, id := range matched {
		counselors = append(counselors, Counselor{ID: id, Name: names[id]})
	}

	uc.logger.Info("GetCounselorsByAvailability: matched %d counselors for %s", len(counselors), req.Weekday)

	return &Response{Counselors: counselors}, nil
}

// fetchNames получает имена консультантов; при ошибке возвращает пустую карту
func (uc *UseCase) fetchNames(ctx context.Context) map[int64]string {
	counselors, err := uc.accountClient.ListCounselors(ctx)
	if err != nil {
		uc.logger.Warn("GetCounselorsByAvailability: failed to fetch counselor names: %v", err)
		return map[int64]string{}
	}
	names := make(map[int64]string, len(counselors))
	for _, c := range counselors {
		names[c.ID] = c.Name
	}
	return names
}
