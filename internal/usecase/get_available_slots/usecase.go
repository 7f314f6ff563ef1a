package get_available_slots

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-CounselingService/internal/domain"
	availabilityRepo "github.com/m04kA/SMC-CounselingService/internal/infra/storage/availability"
)

// UseCase use case для резолвинга доступных получасовых слотов
type UseCase struct {
	availabilityRepo AvailabilityRepository
	appointmentRepo  AppointmentRepository
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	availabilityRepo AvailabilityRepository,
	appointmentRepo AppointmentRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		availabilityRepo: availabilityRepo,
		appointmentRepo:  appointmentRepo,
		logger:           logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: date=%s, counselor=%v, type=%s, mode=%s",
		req.Date.Format(domain.DateFormat), req.CounselorID, req.ConsultationType, req.TimeMode)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Выходные и неизвестные дни недели - пустой результат, не ошибка
	weekday, ok := domain.WeekdayFromDate(req.Date)
	if !ok {
		uc.logger.Info("GetAvailableSlots: %s is not a counseling weekday", req.Date.Format(domain.DateFormat))
		return &Response{Date: req.Date, Slots: []domain.AvailableSlot{}}, nil
	}

	// 3. Получаем сохраненную доступность
	rows, err := uc.fetchRows(ctx, weekday, req.CounselorID)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to load availability: %v", err)
		return nil, fmt.Errorf("%w: failed to load availability: %v", ErrInternal, err)
	}

	// 4. Резолвим старты слотов по каждому консультанту и применяем окно
	startsByCounselor := resolveCounselorStarts(rows, uc.logger)
	startsByCounselor = applyWindow(startsByCounselor, req.Window, req.TimeMode)

	// 5. Получаем активные записи на эту дату
	filter := domain.AppointmentsFilter{
		CounselorID:   req.CounselorID,
		Date:          &req.Date,
		OccupyingOnly: true,
	}
	appointments, err := uc.appointmentRepo.GetWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to load appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to load appointments: %v", ErrInternal, err)
	}

	// 6. Применяем фильтр занятости по типу консультации
	var slots []domain.AvailableSlot
	switch req.ConsultationType {
	case domain.ConsultationGroup:
		slots = resolveGroupSlots(startsByCounselor, appointments)
	default:
		slots = resolveIndividualSlots(startsByCounselor, appointments)
	}

	uc.logger.Info("GetAvailableSlots: resolved %d slots for date=%s", len(slots), req.Date.Format(domain.DateFormat))

	return &Response{Date: req.Date, Slots: slots}, nil
}

// fetchRows получает строки доступности для конкретного консультанта или всех сразу
func (uc *UseCase) fetchRows(ctx context.Context, weekday domain.Weekday, counselorID *int64) ([]availabilityRepo.Row, error) {
	if counselorID != nil {
		return uc.availabilityRepo.GetByCounselorAndWeekday(ctx, *counselorID, weekday)
	}
	return uc.availabilityRepo.ListByWeekday(ctx, weekday)
}
