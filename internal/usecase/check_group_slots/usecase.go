package check_group_slots

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-CounselingService/internal/domain"
	"github.com/m04kA/SMC-CounselingService/internal/schedule"
	"github.com/m04kA/SMC-CounselingService/pkg/ptr"
)

// UseCase use case проверки емкости группового слота
type UseCase struct {
	appointmentRepo AppointmentRepository
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(appointmentRepo AppointmentRepository, logger Logger) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		logger:          logger,
	}
}

// Execute выполняет проверку емкости
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CheckGroupSlots: date=%s, start=%s, counselor=%v",
		req.Date.Format(domain.DateFormat), req.Start, req.CounselorID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CheckGroupSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. На выходных групповых слотов нет
	if _, ok := domain.WeekdayFromDate(req.Date); !ok {
		return &Response{}, nil
	}

	// 3. Считаем активные групповые записи на этот слот
	filter := domain.AppointmentsFilter{
		CounselorID:      req.CounselorID,
		Date:             &req.Date,
		ConsultationType: ptr.Ptr(domain.ConsultationGroup),
		OccupyingOnly:    true,
	}
	appointments, err := uc.appointmentRepo.GetWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("CheckGroupSlots: failed to load appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to load appointments: %v", ErrInternal, err)
	}

	label := schedule.SlotLabel(req.Start)
	booked := 0
	for _, appt := range appointments {
		if appt.TimeSlot == label {
			booked++
		}
	}

	status := domain.GroupSlotStatusFor(booked)

	uc.logger.Info("CheckGroupSlots: slot=%s booked=%d available=%d", label, status.BookedSlots, status.AvailableSlots)

	return &Response{GroupSlotStatus: status}, nil
}
