package check_counselor_conflicts

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-CounselingService/internal/domain"
	"github.com/m04kA/SMC-CounselingService/internal/schedule"
	"github.com/m04kA/SMC-CounselingService/pkg/ptr"
)

// conflictTypeIndividual единственный вид конфликта: групповые записи слот
// для консультанта не блокируют, их ограничивает емкость
const conflictTypeIndividual = "individual"

// UseCase use case проверки конфликта расписания консультанта
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

// Execute выполняет проверку конфликта
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CheckCounselorConflicts: counselor=%d, date=%s, start=%s",
		req.CounselorID, req.Date.Format(domain.DateFormat), req.Start)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CheckCounselorConflicts: validation failed: %v", err)
		return nil, err
	}

	// 2. Достаем активные индивидуальные записи консультанта на дату
	filter := domain.AppointmentsFilter{
		CounselorID:      &req.CounselorID,
		Date:             &req.Date,
		ConsultationType: ptr.Ptr(domain.ConsultationIndividual),
		OccupyingOnly:    true,
	}
	appointments, err := uc.appointmentRepo.GetWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("CheckCounselorConflicts: failed to load appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to load appointments: %v", ErrInternal, err)
	}

	// 3. Конфликт - точное совпадение метки слота
	label := schedule.SlotLabel(req.Start)
	for _, appt := range appointments {
		if appt.TimeSlot == label {
			uc.logger.Info("CheckCounselorConflicts: conflict at %s for counselor=%d", label, req.CounselorID)
			return &Response{HasConflict: true, ConflictType: conflictTypeIndividual}, nil
		}
	}

	return &Response{HasConflict: false}, nil
}
