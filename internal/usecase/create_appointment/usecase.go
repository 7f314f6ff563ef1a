package create_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CounselingService/internal/domain"
	accountClient "github.com/m04kA/SMC-CounselingService/internal/integrations/accountservice"
	"github.com/m04kA/SMC-CounselingService/internal/schedule"
)

// UseCase use case для создания записи на консультацию
type UseCase struct {
	appointmentRepo  AppointmentRepository
	availabilityRepo AvailabilityRepository
	accountClient    AccountServiceClient
	txManager        TransactionManager
	timeProvider     TimeProvider
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	availabilityRepo AvailabilityRepository,
	accountClient AccountServiceClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo:  appointmentRepo,
		availabilityRepo: availabilityRepo,
		accountClient:    accountClient,
		txManager:        txManager,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
	}
}

// Execute выполняет use case создания записи
// Использует сериализуемую транзакцию для предотвращения гонки данных:
// шестая групповая запись и двойное индивидуальное бронирование отсекаются
// на границе коммита, а не только на предварительной проверке
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: student=%d, counselor=%d, date=%s, start=%s, type=%s",
		req.StudentID, req.CounselorID, req.Date.Format(domain.DateFormat), req.Start, req.ConsultationType)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Дата должна быть будущим рабочим днем
	now := uc.timeProvider.Now()
	if err := validateDate(req.Date, now); err != nil {
		uc.logger.Warn("CreateAppointment: date validation failed: %v", err)
		return nil, err
	}

	weekday, ok := domain.WeekdayFromDate(req.Date)
	if !ok {
		uc.logger.Warn("CreateAppointment: %s is not a counseling weekday", req.Date.Format(domain.DateFormat))
		return nil, ErrNotCounselingDay
	}

	// 3. Проверяем консультанта в AccountService
	counselor, err := uc.accountClient.GetCounselor(ctx, req.CounselorID)
	if err != nil {
		if errors.Is(err, accountClient.ErrCounselorNotFound) {
			uc.logger.Warn("CreateAppointment: counselor id=%d not found", req.CounselorID)
			return nil, ErrCounselorNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get counselor id=%d: %v", req.CounselorID, err)
		return nil, fmt.Errorf("%w: failed to get counselor: %v", ErrInternal, err)
	}
	if !counselor.IsActive {
		uc.logger.Warn("CreateAppointment: counselor id=%d is inactive", req.CounselorID)
		return nil, ErrCounselorInactive
	}

	label := schedule.SlotLabel(req.Start)

	// Переменная для хранения результата
	var result *domain.Appointment

	// 4. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Слот должен целиком лежать в доступности консультанта
		rows, err := uc.availabilityRepo.GetByCounselorAndWeekday(txCtx, req.CounselorID, weekday)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to load availability: %v", err)
			return fmt.Errorf("%w: failed to load availability: %v", ErrInternal, err)
		}

		if !slotCovered(rows, req.Start, uc.logger) {
			uc.logger.Warn("CreateAppointment: slot %s not in availability of counselor=%d", label, req.CounselorID)
			return ErrSlotNotAvailable
		}

		// 4.2. Получаем активные записи консультанта на дату с блокировкой (FOR UPDATE)
		filter := domain.AppointmentsFilter{
			CounselorID:   &req.CounselorID,
			Date:          &req.Date,
			OccupyingOnly: true,
		}
		appointments, err := uc.appointmentRepo.GetWithFilter(txCtx, filter)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to load appointments: %v", err)
			return fmt.Errorf("%w: failed to load appointments: %v", ErrInternal, err)
		}

		// 4.3. Проверяем занятость слота
		if err := checkSlotFree(appointments, label, req.ConsultationType); err != nil {
			uc.logger.Warn("CreateAppointment: slot %s rejected for counselor=%d: %v", label, req.CounselorID, err)
			return err
		}

		// 4.4. Создаем запись в статусе pending
		appointment := &domain.Appointment{
			StudentID:        req.StudentID,
			CounselorID:      req.CounselorID,
			Date:             req.Date,
			TimeSlot:         label,
			ConsultationType: req.ConsultationType,
			Status:           domain.StatusPending,
			Notes:            req.Notes,
		}

		created, err := uc.appointmentRepo.Create(txCtx, appointment)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateAppointment: successfully created appointment id=%d", result.ID)

	return &Response{
		ID:               result.ID,
		StudentID:        result.StudentID,
		CounselorID:      result.CounselorID,
		Date:             result.Date,
		TimeSlot:         result.TimeSlot,
		ConsultationType: string(result.ConsultationType),
		Status:           string(result.Status),
		Notes:            result.Notes,
		CreatedAt:        result.CreatedAt,
		UpdatedAt:        result.UpdatedAt,
	}, nil
}
