package appointments

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/m04kA/SMC-CounselingService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-CounselingService/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-CounselingService/pkg/types"
)

// Service сервис для работы с записями на консультации
type Service struct {
	appointmentRepo AppointmentRepository
	statsCache      *StatsCache
	txManager       TransactionManager
	logger          Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(appointmentRepo AppointmentRepository, statsCache *StatsCache, txManager TransactionManager, logger Logger) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		statsCache:      statsCache,
		txManager:       txManager,
		logger:          logger,
	}
}

// GetBookedTimes возвращает подписи занятых слотов на дату
// Учитываются только записи, занимающие слот (pending/approved):
// отмена или отклонение записи освобождает слот
func (s *Service) GetBookedTimes(ctx context.Context, date time.Time, counselorID *int64, consultationType *domain.ConsultationType) ([]string, error) {
	if date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	s.logger.Info("GetBookedTimes: date=%s", date.Format(domain.DateFormat))

	filter := domain.AppointmentsFilter{
		CounselorID:      counselorID,
		Date:             &date,
		ConsultationType: consultationType,
		OccupyingOnly:    true,
	}

	appts, err := s.appointmentRepo.GetWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetBookedTimes: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetBookedTimes - repository error: %v", ErrInternal, err)
	}

	// Дедупликация по подписи слота и сортировка по минутам начала,
	// никогда по строкам
	seen := make(map[string]types.TimeOfDay)
	for _, appt := range appts {
		if _, ok := seen[appt.TimeSlot]; ok {
			continue
		}
		start, _, err := types.ParseRangeLabel(appt.TimeSlot)
		if err != nil {
			s.logger.Warn("GetBookedTimes: skipping appointment id=%d with corrupt time slot %q", appt.ID, appt.TimeSlot)
			continue
		}
		seen[appt.TimeSlot] = start
	}

	booked := make([]string, 0, len(seen))
	for label := range seen {
		booked = append(booked, label)
	}
	sort.Slice(booked, func(i, j int) bool { return seen[booked[i]] < seen[booked[j]] })

	s.logger.Info("GetBookedTimes: found %d booked slots for %s", len(booked), date.Format(domain.DateFormat))
	return booked, nil
}

// GetStudentAppointments возвращает записи студента, свежие даты первыми.
// Опциональный фильтр по статусу - личный кабинет показывает вкладки
// "активные" и "прошедшие" отдельными запросами
func (s *Service) GetStudentAppointments(ctx context.Context, studentID int64, status *string) ([]*domain.Appointment, error) {
	if studentID <= 0 {
		return nil, fmt.Errorf("%w: student id is required", ErrInvalidInput)
	}

	var statusFilter *domain.AppointmentStatus
	if status != nil && *status != "" {
		parsed := domain.AppointmentStatus(*status)
		if !domain.ValidStatus(parsed) {
			s.logger.Warn("GetStudentAppointments: invalid status=%q for student=%d", *status, studentID)
			return nil, ErrInvalidStatus
		}
		statusFilter = &parsed
	}

	appts, err := s.appointmentRepo.GetByStudent(ctx, studentID, statusFilter)
	if err != nil {
		s.logger.Error("GetStudentAppointments: repository error for student=%d: %v", studentID, err)
		return nil, fmt.Errorf("%w: GetStudentAppointments - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetStudentAppointments: found %d appointments for student=%d", len(appts), studentID)
	return appts, nil
}

// UpdateStatus переводит запись в новый статус (approve/reject/complete)
func (s *Service) UpdateStatus(ctx context.Context, appointmentID int64, status string) error {
	newStatus := domain.AppointmentStatus(status)
	if !domain.ValidStatus(newStatus) {
		s.logger.Warn("UpdateStatus: invalid status=%q for appointment id=%d", status, appointmentID)
		return ErrInvalidStatus
	}

	if _, err := s.appointmentRepo.GetByID(ctx, appointmentID); err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("UpdateStatus: appointment id=%d not found", appointmentID)
			return ErrAppointmentNotFound
		}
		s.logger.Error("UpdateStatus: repository error for appointment id=%d: %v", appointmentID, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	if err := s.appointmentRepo.UpdateStatus(ctx, appointmentID, newStatus); err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			return ErrAppointmentNotFound
		}
		s.logger.Error("UpdateStatus: repository error for appointment id=%d: %v", appointmentID, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: appointment id=%d moved to status=%s", appointmentID, newStatus)
	return nil
}

// Cancel отменяет запись с указанием причины
// Отменённая запись освобождает слот и перестает учитываться
// в лимите групповой консультации
func (s *Service) Cancel(ctx context.Context, appointmentID int64, reason string) error {
	appt, err := s.appointmentRepo.GetByID(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Cancel: appointment id=%d not found", appointmentID)
			return ErrAppointmentNotFound
		}
		s.logger.Error("Cancel: repository error for appointment id=%d: %v", appointmentID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if !appt.CanBeCancelled() {
		s.logger.Warn("Cancel: appointment id=%d cannot be cancelled, status=%s", appointmentID, appt.Status)
		return ErrCannotCancel
	}

	if err := s.appointmentRepo.Cancel(ctx, appointmentID, reason); err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			return ErrAppointmentNotFound
		}
		s.logger.Error("Cancel: repository error for appointment id=%d: %v", appointmentID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled appointment id=%d", appointmentID)
	return nil
}

// GetMonthStats возвращает количество занятых записей по дням месяца
// Результат кэшируется с коротким TTL - статистика питает только
// отображение календаря
func (s *Service) GetMonthStats(ctx context.Context, year int, month time.Month, counselorID *int64) (map[string]int, error) {
	if year < 2000 || year > 2200 {
		return nil, fmt.Errorf("%w: year out of range", ErrInvalidInput)
	}

	cacheKey := fmt.Sprintf("%04d-%02d", year, month)
	if counselorID != nil {
		cacheKey = fmt.Sprintf("%s:%d", cacheKey, *counselorID)
	}

	if counts, ok := s.statsCache.Get(cacheKey); ok {
		s.logger.Info("GetMonthStats: cache hit for %s", cacheKey)
		return counts, nil
	}

	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)

	// Календарь читается в read-only транзакции: срез по дням месяца
	// не должен видеть половину конкурентного бронирования
	var counts map[string]int
	err := s.txManager.DoReadOnly(ctx, func(txCtx context.Context) error {
		var repoErr error
		counts, repoErr = s.appointmentRepo.CountByDay(txCtx,
			first.Format(domain.DateFormat), last.Format(domain.DateFormat), counselorID)
		return repoErr
	})
	if err != nil {
		s.logger.Error("GetMonthStats: repository error for %s: %v", cacheKey, err)
		return nil, fmt.Errorf("%w: GetMonthStats - repository error: %v", ErrInternal, err)
	}

	s.statsCache.Set(cacheKey, counts)

	s.logger.Info("GetMonthStats: loaded stats for %s, days=%d", cacheKey, len(counts))
	return counts, nil
}
