package create_appointment

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-CounselingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.StudentID <= 0 {
		return fmt.Errorf("%w: student_id must be positive", ErrInvalidInput)
	}

	if req.CounselorID <= 0 {
		return fmt.Errorf("%w: counselor_id must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if !req.ConsultationType.Valid() {
		return ErrInvalidConsultationType
	}

	if !req.Start.Valid() {
		return ErrInvalidTime
	}

	if int(req.Start)%domain.SlotDurationMinutes != 0 {
		return fmt.Errorf("%w: slot must start on a half-hour boundary", ErrInvalidTime)
	}

	return nil
}

// validateDate проверяет, что дата не в прошлом (сравниваются только даты)
func validateDate(date, now time.Time) error {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if dateOnly.Before(nowOnly) {
		return ErrDateInPast
	}
	return nil
}
