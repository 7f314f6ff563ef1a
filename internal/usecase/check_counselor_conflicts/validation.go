package check_counselor_conflicts

import (
	"fmt"

	"github.com/m04kA/SMC-CounselingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.CounselorID <= 0 {
		return fmt.Errorf("%w: counselor_id must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if !req.Start.Valid() {
		return ErrInvalidTime
	}

	if int(req.Start)%domain.SlotDurationMinutes != 0 {
		return fmt.Errorf("%w: slot must start on a half-hour boundary", ErrInvalidTime)
	}

	return nil
}
