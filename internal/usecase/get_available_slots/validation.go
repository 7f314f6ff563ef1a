package get_available_slots

import (
	"fmt"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.CounselorID != nil && *req.CounselorID <= 0 {
		return fmt.Errorf("%w: counselor_id must be positive", ErrInvalidInput)
	}

	if req.ConsultationType != "" && !req.ConsultationType.Valid() {
		return ErrInvalidConsultationType
	}

	// Окно без режима бессмысленно, режим без окна безвреден
	if req.Window != nil && req.TimeMode == "" {
		return fmt.Errorf("%w: time mode is required when a window is set", ErrInvalidTimeMode)
	}

	return nil
}
