package get_counselors_by_availability

import "fmt"

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.Weekday == "" {
		return fmt.Errorf("%w: weekday is required", ErrInvalidInput)
	}

	if req.Window != nil && req.TimeMode == "" {
		return fmt.Errorf("%w: time mode is required when a window is set", ErrInvalidTimeMode)
	}

	return nil
}
