package get_counselors_by_availability

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInvalidWeekday возвращается для выходных и неизвестных дней недели
	ErrInvalidWeekday = errors.New("invalid weekday")

	// ErrInvalidTimeMode возвращается при неизвестном режиме сопоставления времени
	ErrInvalidTimeMode = errors.New("invalid time match mode")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
