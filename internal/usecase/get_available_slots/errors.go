package get_available_slots

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInvalidConsultationType возвращается при неизвестном типе консультации
	ErrInvalidConsultationType = errors.New("invalid consultation type")

	// ErrInvalidTimeMode возвращается при неизвестном режиме сопоставления времени
	ErrInvalidTimeMode = errors.New("invalid time match mode")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
