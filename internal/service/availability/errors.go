package availability

import "errors"

var (
	// ErrRangeNotFound возвращается, когда удаляемый диапазон не найден
	ErrRangeNotFound = errors.New("availability range not found")

	// ErrInvalidWeekday возвращается для выходных и неизвестных дней недели
	ErrInvalidWeekday = errors.New("invalid counseling weekday")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
