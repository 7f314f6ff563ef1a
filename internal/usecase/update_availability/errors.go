package update_availability

import "errors"

var (
	// ErrInvalidWeekday возвращается для выходных и неизвестных дней недели
	ErrInvalidWeekday = errors.New("update_availability: invalid counseling weekday")

	// ErrNoDays возвращается, когда в запросе нет ни одного дня
	ErrNoDays = errors.New("update_availability: no days provided")

	// ErrTimeOutsideWindow возвращается, когда конец диапазона выходит за
	// предлагаемую редактором сетку времени (07:00-17:30, без обеденных слотов)
	ErrTimeOutsideWindow = errors.New("update_availability: time outside selectable window")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("update_availability: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_availability: internal error")
)
