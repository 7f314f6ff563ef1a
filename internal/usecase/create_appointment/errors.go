package create_appointment

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInvalidTime возвращается при нечитаемом или невыровненном времени слота
	ErrInvalidTime = errors.New("invalid slot time")

	// ErrInvalidConsultationType возвращается при неизвестном типе консультации
	ErrInvalidConsultationType = errors.New("invalid consultation type")

	// ErrCounselorNotFound возвращается, когда консультант не найден
	ErrCounselorNotFound = errors.New("counselor not found")

	// ErrCounselorInactive возвращается для деактивированного консультанта
	ErrCounselorInactive = errors.New("counselor is not active")

	// ErrNotCounselingDay возвращается для выходных дней
	ErrNotCounselingDay = errors.New("counseling is offered on weekdays only")

	// ErrDateInPast возвращается при попытке записаться на прошедшую дату
	ErrDateInPast = errors.New("date is in the past")

	// ErrSlotNotAvailable возвращается, когда слот вне доступности консультанта
	ErrSlotNotAvailable = errors.New("slot is outside counselor availability")

	// ErrSlotConflict возвращается, когда слот уже занят блокирующей записью
	ErrSlotConflict = errors.New("slot is already booked")

	// ErrCapacityExceeded возвращается, когда групповой слот заполнен
	ErrCapacityExceeded = errors.New("group slot capacity exceeded")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
