package accountservice

import "errors"

var (
	// ErrCounselorNotFound возвращается, когда консультант не найден
	ErrCounselorNotFound = errors.New("counselor not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("accountservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("accountservice client: invalid response")
)
