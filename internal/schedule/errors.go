package schedule

import "errors"

var (
	// ErrInvertedRange возвращается, когда from >= to
	// По продуктовому решению такие диапазоны молча отбрасываются вызывающей стороной,
	// а не прерывают пакетное сохранение
	ErrInvertedRange = errors.New("schedule: inverted or zero-length range")
)
