package update_availability

import (
	"fmt"

	"github.com/m04kA/SMC-CounselingService/internal/domain"
)

// validateRequest проверяет базовую корректность запроса
func validateRequest(req *Request) error {
	if req.CounselorID <= 0 {
		return fmt.Errorf("%w: counselor_id must be positive", ErrInvalidInput)
	}
	if len(req.Days) == 0 {
		return ErrNoDays
	}
	return nil
}

// validateWithinWindow проверяет, что обе границы диапазона принадлежат
// множеству выбираемых стартов редактора расписания. Проверка живет на
// входной границе: normalize и merge про рабочее окно ничего не знают
func validateWithinWindow(r domain.Range) error {
	if !domain.IsSelectableTime(r.From) {
		return fmt.Errorf("%w: %s", ErrTimeOutsideWindow, r.From.String())
	}
	// Конец диапазона корректен, если последний слот внутри него стартует
	// с выбираемого времени: 12:00 проходит (слот 11:30), 13:00 - нет
	if !domain.IsSelectableTime(r.To - domain.SlotDurationMinutes) {
		return fmt.Errorf("%w: %s", ErrTimeOutsideWindow, r.To.String())
	}
	return nil
}
