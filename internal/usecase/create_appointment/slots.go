package create_appointment

import (
	"github.com/m04kA/SMC-CounselingService/internal/domain"
	availabilityRepo "github.com/m04kA/SMC-CounselingService/internal/infra/storage/availability"
	"github.com/m04kA/SMC-CounselingService/internal/schedule"
	"github.com/m04kA/SMC-CounselingService/pkg/types"
)

// slotCovered проверяет, что получасовой слот целиком лежит в сохраненной
// доступности консультанта. Битые строки хранилища пропускаются поштучно.
func slotCovered(rows []availabilityRepo.Row, start types.TimeOfDay, logger Logger) bool {
	ranges := make([]domain.Range, 0, len(rows))
	for _, row := range rows {
		r, err := schedule.NormalizeLabel(row.TimeScheduled)
		if err != nil {
			logger.Warn("CreateAppointment: skipping corrupt row id=%d counselor=%d: %v",
				row.ID, row.CounselorID, err)
			continue
		}
		ranges = append(ranges, r)
	}

	end := start + domain.SlotDurationMinutes
	for _, r := range schedule.Merge(ranges) {
		if start >= r.From && end <= r.To {
			return true
		}
	}
	return false
}

// checkSlotFree проверяет занятость слота активными записями консультанта.
// Индивидуальная запись блокирует слот целиком для обоих типов; групповые
// записи ограничены емкостью и несовместимы с индивидуальными в одном слоте.
func checkSlotFree(appointments []*domain.Appointment, label string, ctype domain.ConsultationType) error {
	individual := false
	groupCount := 0

	for _, appt := range appointments {
		if appt.TimeSlot != label || !appt.OccupiesSlot() {
			continue
		}
		switch appt.ConsultationType {
		case domain.ConsultationIndividual:
			individual = true
		case domain.ConsultationGroup:
			groupCount++
		}
	}

	if individual {
		return ErrSlotConflict
	}

	switch ctype {
	case domain.ConsultationIndividual:
		if groupCount > 0 {
			return ErrSlotConflict
		}
	case domain.ConsultationGroup:
		if groupCount >= domain.GroupSlotCapacity {
			return ErrCapacityExceeded
		}
	}

	return nil
}
