package get_available_slots

import (
	"sort"

	"github.com/m04kA/SMC-CounselingService/internal/domain"
	availabilityRepo "github.com/m04kA/SMC-CounselingService/internal/infra/storage/availability"
	"github.com/m04kA/SMC-CounselingService/internal/schedule"
	"github.com/m04kA/SMC-CounselingService/pkg/types"
)

// resolveCounselorStarts строит по сырым строкам хранилища множество стартов
// слотов каждого консультанта: normalize -> merge -> expand. Битые строки
// пропускаются поштучно, не обрушая весь результат.
func resolveCounselorStarts(rows []availabilityRepo.Row, logger Logger) map[int64][]types.TimeOfDay {
	rangesByCounselor := make(map[int64][]domain.Range)

	for _, row := range rows {
		r, err := schedule.NormalizeLabel(row.TimeScheduled)
		if err != nil {
			// Битая строка в хранилище - пропускаем только ее
			logger.Warn("GetAvailableSlots: skipping corrupt row id=%d counselor=%d value=%q: %v",
				row.ID, row.CounselorID, row.TimeScheduled, err)
			continue
		}
		rangesByCounselor[row.CounselorID] = append(rangesByCounselor[row.CounselorID], r)
	}

	starts := make(map[int64][]types.TimeOfDay, len(rangesByCounselor))
	for counselorID, ranges := range rangesByCounselor {
		starts[counselorID] = schedule.Expand(schedule.Merge(ranges))
	}
	return starts
}

// occupiedLabels собирает метки слотов, занятых у консультанта активными
// записями. Для individual-расчетов занятость создает запись любого типа:
// консультант физически занят в это время.
func occupiedLabels(appointments []*domain.Appointment, counselorID int64) map[string]struct{} {
	occupied := make(map[string]struct{})
	for _, appt := range appointments {
		if appt.CounselorID != counselorID || !appt.OccupiesSlot() {
			continue
		}
		occupied[appt.TimeSlot] = struct{}{}
	}
	return occupied
}

// groupBookedCount считает активные групповые записи консультанта на слот
func groupBookedCount(appointments []*domain.Appointment, counselorID int64, label string) int {
	count := 0
	for _, appt := range appointments {
		if appt.CounselorID != counselorID || !appt.OccupiesSlot() {
			continue
		}
		if appt.ConsultationType == domain.ConsultationGroup && appt.TimeSlot == label {
			count++
		}
	}
	return count
}

// hasIndividualAt проверяет, занят ли слот консультанта индивидуальной записью
func hasIndividualAt(appointments []*domain.Appointment, counselorID int64, label string) bool {
	for _, appt := range appointments {
		if appt.CounselorID != counselorID || !appt.OccupiesSlot() {
			continue
		}
		if appt.ConsultationType == domain.ConsultationIndividual && appt.TimeSlot == label {
			return true
		}
	}
	return false
}

// resolveIndividualSlots оставляет слоты, свободные хотя бы у одного
// консультанта. Результат дедуплицируется по минуте старта: один и тот же
// слот у двух консультантов - одна позиция в ответе.
func resolveIndividualSlots(
	startsByCounselor map[int64][]types.TimeOfDay,
	appointments []*domain.Appointment,
) []domain.AvailableSlot {
	free := make(map[types.TimeOfDay]struct{})

	for counselorID, starts := range startsByCounselor {
		occupied := occupiedLabels(appointments, counselorID)
		for _, start := range starts {
			if _, busy := occupied[schedule.SlotLabel(start)]; busy {
				continue
			}
			free[start] = struct{}{}
		}
	}

	slots := make([]domain.AvailableSlot, 0, len(free))
	for start := range free {
		slots = append(slots, domain.AvailableSlot{
			Start:             start,
			Label:             schedule.SlotLabel(start),
			RemainingCapacity: 1,
			TotalCapacity:     1,
		})
	}
	sortSlots(slots)
	return slots
}

// resolveGroupSlots оставляет слоты с остаточной емкостью хотя бы у одного
// консультанта; в ответе максимальный остаток среди консультантов.
// Индивидуальная запись в слоте полностью закрывает его у консультанта.
func resolveGroupSlots(
	startsByCounselor map[int64][]types.TimeOfDay,
	appointments []*domain.Appointment,
) []domain.AvailableSlot {
	best := make(map[types.TimeOfDay]int)

	for counselorID, starts := range startsByCounselor {
		for _, start := range starts {
			label := schedule.SlotLabel(start)
			if hasIndividualAt(appointments, counselorID, label) {
				continue
			}

			slot := domain.AvailableSlot{
				Start:             start,
				Label:             label,
				RemainingCapacity: domain.GroupSlotCapacity - groupBookedCount(appointments, counselorID, label),
				TotalCapacity:     domain.GroupSlotCapacity,
			}
			if slot.IsFull() {
				continue
			}
			if slot.RemainingCapacity > best[start] {
				best[start] = slot.RemainingCapacity
			}
		}
	}

	slots := make([]domain.AvailableSlot, 0, len(best))
	for start, remaining := range best {
		slots = append(slots, domain.AvailableSlot{
			Start:             start,
			Label:             schedule.SlotLabel(start),
			RemainingCapacity: remaining,
			TotalCapacity:     domain.GroupSlotCapacity,
		})
	}
	sortSlots(slots)
	return slots
}

// applyWindow фильтрует старты каждого консультанта по запрошенному окну
func applyWindow(
	startsByCounselor map[int64][]types.TimeOfDay,
	window *domain.Range,
	mode domain.TimeMatchMode,
) map[int64][]types.TimeOfDay {
	if window == nil || mode == domain.MatchUnrestricted {
		return startsByCounselor
	}
	filtered := make(map[int64][]types.TimeOfDay, len(startsByCounselor))
	for counselorID, starts := range startsByCounselor {
		filtered[counselorID] = schedule.FilterWindow(starts, *window, mode)
	}
	return filtered
}

// sortSlots сортирует слоты по минуте старта, никогда не лексикографически
func sortSlots(slots []domain.AvailableSlot) {
	sort.Slice(slots, func(i, j int) bool {
		return slots[i].Start < slots[j].Start
	})
}
