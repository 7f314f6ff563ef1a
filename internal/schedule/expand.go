package schedule

import (
	"sort"

	"github.com/m04kA/SMC-CounselingService/internal/domain"
	"github.com/m04kA/SMC-CounselingService/pkg/types"
)

// Expand разворачивает дизъюнктные диапазоны в последовательность начал
// получасовых слотов
//
// Внутри каждого диапазона шаг 30 минут, пока слот целиком помещается
// (t + 30 <= to). Неполный хвост короче получаса отбрасывается: бронируются
// только полные получасовые слоты.
func Expand(ranges []domain.Range) []types.TimeOfDay {
	starts := make([]types.TimeOfDay, 0)
	for _, r := range ranges {
		for t := r.From; t.AddMinutes(domain.SlotDurationMinutes) <= r.To; t = t.AddMinutes(domain.SlotDurationMinutes) {
			starts = append(starts, t)
		}
	}
	return starts
}

// SlotLabel возвращает отображаемую подпись получасового слота по его началу
func SlotLabel(start types.TimeOfDay) string {
	return types.FormatRange(start, start.AddMinutes(domain.SlotDurationMinutes))
}

// SlotRange возвращает полуоткрытый интервал получасового слота по его началу
func SlotRange(start types.TimeOfDay) domain.Range {
	return domain.Range{From: start, To: start.AddMinutes(domain.SlotDurationMinutes)}
}

// ExpandLabels разворачивает диапазоны сразу в подписи слотов
func ExpandLabels(ranges []domain.Range) []string {
	starts := Expand(ranges)
	labels := make([]string, len(starts))
	for i, s := range starts {
		labels[i] = SlotLabel(s)
	}
	return labels
}

// Compact обратная операция к Expand: группирует отсортированные начала
// получасовых слотов обратно в диапазоны
//
// Последовательные начала (разница ровно 30 минут) жадно объединяются в один
// диапазон от первого начала группы до последнего начала + 30.
// Для дизъюнктных диапазонов, выровненных по получасу, Compact(Expand(R)) == R.
func Compact(starts []types.TimeOfDay) []domain.Range {
	if len(starts) == 0 {
		return []domain.Range{}
	}

	sorted := dedupStarts(starts)

	ranges := make([]domain.Range, 0)
	first := sorted[0]
	prev := sorted[0]

	for _, next := range sorted[1:] {
		if next-prev == domain.SlotDurationMinutes {
			prev = next
			continue
		}
		ranges = append(ranges, domain.Range{From: first, To: prev + domain.SlotDurationMinutes})
		first, prev = next, next
	}

	return append(ranges, domain.Range{From: first, To: prev + domain.SlotDurationMinutes})
}

// Union объединяет наборы начал слотов нескольких консультантов
//
// Дедупликация по минуте начала: два консультанта, доступные 9:00-9:30,
// дают ровно одну запись "9:00 AM - 9:30 AM" в общей выдаче.
func Union(sets ...[]types.TimeOfDay) []types.TimeOfDay {
	combined := make([]types.TimeOfDay, 0)
	for _, set := range sets {
		combined = append(combined, set...)
	}
	if len(combined) == 0 {
		return combined
	}
	return dedupStarts(combined)
}

// FilterWindow применяет запрошенное временное окно к набору начал слотов
//
// Режим overlap оставляет слот, если [start, start+30) пересекает окно
// (стандартный тест пересечения полуоткрытых интервалов, не вложенность).
// Режим exact требует точного совпадения границ слота с окном.
// Unrestricted возвращает набор без изменений.
func FilterWindow(starts []types.TimeOfDay, window domain.Range, mode domain.TimeMatchMode) []types.TimeOfDay {
	if mode == domain.MatchUnrestricted {
		return starts
	}

	kept := make([]types.TimeOfDay, 0, len(starts))
	for _, start := range starts {
		slot := SlotRange(start)
		switch mode {
		case domain.MatchOverlap:
			if slot.Overlaps(window) {
				kept = append(kept, start)
			}
		case domain.MatchExact:
			if slot == window {
				kept = append(kept, start)
			}
		}
	}
	return kept
}

// dedupStarts сортирует начала слотов по минутам и убирает дубликаты
func dedupStarts(starts []types.TimeOfDay) []types.TimeOfDay {
	sorted := make([]types.TimeOfDay, len(starts))
	copy(sorted, starts)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	out := sorted[:1]
	for _, s := range sorted[1:] {
		if s != out[len(out)-1] {
			out = append(out, s)
		}
	}
	return out
}
