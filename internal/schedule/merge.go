package schedule

import (
	"sort"

	"github.com/m04kA/SMC-CounselingService/internal/domain"
)

// Merge сводит набор диапазонов одного дня к минимальному дизъюнктному представлению
//
// Диапазоны сортируются по началу (сравнение только в минутах, никогда по строкам)
// и склеиваются слева направо. Соседние диапазоны вида 9:00-10:00 и 10:00-11:00
// тоже склеиваются (сравнение через <=), поэтому результат минимален.
// Операция идемпотентна: Merge(Merge(x)) == Merge(x).
//
// Вызывается при каждом добавлении диапазона: новый диапазон дописывается к уже
// сохраненным за день и весь набор пересобирается заново, так что историческая
// фрагментация самоустраняется.
func Merge(ranges []domain.Range) []domain.Range {
	if len(ranges) == 0 {
		return []domain.Range{}
	}

	sorted := make([]domain.Range, len(ranges))
	copy(sorted, ranges)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].From != sorted[j].From {
			return sorted[i].From < sorted[j].From
		}
		return sorted[i].To < sorted[j].To
	})

	merged := make([]domain.Range, 0, len(sorted))
	current := sorted[0]

	for _, next := range sorted[1:] {
		if next.From <= current.To {
			// Пересечение или стык - расширяем текущий диапазон
			if next.To > current.To {
				current.To = next.To
			}
			continue
		}
		merged = append(merged, current)
		current = next
	}

	return append(merged, current)
}
