package schedule

import (
	"github.com/m04kA/SMC-CounselingService/internal/domain"
	"github.com/m04kA/SMC-CounselingService/pkg/types"
)

// Normalize валидирует и канонизирует один диапазон доступности
//
// Оба конца парсятся через единый кодек 12-часового времени (pkg/types) -
// это единственная точка входа строкового времени в движок.
// Возвращает types.ErrInvalidFormat при нечитаемом времени и ErrInvertedRange
// при from >= to. Пустые и перевернутые диапазоны не исправляются, а отбрасываются.
func Normalize(rawFrom, rawTo string) (domain.Range, error) {
	from, err := types.ParseTime12(rawFrom)
	if err != nil {
		return domain.Range{}, err
	}

	to, err := types.ParseTime12(rawTo)
	if err != nil {
		return domain.Range{}, err
	}

	if from >= to {
		return domain.Range{}, ErrInvertedRange
	}

	return domain.Range{From: from, To: to}, nil
}

// NormalizeLabel разбирает сохраненную строку диапазона "H:MM AM - H:MM PM"
// через тот же конвейер валидации
func NormalizeLabel(label string) (domain.Range, error) {
	from, to, err := types.ParseRangeLabel(label)
	if err != nil {
		return domain.Range{}, err
	}

	if from >= to {
		return domain.Range{}, ErrInvertedRange
	}

	return domain.Range{From: from, To: to}, nil
}
