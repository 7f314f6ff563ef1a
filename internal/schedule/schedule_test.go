package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CounselingService/internal/domain"
	"github.com/m04kA/SMC-CounselingService/pkg/types"
)

func rng(from, to types.TimeOfDay) domain.Range {
	return domain.Range{From: from, To: to}
}

func TestNormalize(t *testing.T) {
	t.Run("valid range", func(t *testing.T) {
		r, err := Normalize("9:00 AM", "11:00 AM")
		require.NoError(t, err)
		assert.Equal(t, rng(540, 660), r)
	})

	t.Run("inverted range dropped", func(t *testing.T) {
		_, err := Normalize("2:00 PM", "1:00 PM")
		require.ErrorIs(t, err, ErrInvertedRange)
	})

	t.Run("zero-length range dropped", func(t *testing.T) {
		_, err := Normalize("9:00 AM", "9:00 AM")
		require.ErrorIs(t, err, ErrInvertedRange)
	})

	t.Run("unparseable endpoint", func(t *testing.T) {
		_, err := Normalize("25:00 AM", "11:00 AM")
		require.ErrorIs(t, err, types.ErrInvalidFormat)
	})
}

func TestNormalizeLabel(t *testing.T) {
	r, err := NormalizeLabel("9:00 AM - 11:00 AM")
	require.NoError(t, err)
	assert.Equal(t, rng(540, 660), r)

	_, err = NormalizeLabel("11:00 AM - 9:00 AM")
	require.ErrorIs(t, err, ErrInvertedRange)

	_, err = NormalizeLabel("corrupt row")
	require.ErrorIs(t, err, types.ErrInvalidFormat)
}

func TestMerge(t *testing.T) {
	tests := []struct {
		name  string
		input []domain.Range
		want  []domain.Range
	}{
		{
			name:  "empty",
			input: nil,
			want:  []domain.Range{},
		},
		{
			name:  "adjacent ranges merge",
			input: []domain.Range{rng(540, 600), rng(600, 660), rng(780, 840)},
			want:  []domain.Range{rng(540, 660), rng(780, 840)},
		},
		{
			name:  "overlapping ranges merge",
			input: []domain.Range{rng(540, 600), rng(570, 660)},
			want:  []domain.Range{rng(540, 660)},
		},
		{
			name:  "unsorted input",
			input: []domain.Range{rng(780, 840), rng(540, 600)},
			want:  []domain.Range{rng(540, 600), rng(780, 840)},
		},
		{
			name:  "contained range absorbed",
			input: []domain.Range{rng(540, 720), rng(570, 600)},
			want:  []domain.Range{rng(540, 720)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Merge(tt.input)
			assert.Equal(t, tt.want, got)

			// Идемпотентность: повторный merge ничего не меняет
			assert.Equal(t, got, Merge(got))
		})
	}
}

func TestExpand(t *testing.T) {
	t.Run("single range", func(t *testing.T) {
		starts := Expand([]domain.Range{rng(540, 660)})
		assert.Equal(t, []types.TimeOfDay{540, 570, 600, 630}, starts)
	})

	t.Run("partial tail dropped", func(t *testing.T) {
		// 9:00-10:15 - хвост 10:00-10:15 короче получаса и не бронируется
		starts := Expand([]domain.Range{rng(540, 615)})
		assert.Equal(t, []types.TimeOfDay{540, 570}, starts)
	})

	t.Run("range shorter than a slot", func(t *testing.T) {
		starts := Expand([]domain.Range{rng(540, 555)})
		assert.Empty(t, starts)
	})
}

func TestExpandLabels(t *testing.T) {
	labels := ExpandLabels([]domain.Range{rng(540, 600)})
	assert.Equal(t, []string{"9:00 AM - 9:30 AM", "9:30 AM - 10:00 AM"}, labels)
}

func TestCompact_InverseOfExpand(t *testing.T) {
	sets := [][]domain.Range{
		{rng(540, 660)},
		{rng(540, 660), rng(780, 840)},
		{rng(420, 720)},
	}

	for _, ranges := range sets {
		assert.Equal(t, ranges, Compact(Expand(ranges)))
	}
}

func TestCompact_GroupsConsecutiveStarts(t *testing.T) {
	got := Compact([]types.TimeOfDay{540, 570, 660, 690})
	assert.Equal(t, []domain.Range{rng(540, 600), rng(660, 720)}, got)

	// Несортированный вход допустим
	got = Compact([]types.TimeOfDay{690, 540, 660, 570})
	assert.Equal(t, []domain.Range{rng(540, 600), rng(660, 720)}, got)
}

func TestUnion_DedupsByStartMinute(t *testing.T) {
	a := Expand([]domain.Range{rng(540, 600)}) // 9:00, 9:30
	b := Expand([]domain.Range{rng(540, 630)}) // 9:00, 9:30, 10:00

	got := Union(a, b)
	assert.Equal(t, []types.TimeOfDay{540, 570, 600}, got)
}

func TestFilterWindow(t *testing.T) {
	starts := []types.TimeOfDay{540, 570, 600, 630} // 9:00..10:30

	t.Run("unrestricted keeps all", func(t *testing.T) {
		got := FilterWindow(starts, domain.Range{}, domain.MatchUnrestricted)
		assert.Equal(t, starts, got)
	})

	t.Run("overlap keeps intersecting slots", func(t *testing.T) {
		// Окно 9:45-10:15 пересекает слоты 9:30 и 10:00, но не 9:00 и 10:30
		got := FilterWindow(starts, rng(585, 615), domain.MatchOverlap)
		assert.Equal(t, []types.TimeOfDay{570, 600}, got)
	})

	t.Run("overlap is not containment", func(t *testing.T) {
		// Окно целиком внутри слота 9:00-9:30
		got := FilterWindow(starts, rng(550, 560), domain.MatchOverlap)
		assert.Equal(t, []types.TimeOfDay{540}, got)
	})

	t.Run("exact requires identical bounds", func(t *testing.T) {
		got := FilterWindow(starts, rng(570, 600), domain.MatchExact)
		assert.Equal(t, []types.TimeOfDay{570}, got)

		got = FilterWindow(starts, rng(570, 630), domain.MatchExact)
		assert.Empty(t, got)
	})
}
