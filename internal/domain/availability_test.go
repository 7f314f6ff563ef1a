package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRange_Overlaps(t *testing.T) {
	base := Range{From: 9 * 60, To: 10 * 60} // 9:00-10:00

	assert.True(t, base.Overlaps(Range{From: 9*60 + 30, To: 11 * 60}))
	assert.True(t, base.Overlaps(Range{From: 8 * 60, To: 9*60 + 15}))
	assert.True(t, base.Overlaps(base))

	// Полуоткрытые интервалы: стык границ - не пересечение
	assert.False(t, base.Overlaps(Range{From: 10 * 60, To: 11 * 60}))
	assert.False(t, base.Overlaps(Range{From: 8 * 60, To: 9 * 60}))
}

func TestRange_Contains(t *testing.T) {
	r := Range{From: 12 * 60, To: 13 * 60}

	assert.True(t, r.Contains(12*60))
	assert.True(t, r.Contains(12*60 + 30))
	assert.False(t, r.Contains(13*60)) // правая граница исключена
	assert.False(t, r.Contains(11*60+59))
}

func TestIsSelectableTime(t *testing.T) {
	assert.True(t, IsSelectableTime(DayWindowStart))
	assert.True(t, IsSelectableTime(DayWindowEnd))
	assert.True(t, IsSelectableTime(11*60+30))

	// Обеденный перерыв закрыт для выбора
	assert.False(t, IsSelectableTime(LunchStart))
	assert.False(t, IsSelectableTime(12*60+30))
	// Конец обеда снова доступен
	assert.True(t, IsSelectableTime(LunchEnd))

	assert.False(t, IsSelectableTime(DayWindowStart-30))
	assert.False(t, IsSelectableTime(DayWindowEnd+30))
	assert.False(t, IsSelectableTime(9*60+15)) // не выровнено по получасу
}
