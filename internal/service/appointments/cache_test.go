package appointments

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsCache_SetGet(t *testing.T) {
	cache := NewStatsCache(time.Minute)

	counts := map[string]int{"2026-09-07": 3, "2026-09-08": 1}
	cache.Set("2026-09:all", counts)

	got, ok := cache.Get("2026-09:all")
	require.True(t, ok)
	assert.Equal(t, counts, got)
}

func TestStatsCache_MissingKey(t *testing.T) {
	cache := NewStatsCache(time.Minute)

	_, ok := cache.Get("2026-10:all")
	assert.False(t, ok)
}

func TestStatsCache_Expiry(t *testing.T) {
	cache := NewStatsCache(time.Millisecond)

	cache.Set("2026-09:42", map[string]int{"2026-09-07": 2})
	time.Sleep(5 * time.Millisecond)

	_, ok := cache.Get("2026-09:42")
	assert.False(t, ok)
}

func TestStatsCache_KeysAreIndependent(t *testing.T) {
	cache := NewStatsCache(time.Minute)

	cache.Set("2026-09:all", map[string]int{"2026-09-07": 5})
	cache.Set("2026-09:7", map[string]int{"2026-09-07": 2})

	all, ok := cache.Get("2026-09:all")
	require.True(t, ok)
	assert.Equal(t, 5, all["2026-09-07"])

	one, ok := cache.Get("2026-09:7")
	require.True(t, ok)
	assert.Equal(t, 2, one["2026-09-07"])
}
