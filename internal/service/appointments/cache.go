package appointments

import (
	"sync"
	"time"
)

// StatsCache кэш месячной статистики календаря с коротким TTL
//
// Внедряется в сервис явно, а не живет глобальным синглтоном: скрытое
// межзапросное состояние усложняет тесты. Статистика нужна только
// отрисовке календаря и не критична для корректности
type StatsCache struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]statsEntry
}

type statsEntry struct {
	counts  map[string]int
	expires time.Time
}

// NewStatsCache создает кэш с указанным TTL
func NewStatsCache(ttl time.Duration) *StatsCache {
	return &StatsCache{
		ttl:     ttl,
		entries: make(map[string]statsEntry),
	}
}

// Get возвращает закэшированную статистику, если она еще не устарела
func (c *StatsCache) Get(key string) (map[string]int, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok || time.Now().After(entry.expires) {
		delete(c.entries, key)
		return nil, false
	}
	return entry.counts, true
}

// Set сохраняет статистику в кэш
func (c *StatsCache) Set(key string, counts map[string]int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = statsEntry{
		counts:  counts,
		expires: time.Now().Add(c.ttl),
	}
}
