package calendar

import (
	"sort"

	caldomain "github.com/agiledash/calendar-backend-go/internal/domain/calendar"
	"github.com/agiledash/calendar-backend-go/internal/domain/resource"
)

// DefaultCacheMonths bounds how many months of spans stay cached.
const DefaultCacheMonths = 6

// Cache memoizes the computed spans per month key and the presence-day
// totals derived from them. It is owned by the Service, which serialises
// access; the cache itself does no locking.
type Cache struct {
	maxMonths int
	spans     map[string]monthEntry
	presence  map[string]map[int]float64
}

type monthEntry struct {
	month MonthDates
	spans map[string][]caldomain.EventSpan
}

// NewCache builds a cache bounded to maxMonths cached months; a
// non-positive bound falls back to DefaultCacheMonths.
func NewCache(maxMonths int) *Cache {
	if maxMonths <= 0 {
		maxMonths = DefaultCacheMonths
	}
	return &Cache{
		maxMonths: maxMonths,
		spans:     make(map[string]monthEntry),
		presence:  make(map[string]map[int]float64),
	}
}

// EnsureMonth computes and stores the month's spans only if the key is
// absent. An already-cached month is never recomputed implicitly.
func (c *Cache) EnsureMonth(key string, month MonthDates, active []resource.Resource, build BuildFunc) {
	if _, ok := c.spans[key]; ok {
		return
	}
	c.spans[key] = monthEntry{month: month, spans: build(month, active)}
	c.trim()
}

// SetMonth force-replaces the month's spans, used after an explicit
// rebuild of an invalidated month.
func (c *Cache) SetMonth(key string, month MonthDates, spans map[string][]caldomain.EventSpan) {
	c.spans[key] = monthEntry{month: month, spans: spans}
	c.trim()
}

// Invalidate drops the cached spans for a month; the next EnsureMonth on
// the key recomputes.
func (c *Cache) Invalidate(key string) {
	delete(c.spans, key)
}

// Has reports whether a month is cached.
func (c *Cache) Has(key string) bool {
	_, ok := c.spans[key]
	return ok
}

// Len returns the number of cached months.
func (c *Cache) Len() int {
	return len(c.spans)
}

// Keys returns the cached month keys in chronological order.
func (c *Cache) Keys() []string {
	keys := make([]string, 0, len(c.spans))
	for k := range c.spans {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return caldomain.KeyLess(keys[i], keys[j]) })
	return keys
}

// Spans returns the cached spans of one resource for one month; a miss on
// either level yields an empty slice, never an error.
func (c *Cache) Spans(key, resourceName string) []caldomain.EventSpan {
	entry, ok := c.spans[key]
	if !ok {
		return []caldomain.EventSpan{}
	}
	spans, ok := entry.spans[resourceName]
	if !ok {
		return []caldomain.EventSpan{}
	}
	return spans
}

// ComputePresence clears and fully rebuilds the presence-day totals for
// every active resource over the displayed months, identified by display
// index. A day counts 1 when it is neither weekend, holiday, inactive
// period nor full leave; a half-day leave counts 0.5.
func (c *Cache) ComputePresence(orderedKeys []string, active []resource.Resource) {
	c.presence = make(map[string]map[int]float64, len(active))

	for _, res := range active {
		monthTotals := make(map[int]float64, len(orderedKeys))

		for displayIdx, key := range orderedKeys {
			entry, ok := c.spans[key]
			if !ok {
				monthTotals[displayIdx] = 0
				continue
			}

			var total float64
			for _, span := range entry.spans[res.DisplayName()] {
				d := span.Date
				absent := IsWeekend(d) ||
					IsHoliday(d, entry.month.Holidays) ||
					IsInactive(d, res) ||
					(IsLeave(d, res) && !IsHalfDay(d, res))
				if absent {
					continue
				}
				if IsHalfDay(d, res) {
					total += 0.5
				} else {
					total++
				}
			}
			monthTotals[displayIdx] = total
		}

		c.presence[res.DisplayName()] = monthTotals
	}
}

// PresenceDays returns the presence total of a resource for a displayed
// month index, 0 on any miss.
func (c *Cache) PresenceDays(resourceName string, displayIdx int) float64 {
	return c.presence[resourceName][displayIdx]
}

// trim evicts the chronologically oldest months until the bound holds.
func (c *Cache) trim() {
	for len(c.spans) > c.maxMonths {
		delete(c.spans, c.Keys()[0])
	}
}
