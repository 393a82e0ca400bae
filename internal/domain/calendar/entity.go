package calendar

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Holiday is a public holiday: a local-midnight date plus its label.
type Holiday struct {
	Date time.Time `json:"date"`
	Name string    `json:"name"`
}

// EventSpan is one cell of the calendar grid for a resource.
//
// Span > 1 marks the first day of a merged leave block covering Span
// consecutive calendar days, Span == 0 marks a continuation day inside a
// preceding block, Span == 1 is an ordinary single day. The spans of one
// resource over one month, in order, cover every date of that month exactly
// once.
type EventSpan struct {
	Date time.Time `json:"date"`
	Span int       `json:"span"`
}

// Key builds the "YYYY-M" cache key for a month (1-based month, no zero
// padding).
func Key(year int, month time.Month) string {
	return fmt.Sprintf("%d-%d", year, int(month))
}

// KeyFor is Key for the month containing the given date.
func KeyFor(date time.Time) string {
	return Key(date.Year(), date.Month())
}

// ParseKey splits a "YYYY-M" key back into year and month. Used to order
// keys chronologically for eviction.
func ParseKey(key string) (year int, month int, ok bool) {
	parts := strings.SplitN(key, "-", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}
	year, errY := strconv.Atoi(parts[0])
	month, errM := strconv.Atoi(parts[1])
	if errY != nil || errM != nil || month < 1 || month > 12 {
		return 0, 0, false
	}
	return year, month, true
}

// KeyLess orders two month keys chronologically, year first.
func KeyLess(a, b string) bool {
	yA, mA, _ := ParseKey(a)
	yB, mB, _ := ParseKey(b)
	if yA != yB {
		return yA < yB
	}
	return mA < mB
}
