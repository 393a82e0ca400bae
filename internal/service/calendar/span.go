package calendar

import (
	"time"

	caldomain "github.com/agiledash/calendar-backend-go/internal/domain/calendar"
	"github.com/agiledash/calendar-backend-go/internal/domain/resource"
)

// BuildFunc computes the per-resource spans of one month. The cache takes
// it as a parameter so tests can substitute their own builder.
type BuildFunc func(month MonthDates, resources []resource.Resource) map[string][]caldomain.EventSpan

// BuildSpans scans the month left to right for every resource and merges
// consecutive leave days into display spans, keyed by resource display
// name.
//
// A run only extends while the next date is a leave day AND exactly one
// calendar day later, so a leave that pauses over a gap never merges with a
// later one. Conversely two separate event records on strictly adjacent
// dates do merge: adjacency is decided on dates, not on record boundaries.
// The run start gets Span=n, each continuation day Span=0, any other day
// Span=1; concatenated, the spans cover every date of the month exactly
// once.
func BuildSpans(month MonthDates, resources []resource.Resource) map[string][]caldomain.EventSpan {
	out := make(map[string][]caldomain.EventSpan, len(resources))

	for _, res := range resources {
		spans := make([]caldomain.EventSpan, 0, len(month.Days))
		i := 0

		for i < len(month.Days) {
			current := month.Days[i]

			if !IsLeave(current, res) {
				spans = append(spans, caldomain.EventSpan{Date: current, Span: 1})
				i++
				continue
			}

			runStart := i
			runLen := 1
			for i+1 < len(month.Days) &&
				IsLeave(month.Days[i+1], res) &&
				isNextDay(month.Days[i], month.Days[i+1]) {
				runLen++
				i++
			}

			spans = append(spans, caldomain.EventSpan{Date: current, Span: runLen})
			for j := 1; j < runLen; j++ {
				spans = append(spans, caldomain.EventSpan{Date: month.Days[runStart+j], Span: 0})
			}
			i++
		}

		out[res.DisplayName()] = spans
	}

	return out
}

func isNextDay(d1, d2 time.Time) bool {
	return d2.Sub(d1) == 24*time.Hour
}
