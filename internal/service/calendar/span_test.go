package calendar

import (
	"testing"
	"time"

	caldomain "github.com/agiledash/calendar-backend-go/internal/domain/calendar"
	"github.com/agiledash/calendar-backend-go/internal/domain/resource"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertPartition checks the span invariant: concatenated spans cover every
// date of the month exactly once, and every Span=0 entry continues a
// preceding Span>=2 block.
func assertPartition(t *testing.T, month MonthDates, spans []caldomain.EventSpan) {
	t.Helper()
	require.Len(t, spans, len(month.Days))

	covered := 0
	remaining := 0
	for i, span := range spans {
		assert.Equal(t, month.Days[i], span.Date, "span %d out of order", i)
		if span.Span == 0 {
			require.Positive(t, remaining, "span %d: continuation without an open block", i)
			remaining--
			continue
		}
		require.Zero(t, remaining, "span %d: new block before previous one closed", i)
		covered += span.Span
		remaining = span.Span - 1
	}
	assert.Zero(t, remaining, "last block extends past the month")
	assert.Equal(t, len(month.Days), covered)
}

func TestBuildSpans_NoEvents(t *testing.T) {
	t.Parallel()

	month := NewMonthDates(2025, time.January, nil)
	res := testResource(1, "Alice", day(2025, time.January, 1), day(2025, time.December, 31))

	spans := BuildSpans(month, []resource.Resource{res})["Alice"]
	require.Len(t, spans, 31)
	for _, span := range spans {
		assert.Equal(t, 1, span.Span)
	}
	assertPartition(t, month, spans)
}

func TestBuildSpans_ContiguousLeaveMerges(t *testing.T) {
	t.Parallel()

	month := NewMonthDates(2025, time.March, nil)
	res := testResource(2, "Bob",
		day(2025, time.January, 1), day(2025, time.December, 31),
		fullDayEvent(10, day(2025, time.March, 10), day(2025, time.March, 12)),
	)

	spans := BuildSpans(month, []resource.Resource{res})["Bob"]
	assertPartition(t, month, spans)

	assert.Equal(t, caldomain.EventSpan{Date: day(2025, time.March, 10), Span: 3}, spans[9])
	assert.Equal(t, caldomain.EventSpan{Date: day(2025, time.March, 11), Span: 0}, spans[10])
	assert.Equal(t, caldomain.EventSpan{Date: day(2025, time.March, 12), Span: 0}, spans[11])
	assert.Equal(t, 1, spans[8].Span)
	assert.Equal(t, 1, spans[12].Span)
}

func TestBuildSpans_GapNeverMerges(t *testing.T) {
	t.Parallel()

	month := NewMonthDates(2025, time.March, nil)
	res := testResource(2, "Bob",
		day(2025, time.January, 1), day(2025, time.December, 31),
		fullDayEvent(10, day(2025, time.March, 10), day(2025, time.March, 10)),
		fullDayEvent(11, day(2025, time.March, 12), day(2025, time.March, 12)),
	)

	spans := BuildSpans(month, []resource.Resource{res})["Bob"]
	assertPartition(t, month, spans)

	assert.Equal(t, 1, spans[9].Span)  // Mar 10, leave
	assert.Equal(t, 1, spans[10].Span) // Mar 11, plain day
	assert.Equal(t, 1, spans[11].Span) // Mar 12, leave
}

func TestBuildSpans_AdjacentRecordsMerge(t *testing.T) {
	t.Parallel()

	// Two separate event records on strictly adjacent dates: merging is
	// defined on dates, not on record boundaries.
	month := NewMonthDates(2025, time.March, nil)
	res := testResource(2, "Bob",
		day(2025, time.January, 1), day(2025, time.December, 31),
		fullDayEvent(10, day(2025, time.March, 10), day(2025, time.March, 11)),
		fullDayEvent(11, day(2025, time.March, 12), day(2025, time.March, 13)),
	)

	spans := BuildSpans(month, []resource.Resource{res})["Bob"]
	assertPartition(t, month, spans)

	assert.Equal(t, 4, spans[9].Span)
	assert.Equal(t, 0, spans[10].Span)
	assert.Equal(t, 0, spans[11].Span)
	assert.Equal(t, 0, spans[12].Span)
}

func TestBuildSpans_RunTruncatedAtMonthEnd(t *testing.T) {
	t.Parallel()

	month := NewMonthDates(2025, time.July, nil)
	res := testResource(2, "Bob",
		day(2025, time.January, 1), day(2025, time.December, 31),
		fullDayEvent(10, day(2025, time.July, 30), day(2025, time.August, 2)),
	)

	spans := BuildSpans(month, []resource.Resource{res})["Bob"]
	assertPartition(t, month, spans)

	assert.Equal(t, 2, spans[29].Span) // Jul 30-31 only; August is August's business
	assert.Equal(t, 0, spans[30].Span)
}

func TestBuildSpans_PerResourceKeys(t *testing.T) {
	t.Parallel()

	month := NewMonthDates(2025, time.March, nil)
	alice := testResource(1, "Alice", day(2025, time.January, 1), day(2025, time.December, 31))
	bob := testResource(2, "Bob",
		day(2025, time.January, 1), day(2025, time.December, 31),
		fullDayEvent(10, day(2025, time.March, 10), day(2025, time.March, 12)),
	)

	byName := BuildSpans(month, []resource.Resource{alice, bob})
	require.Contains(t, byName, "Alice")
	require.Contains(t, byName, "Bob")
	assert.Equal(t, 1, byName["Alice"][9].Span)
	assert.Equal(t, 3, byName["Bob"][9].Span)
}
