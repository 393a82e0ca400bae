package calendar

import (
	"testing"
	"time"

	caldomain "github.com/agiledash/calendar-backend-go/internal/domain/calendar"
	"github.com/agiledash/calendar-backend-go/internal/domain/resource"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.Local)
}

func fullDayEvent(id int64, start, end time.Time) resource.Event {
	return resource.Event{ID: id, Start: start, End: end, FullDay: true}
}

func halfDayEvent(id int64, start, end time.Time) resource.Event {
	return resource.Event{ID: id, Start: start, End: end, Morning: true}
}

func testResource(id int64, firstName string, start, end time.Time, events ...resource.Event) resource.Resource {
	return resource.Resource{
		ID:        id,
		FirstName: firstName,
		LastName:  "Test",
		StartDate: start,
		EndDate:   end,
		Events:    events,
	}
}

func TestNewMonthDates(t *testing.T) {
	t.Parallel()

	jan := NewMonthDates(2025, time.January, nil)
	require.Len(t, jan.Days, 31)
	assert.Equal(t, day(2025, time.January, 1), jan.Days[0])
	assert.Equal(t, day(2025, time.January, 31), jan.Days[30])
	assert.Equal(t, "2025-1", jan.Key())

	feb := NewMonthDates(2025, time.February, nil)
	assert.Len(t, feb.Days, 28)

	febLeap := NewMonthDates(2024, time.February, nil)
	assert.Len(t, febLeap.Days, 29)
}

func TestIsWeekend(t *testing.T) {
	t.Parallel()

	assert.True(t, IsWeekend(day(2025, time.January, 4)))  // Saturday
	assert.True(t, IsWeekend(day(2025, time.January, 5)))  // Sunday
	assert.False(t, IsWeekend(day(2025, time.January, 6))) // Monday
}

func TestIsHoliday(t *testing.T) {
	t.Parallel()

	holidays := []caldomain.Holiday{
		{Date: day(2025, time.January, 1), Name: "Jour de l'An"},
	}

	assert.True(t, IsHoliday(day(2025, time.January, 1), holidays))
	assert.False(t, IsHoliday(day(2025, time.January, 2), holidays))
	assert.False(t, IsHoliday(day(2025, time.January, 1), nil))
}

func TestLeavePredicates(t *testing.T) {
	t.Parallel()

	res := testResource(1, "Alice",
		day(2025, time.January, 1), day(2025, time.December, 31),
		fullDayEvent(10, day(2025, time.March, 10), day(2025, time.March, 12)),
		halfDayEvent(11, day(2025, time.March, 20), day(2025, time.March, 20)),
	)

	assert.True(t, IsLeave(day(2025, time.March, 10), res))
	assert.True(t, IsLeave(day(2025, time.March, 11), res))
	assert.True(t, IsLeave(day(2025, time.March, 12), res))
	assert.False(t, IsLeave(day(2025, time.March, 13), res))

	ev := LeaveFor(day(2025, time.March, 11), res)
	require.NotNil(t, ev)
	assert.Equal(t, int64(10), ev.ID)
	assert.Nil(t, LeaveFor(day(2025, time.March, 13), res))

	assert.False(t, IsHalfDay(day(2025, time.March, 10), res))
	assert.True(t, IsHalfDay(day(2025, time.March, 20), res))
	assert.False(t, IsHalfDay(day(2025, time.March, 21), res))
}

func TestIsInactive(t *testing.T) {
	t.Parallel()

	res := testResource(1, "Alice", day(2025, time.February, 1), day(2025, time.October, 31))

	assert.True(t, IsInactive(day(2025, time.January, 31), res))
	assert.False(t, IsInactive(day(2025, time.February, 1), res))
	assert.False(t, IsInactive(day(2025, time.October, 31), res))
	assert.True(t, IsInactive(day(2025, time.November, 1), res))
}

func TestInactiveWholeMonth(t *testing.T) {
	t.Parallel()

	res := testResource(1, "Alice", day(2025, time.February, 15), day(2025, time.October, 31))

	assert.True(t, InactiveWholeMonth(res, NewMonthDates(2025, time.January, nil)))
	// Active from mid-February: the month still counts as active.
	assert.False(t, InactiveWholeMonth(res, NewMonthDates(2025, time.February, nil)))
	assert.False(t, InactiveWholeMonth(res, NewMonthDates(2025, time.June, nil)))
	assert.True(t, InactiveWholeMonth(res, NewMonthDates(2025, time.November, nil)))
}
