package calendar

import (
	"time"

	caldomain "github.com/agiledash/calendar-backend-go/internal/domain/calendar"
	"github.com/agiledash/calendar-backend-go/internal/domain/resource"
)

// MonthDates is the ordered day grid of one month together with the holiday
// set of its year. Days are local-midnight dates, one per calendar day.
type MonthDates struct {
	Year     int
	Month    time.Month
	Days     []time.Time
	Holidays []caldomain.Holiday
}

// Key returns the month's "YYYY-M" cache key.
func (m MonthDates) Key() string {
	return caldomain.Key(m.Year, m.Month)
}

// NewMonthDates builds the day grid for (year, month).
func NewMonthDates(year int, month time.Month, holidays []caldomain.Holiday) MonthDates {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	daysInMonth := first.AddDate(0, 1, -1).Day()

	days := make([]time.Time, 0, daysInMonth)
	for day := 1; day <= daysInMonth; day++ {
		days = append(days, time.Date(year, month, day, 0, 0, 0, 0, time.Local))
	}
	return MonthDates{Year: year, Month: month, Days: days, Holidays: holidays}
}

// Midnight drops the time-of-day from a date.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// IsWeekend reports whether the date falls on a Saturday or Sunday.
func IsWeekend(date time.Time) bool {
	wd := date.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// IsHoliday reports whether the date matches any holiday in the set,
// ignoring time-of-day.
func IsHoliday(date time.Time, holidays []caldomain.Holiday) bool {
	for _, h := range holidays {
		if sameDay(date, h.Date) {
			return true
		}
	}
	return false
}

// IsLeave reports whether any of the resource's events covers the date.
func IsLeave(date time.Time, res resource.Resource) bool {
	return LeaveFor(date, res) != nil
}

// LeaveFor returns the first event of the resource covering the date, or
// nil.
func LeaveFor(date time.Time, res resource.Resource) *resource.Event {
	day := Midnight(date)
	for i := range res.Events {
		if res.Events[i].Covers(day) {
			return &res.Events[i]
		}
	}
	return nil
}

// IsHalfDay reports whether the date is covered by a morning-only or
// afternoon-only event of the resource.
func IsHalfDay(date time.Time, res resource.Resource) bool {
	day := Midnight(date)
	for i := range res.Events {
		if res.Events[i].Covers(day) && res.Events[i].HalfDay() {
			return true
		}
	}
	return false
}

// IsInactive reports whether the date falls outside the resource's
// employment window.
func IsInactive(date time.Time, res resource.Resource) bool {
	day := Midnight(date)
	return day.Before(Midnight(res.StartDate)) || day.After(Midnight(res.EndDate))
}

// InactiveWholeMonth reports whether the resource is inactive on every date
// of the month. Such resources are hidden from the grid.
func InactiveWholeMonth(res resource.Resource, month MonthDates) bool {
	for _, d := range month.Days {
		if !IsInactive(d, res) {
			return false
		}
	}
	return true
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
