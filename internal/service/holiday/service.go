package holiday

import (
	"sync"
	"time"

	"github.com/agiledash/calendar-backend-go/internal/domain/calendar"
)

// Service computes the French public holidays for a year, memoized per
// year. Holidays returns a fresh slice on every call so callers can never
// mutate the cached set.
type Service struct {
	mu     sync.Mutex
	byYear map[int][]calendar.Holiday
}

func NewService() *Service {
	return &Service{byYear: make(map[int][]calendar.Holiday)}
}

// Holidays returns the eleven French public holidays of the given year.
func (s *Service) Holidays(year int) []calendar.Holiday {
	s.mu.Lock()
	defer s.mu.Unlock()

	cached, ok := s.byYear[year]
	if !ok {
		cached = computeHolidays(year)
		s.byYear[year] = cached
	}

	out := make([]calendar.Holiday, len(cached))
	copy(out, cached)
	return out
}

func computeHolidays(year int) []calendar.Holiday {
	easter := EasterSunday(year)
	day := func(month time.Month, d int) time.Time {
		return time.Date(year, month, d, 0, 0, 0, 0, time.Local)
	}

	return []calendar.Holiday{
		{Date: day(time.January, 1), Name: "Jour de l'An"},
		{Date: easter.AddDate(0, 0, 1), Name: "Lundi de Pâques"},
		{Date: day(time.May, 1), Name: "Fête du Travail"},
		{Date: day(time.May, 8), Name: "Victoire 1945"},
		{Date: easter.AddDate(0, 0, 39), Name: "Ascension"},
		{Date: easter.AddDate(0, 0, 50), Name: "Lundi de Pentecôte"},
		{Date: day(time.July, 14), Name: "Fête Nationale"},
		{Date: day(time.August, 15), Name: "Assomption"},
		{Date: day(time.November, 1), Name: "Toussaint"},
		{Date: day(time.November, 11), Name: "Armistice 1918"},
		{Date: day(time.December, 25), Name: "Noël"},
	}
}

// EasterSunday returns Easter Sunday for any Gregorian year, using the
// Meeus/Jones/Butcher algorithm.
func EasterSunday(year int) time.Time {
	a := year % 19
	b := year / 100
	c := year % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451

	month := (h + l - 7*m + 114) / 31
	day := ((h + l - 7*m + 114) % 31) + 1

	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local)
}
