package holiday

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func localDate(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.Local)
}

func TestEasterSunday_KnownYears(t *testing.T) {
	t.Parallel()

	// The dashboard's historical table listed Easter Monday; these are the
	// corresponding Sundays.
	cases := map[int]time.Time{
		2023: localDate(2023, time.April, 9),
		2024: localDate(2024, time.March, 31),
		2025: localDate(2025, time.April, 20),
		2026: localDate(2026, time.April, 5),
		2027: localDate(2027, time.March, 28),
	}
	for year, want := range cases {
		assert.Equal(t, want, EasterSunday(year), "year %d", year)
	}
}

func TestHolidays_FixedDates2025(t *testing.T) {
	t.Parallel()

	svc := NewService()
	holidays := svc.Holidays(2025)
	require.Len(t, holidays, 11)

	byName := make(map[string]time.Time)
	for _, h := range holidays {
		byName[h.Name] = h.Date
	}

	assert.Equal(t, localDate(2025, time.January, 1), byName["Jour de l'An"])
	assert.Equal(t, localDate(2025, time.May, 1), byName["Fête du Travail"])
	assert.Equal(t, localDate(2025, time.May, 8), byName["Victoire 1945"])
	assert.Equal(t, localDate(2025, time.July, 14), byName["Fête Nationale"])
	assert.Equal(t, localDate(2025, time.August, 15), byName["Assomption"])
	assert.Equal(t, localDate(2025, time.November, 1), byName["Toussaint"])
	assert.Equal(t, localDate(2025, time.November, 11), byName["Armistice 1918"])
	assert.Equal(t, localDate(2025, time.December, 25), byName["Noël"])
}

func TestHolidays_EasterRelative2025(t *testing.T) {
	t.Parallel()

	svc := NewService()
	byName := make(map[string]time.Time)
	for _, h := range svc.Holidays(2025) {
		byName[h.Name] = h.Date
	}

	assert.Equal(t, localDate(2025, time.April, 21), byName["Lundi de Pâques"])
	assert.Equal(t, localDate(2025, time.May, 29), byName["Ascension"])
	assert.Equal(t, localDate(2025, time.June, 9), byName["Lundi de Pentecôte"])
}

func TestHolidays_DoesNotAccumulateAcrossCalls(t *testing.T) {
	t.Parallel()

	svc := NewService()
	first := svc.Holidays(2025)
	second := svc.Holidays(2025)

	assert.Len(t, first, 11)
	assert.Len(t, second, 11)
}

func TestHolidays_ReturnsIndependentSlices(t *testing.T) {
	t.Parallel()

	svc := NewService()
	first := svc.Holidays(2024)
	first[0].Name = "mutated"
	first[0].Date = localDate(1999, time.January, 1)

	second := svc.Holidays(2024)
	assert.Equal(t, "Jour de l'An", second[0].Name)
	assert.Equal(t, localDate(2024, time.January, 1), second[0].Date)
}
