package resource

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResourceDTO_ToEntity(t *testing.T) {
	id10, id11 := int64(10), int64(11)
	dto := ResourceDTO{
		IDResource:     1,
		NomResource:    "Martin",
		PrenomResource: "Alice",
		DateDebut:      "2024-01-01",
		DateFin:        "2026-12-31T23:59:59.000Z",
		Events: []EventDTO{
			{IDEvent: &id10, DateDebutEvent: "2025-03-10", DateFinEvent: "2025-03-12", IsJournee: true},
			{ID: &id11, DateDebutEvent: "2025-04-01T00:00:00.000Z", DateFinEvent: "2025-04-01", IsMatin: true},
			// No id: dropped.
			{DateDebutEvent: "2025-05-01", DateFinEvent: "2025-05-01", IsJournee: true},
			// No dates: dropped.
			{IDEvent: &id10, IsJournee: true},
		},
	}

	res, err := dto.ToEntity()
	require.NoError(t, err)

	assert.Equal(t, int64(1), res.ID)
	assert.Equal(t, "Alice", res.DisplayName())
	// The time-of-day part of tracker timestamps is discarded.
	assert.Equal(t, time.Date(2026, time.December, 31, 0, 0, 0, 0, time.Local), res.EndDate)

	require.Len(t, res.Events, 2)
	assert.Equal(t, int64(10), res.Events[0].ID)
	assert.Equal(t, int64(11), res.Events[1].ID)
	assert.Equal(t, time.Date(2025, time.April, 1, 0, 0, 0, 0, time.Local), res.Events[1].Start)
	assert.Equal(t, int64(1), res.Events[1].ResourceID)
}

func TestResourceDTO_ToEntityBadDates(t *testing.T) {
	_, err := ResourceDTO{IDResource: 1, DateDebut: "bogus", DateFin: "2025-01-01"}.ToEntity()
	assert.Error(t, err)
}

func TestEventDTO_ToSavedEvent(t *testing.T) {
	id := int64(42)
	saved, err := EventDTO{
		IDEvent:        &id,
		DateDebutEvent: "2025-03-10",
		DateFinEvent:   "2025-03-12",
		IsJournee:      true,
	}.ToSavedEvent(2)
	require.NoError(t, err)
	assert.Equal(t, int64(42), saved.ID)
	assert.Equal(t, int64(2), saved.ResourceID)

	_, err = EventDTO{
		DateDebutEvent: "2025-03-10",
		DateFinEvent:   "2025-03-12",
	}.ToSavedEvent(2)
	assert.ErrorIs(t, err, ErrMissingEventID)
}

func TestNewSaveEventPayload(t *testing.T) {
	payload := NewSaveEventPayload(Event{
		Start:      time.Date(2025, time.March, 10, 14, 30, 0, 0, time.Local),
		End:        time.Date(2025, time.March, 12, 9, 0, 0, 0, time.Local),
		Morning:    true,
		ResourceID: 2,
	})
	assert.Equal(t, "2025-03-10", payload.DateDebutEvent)
	assert.Equal(t, "2025-03-12", payload.DateFinEvent)
	assert.True(t, payload.IsMatin)
	assert.False(t, payload.IsJournee)
	assert.Equal(t, int64(2), payload.Developper.IDResource)
}

func TestEvent_HalfDayAndCovers(t *testing.T) {
	ev := Event{
		Start:   time.Date(2025, time.March, 10, 0, 0, 0, 0, time.Local),
		End:     time.Date(2025, time.March, 12, 0, 0, 0, 0, time.Local),
		Morning: true,
	}
	assert.True(t, ev.HalfDay())
	assert.True(t, ev.Covers(time.Date(2025, time.March, 10, 0, 0, 0, 0, time.Local)))
	assert.True(t, ev.Covers(time.Date(2025, time.March, 12, 0, 0, 0, 0, time.Local)))
	assert.False(t, ev.Covers(time.Date(2025, time.March, 13, 0, 0, 0, 0, time.Local)))

	full := Event{FullDay: true}
	assert.False(t, full.HalfDay())
}
