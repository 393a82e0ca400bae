package resource

import (
	"time"
)

// Resource is a staffed developer with an employment window and the
// leave/telework events attached to them. StartDate and EndDate are
// inclusive local-midnight dates; StartDate <= EndDate.
type Resource struct {
	ID        int64
	LastName  string
	FirstName string
	StartDate time.Time
	EndDate   time.Time
	Events    []Event
}

// DisplayName is the name the calendar grid is keyed by.
func (r Resource) DisplayName() string {
	return r.FirstName
}

// Event is a leave or telework record. Start and End are inclusive and
// truncated to local midnight; Start <= End. An event is either full-day
// or flagged morning/afternoon (half day), never both halves at once.
type Event struct {
	ID         int64 // 0 until the tracker has persisted it
	Label      string
	Type       string
	Start      time.Time
	End        time.Time
	FullDay    bool
	Morning    bool
	Afternoon  bool
	ResourceID int64

	// PendingID tags an optimistic in-memory event while its save call is
	// in flight. Cleared on confirmation, used to find the event again on
	// rollback. Empty on confirmed events.
	PendingID string
}

// HalfDay reports whether the event covers only a morning or an afternoon.
func (e Event) HalfDay() bool {
	return e.Morning || e.Afternoon
}

// Covers reports whether the event's inclusive date range contains day.
func (e Event) Covers(day time.Time) bool {
	return !day.Before(e.Start) && !day.After(e.End)
}
