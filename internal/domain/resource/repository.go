package resource

import "context"

// TrackerRepository is the boundary with the tracking backend that owns
// resources and event persistence. The calendar core never talks HTTP
// directly; it goes through this interface.
type TrackerRepository interface {
	// Resources returns every developer with their events, dates already
	// normalised to local midnight.
	Resources(ctx context.Context) ([]Resource, error)

	// SaveEvent persists a new event and returns it with its assigned id.
	SaveEvent(ctx context.Context, payload SaveEventPayload) (Event, error)

	// DeleteEvent removes an event by id.
	DeleteEvent(ctx context.Context, id int64) error
}
