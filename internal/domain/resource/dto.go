package resource

import (
	"time"
)

const dateLayout = "2006-01-02"

// ResourceDTO mirrors the tracker backend's developer payload. Dates arrive
// as ISO date strings and are normalised to local midnight.
type ResourceDTO struct {
	IDResource     int64      `json:"idResource"`
	NomResource    string     `json:"nomResource"`
	PrenomResource string     `json:"prenomResource"`
	DateDebut      string     `json:"dateDebut"`
	DateFin        string     `json:"dateFin"`
	Events         []EventDTO `json:"events"`
}

// EventDTO mirrors the tracker backend's event payload. The backend is not
// consistent about the id field name, so both are accepted.
type EventDTO struct {
	ID             *int64 `json:"id,omitempty"`
	IDEvent        *int64 `json:"idEvent,omitempty"`
	LibelleEvent   string `json:"libelleEvent,omitempty"`
	Type           string `json:"type,omitempty"`
	DateDebutEvent string `json:"dateDebutEvent,omitempty"`
	DateFinEvent   string `json:"dateFinEvent,omitempty"`
	IsMatin        bool   `json:"isMatin"`
	IsApresMidi    bool   `json:"isApresMidi"`
	IsJournee      bool   `json:"isJournee"`
}

// SaveEventPayload is the shape the tracker expects on event creation.
type SaveEventPayload struct {
	DateDebutEvent string           `json:"dateDebutEvent"`
	DateFinEvent   string           `json:"dateFinEvent"`
	IsMatin        bool             `json:"isMatin"`
	IsApresMidi    bool             `json:"isApresMidi"`
	IsJournee      bool             `json:"isJournee"`
	Developper     DevelopperRefDTO `json:"developper"`
}

type DevelopperRefDTO struct {
	IDResource int64 `json:"idResource"`
}

// NewSaveEventPayload drops the time-of-day from the event's range and
// formats it the way the tracker wants.
func NewSaveEventPayload(ev Event) SaveEventPayload {
	return SaveEventPayload{
		DateDebutEvent: ev.Start.Format(dateLayout),
		DateFinEvent:   ev.End.Format(dateLayout),
		IsMatin:        ev.Morning,
		IsApresMidi:    ev.Afternoon,
		IsJournee:      ev.FullDay,
		Developper:     DevelopperRefDTO{IDResource: ev.ResourceID},
	}
}

// ToEntity converts the wire resource to the domain model. Events missing an
// identifier or a date are dropped, matching what the dashboard has always
// tolerated from the tracker.
func (d ResourceDTO) ToEntity() (Resource, error) {
	start, err := parseLocalDate(d.DateDebut)
	if err != nil {
		return Resource{}, err
	}
	end, err := parseLocalDate(d.DateFin)
	if err != nil {
		return Resource{}, err
	}

	res := Resource{
		ID:        d.IDResource,
		LastName:  d.NomResource,
		FirstName: d.PrenomResource,
		StartDate: start,
		EndDate:   end,
	}
	for _, ev := range d.Events {
		entity, ok := ev.toEntity(d.IDResource)
		if !ok {
			continue
		}
		res.Events = append(res.Events, entity)
	}
	return res, nil
}

func (d EventDTO) toEntity(resourceID int64) (Event, bool) {
	id := d.eventID()
	if id == 0 || d.DateDebutEvent == "" || d.DateFinEvent == "" {
		return Event{}, false
	}
	start, err := parseLocalDate(d.DateDebutEvent)
	if err != nil {
		return Event{}, false
	}
	end, err := parseLocalDate(d.DateFinEvent)
	if err != nil {
		return Event{}, false
	}
	return Event{
		ID:         id,
		Label:      d.LibelleEvent,
		Type:       d.Type,
		Start:      start,
		End:        end,
		FullDay:    d.IsJournee,
		Morning:    d.IsMatin,
		Afternoon:  d.IsApresMidi,
		ResourceID: resourceID,
	}, true
}

// ToSavedEvent converts the tracker's create response. Unlike events
// embedded in a resource listing, a saved event without an id is an error.
func (d EventDTO) ToSavedEvent(resourceID int64) (Event, error) {
	ev, ok := d.toEntity(resourceID)
	if !ok {
		return Event{}, ErrMissingEventID
	}
	return ev, nil
}

func (d EventDTO) eventID() int64 {
	if d.IDEvent != nil {
		return *d.IDEvent
	}
	if d.ID != nil {
		return *d.ID
	}
	return 0
}

func parseLocalDate(s string) (time.Time, error) {
	// The tracker sometimes sends full timestamps; keep only the date part.
	if len(s) > len(dateLayout) {
		s = s[:len(dateLayout)]
	}
	return time.ParseInLocation(dateLayout, s, time.Local)
}
