package calendar

import (
	"time"

	"github.com/agiledash/calendar-backend-go/internal/pkg/validator"
)

// CreateEventRequest is the payload the rendering layer sends to create a
// leave/telework event from a cell click.
type CreateEventRequest struct {
	ResourceID int64  `json:"resource_id"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	FullDay    bool   `json:"full_day"`
	Morning    bool   `json:"morning"`
	Afternoon  bool   `json:"afternoon"`
	Label      string `json:"label,omitempty"`
	Type       string `json:"type,omitempty"`
}

func (r *CreateEventRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.ResourceID <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "resource_id",
			Message: "resource_id is required",
		})
	}

	start, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be a YYYY-MM-DD date",
		})
	}
	end, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be a YYYY-MM-DD date",
		})
	}
	if startOK && endOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not precede start_date",
		})
	}

	if !r.FullDay && !r.Morning && !r.Afternoon {
		errs = append(errs, validator.ValidationError{
			Field:   "full_day",
			Message: "one of full_day, morning or afternoon is required",
		})
	}
	if r.Morning && r.Afternoon {
		errs = append(errs, validator.ValidationError{
			Field:   "morning",
			Message: "morning and afternoon are mutually exclusive",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// WindowSnapshot is everything the rendering layer needs to paint the
// three-month sliding window.
type WindowSnapshot struct {
	Year      int           `json:"year"`
	Month     int           `json:"month"`
	Months    []MonthView   `json:"months"`
	Resources []ResourceRow `json:"resources"`
}

// MonthView describes one visible month of the window.
type MonthView struct {
	Key       string      `json:"key"`
	Year      int         `json:"year"`
	Month     int         `json:"month"`
	Label     string      `json:"label"`
	DayLabels []string    `json:"day_labels"`
	Dates     []time.Time `json:"dates"`
}

// ResourceRow carries one active resource's spans and presence totals, one
// entry per visible month in display order.
type ResourceRow struct {
	ID           int64         `json:"id"`
	Name         string        `json:"name"`
	FullName     string        `json:"full_name"`
	Spans        [][]EventSpan `json:"spans"`
	PresenceDays []float64     `json:"presence_days"`
}

// EventView is the confirmed event echoed back after a create.
type EventView struct {
	ID         int64     `json:"id"`
	ResourceID int64     `json:"resource_id"`
	StartDate  time.Time `json:"start_date"`
	EndDate    time.Time `json:"end_date"`
	FullDay    bool      `json:"full_day"`
	Morning    bool      `json:"morning"`
	Afternoon  bool      `json:"afternoon"`
}
