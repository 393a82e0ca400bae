package calendar

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	caldomain "github.com/agiledash/calendar-backend-go/internal/domain/calendar"
	"github.com/agiledash/calendar-backend-go/internal/domain/resource"
	"github.com/agiledash/calendar-backend-go/internal/pkg/validator"
	"github.com/google/uuid"
)

// windowSize is the number of visible months in the sliding window.
const windowSize = 3

// HolidayProvider yields the public holidays of a year.
type HolidayProvider interface {
	Holidays(year int) []caldomain.Holiday
}

// State tracks where the controller is in its lifecycle.
type State int

const (
	StateIdle State = iota
	StateLoading
	StateReady
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	default:
		return "idle"
	}
}

var monthLabels = [13]string{"",
	"Janvier", "Février", "Mars", "Avril", "Mai", "Juin",
	"Juillet", "Aout", "Septembre", "Octobre", "Novembre", "Décembre",
}

// Service is the calendar controller. It owns the three-month sliding
// window, the span cache and the in-memory resource set, and mediates event
// mutations against the tracker.
//
// The original dashboard ran this logic on a single-threaded event loop; the
// mutex is the Go rendition of that single-writer model. Concurrent
// create/delete calls for the same event are serialised but not
// de-duplicated.
type Service struct {
	mu       sync.Mutex
	tracker  resource.TrackerRepository
	holidays HolidayProvider
	cache    *Cache

	resources []resource.Resource
	year      int
	month     int // 1-based selected month
	state     State
	window    []MonthDates
}

// NewService builds a controller positioned on the current month, with a
// cache bounded to cacheMonths (<=0 means DefaultCacheMonths).
func NewService(tracker resource.TrackerRepository, holidays HolidayProvider, cacheMonths int) *Service {
	now := time.Now()
	return &Service{
		tracker:  tracker,
		holidays: holidays,
		cache:    NewCache(cacheMonths),
		year:     now.Year(),
		month:    int(now.Month()),
		state:    StateIdle,
	}
}

// State returns the controller lifecycle state.
func (s *Service) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// LoadInitial fetches the resource set from the tracker and builds the
// window. Also used to re-sync: the selected month is kept, the cache is
// reset so every visible month reflects the fresh data.
func (s *Service) LoadInitial(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev := s.state
	s.state = StateLoading

	resources, err := s.tracker.Resources(ctx)
	if err != nil {
		s.state = prev
		return fmt.Errorf("load resources: %w", err)
	}

	s.resources = resources
	s.cache = NewCache(s.cache.maxMonths)
	s.state = StateReady
	s.rebuildWindow()
	slog.Info("calendar loaded", "resources", len(resources), "year", s.year, "month", s.month)
	return nil
}

// Window returns the current three-month snapshot for rendering.
func (s *Service) Window() (caldomain.WindowSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateReady {
		return caldomain.WindowSnapshot{}, caldomain.ErrNotLoaded
	}
	return s.snapshot(), nil
}

// PrevMonth slides the window one month back, rolling the year at the
// January boundary.
func (s *Service) PrevMonth() (caldomain.WindowSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateReady {
		return caldomain.WindowSnapshot{}, caldomain.ErrNotLoaded
	}
	s.month--
	if s.month == 0 {
		s.month = 12
		s.year--
	}
	s.rebuildWindow()
	return s.snapshot(), nil
}

// NextMonth slides the window one month forward, rolling the year at the
// December boundary.
func (s *Service) NextMonth() (caldomain.WindowSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateReady {
		return caldomain.WindowSnapshot{}, caldomain.ErrNotLoaded
	}
	s.month++
	if s.month == 13 {
		s.month = 1
		s.year++
	}
	s.rebuildWindow()
	return s.snapshot(), nil
}

// JumpToMonth points the window at an arbitrary month. A zero year keeps
// the currently selected year.
func (s *Service) JumpToMonth(year, month int) (caldomain.WindowSnapshot, error) {
	if month < 1 || month > 12 {
		return caldomain.WindowSnapshot{}, caldomain.ErrInvalidMonth
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateReady {
		return caldomain.WindowSnapshot{}, caldomain.ErrNotLoaded
	}
	if year != 0 {
		s.year = year
	}
	s.month = month
	s.rebuildWindow()
	return s.snapshot(), nil
}

// CreateEvent runs the two-phase optimistic create: the event joins the
// resource's set tagged as pending, the tracker persists it, and the
// pending entry is promoted to the confirmed event or discarded. On
// failure the affected month is invalidated and the whole window rebuilt
// from the rolled-back state.
func (s *Service) CreateEvent(ctx context.Context, req caldomain.CreateEventRequest) (caldomain.EventView, error) {
	if err := req.Validate(); err != nil {
		return caldomain.EventView{}, err
	}
	start, _ := validator.IsValidDate(req.StartDate)
	end, _ := validator.IsValidDate(req.EndDate)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateReady {
		return caldomain.EventView{}, caldomain.ErrNotLoaded
	}
	idx := s.resourceIndex(req.ResourceID)
	if idx < 0 {
		return caldomain.EventView{}, resource.ErrResourceNotFound
	}
	res := &s.resources[idx]

	pending := resource.Event{
		Label:      req.Label,
		Type:       req.Type,
		Start:      start,
		End:        end,
		FullDay:    req.FullDay,
		Morning:    req.Morning,
		Afternoon:  req.Afternoon,
		ResourceID: req.ResourceID,
		PendingID:  uuid.NewString(),
	}
	res.Events = append(res.Events, pending)

	saved, err := s.tracker.SaveEvent(ctx, resource.NewSaveEventPayload(pending))
	if err != nil {
		slog.Error("event save failed, rolling back optimistic event",
			"resource_id", req.ResourceID, "start", req.StartDate, "error", err)
		res.Events = dropPending(res.Events, pending.PendingID)
		s.cache.Invalidate(caldomain.KeyFor(pending.Start))
		s.rebuildWindow()
		return caldomain.EventView{}, fmt.Errorf("save event: %w", err)
	}

	saved.Start = Midnight(saved.Start)
	saved.End = Midnight(saved.End)
	saved.ResourceID = req.ResourceID

	// Promote: discard the pending entry and any earlier event with the
	// identical date range, then insert the confirmed event.
	res.Events = dropPending(res.Events, pending.PendingID)
	res.Events = dropSameRange(res.Events, saved.Start, saved.End)
	res.Events = append(res.Events, saved)

	keys := monthKeysInRange(saved.Start, saved.End)
	for _, key := range keys {
		s.cache.Invalidate(key)
	}
	s.rebuildMonths(keys)

	return eventView(saved), nil
}

// DeleteEvent removes an event by id. Nothing is changed locally until the
// tracker confirms the delete, so a failure needs no rollback.
func (s *Service) DeleteEvent(ctx context.Context, resourceID, eventID int64) error {
	if eventID <= 0 {
		slog.Error("cannot delete event without identifier", "resource_id", resourceID)
		return resource.ErrMissingEventID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateReady {
		return caldomain.ErrNotLoaded
	}
	idx := s.resourceIndex(resourceID)
	if idx < 0 {
		return resource.ErrResourceNotFound
	}
	res := &s.resources[idx]

	var target *resource.Event
	for i := range res.Events {
		if res.Events[i].ID == eventID {
			target = &res.Events[i]
			break
		}
	}
	if target == nil {
		return resource.ErrEventNotFound
	}

	if err := s.tracker.DeleteEvent(ctx, eventID); err != nil {
		slog.Error("event delete failed", "event_id", eventID, "error", err)
		return fmt.Errorf("delete event: %w", err)
	}

	start, end := target.Start, target.End
	kept := res.Events[:0]
	for _, ev := range res.Events {
		if ev.ID != eventID {
			kept = append(kept, ev)
		}
	}
	res.Events = kept

	keys := monthKeysInRange(start, end)
	for _, key := range keys {
		s.cache.Invalidate(key)
	}
	s.rebuildMonths(keys)
	return nil
}

// rebuildWindow recomputes the three visible months. Already-cached months
// are reused; only missing keys go through the span builder.
func (s *Service) rebuildWindow() {
	window := make([]MonthDates, 0, windowSize)
	for off := 0; off < windowSize; off++ {
		first := time.Date(s.year, time.Month(s.month+off), 1, 0, 0, 0, 0, time.Local)
		window = append(window, NewMonthDates(first.Year(), first.Month(), s.holidays.Holidays(first.Year())))
	}
	s.window = window

	active := s.activeResources()
	for _, month := range window {
		s.cache.EnsureMonth(month.Key(), month, active, BuildSpans)
	}
	s.cache.ComputePresence(s.displayedKeys(), active)
}

// rebuildMonths force-recomputes only the visible months whose key is in
// keys, then refreshes presence for the whole window.
func (s *Service) rebuildMonths(keys []string) {
	touched := make(map[string]bool, len(keys))
	for _, key := range keys {
		touched[key] = true
	}

	active := s.activeResources()
	for _, month := range s.window {
		if !touched[month.Key()] {
			continue
		}
		s.cache.SetMonth(month.Key(), month, BuildSpans(month, active))
	}
	s.cache.ComputePresence(s.displayedKeys(), active)
}

// activeResources are the resources not inactive for the whole first
// visible month.
func (s *Service) activeResources() []resource.Resource {
	if len(s.window) == 0 {
		return nil
	}
	first := s.window[0]
	active := make([]resource.Resource, 0, len(s.resources))
	for _, res := range s.resources {
		if !InactiveWholeMonth(res, first) {
			active = append(active, res)
		}
	}
	return active
}

func (s *Service) displayedKeys() []string {
	keys := make([]string, 0, len(s.window))
	for _, month := range s.window {
		keys = append(keys, month.Key())
	}
	return keys
}

func (s *Service) resourceIndex(id int64) int {
	for i := range s.resources {
		if s.resources[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Service) snapshot() caldomain.WindowSnapshot {
	months := make([]caldomain.MonthView, 0, len(s.window))
	for _, month := range s.window {
		labels := make([]string, 0, len(month.Days))
		for _, d := range month.Days {
			labels = append(labels, fmt.Sprintf("%02d", d.Day()))
		}
		months = append(months, caldomain.MonthView{
			Key:       month.Key(),
			Year:      month.Year,
			Month:     int(month.Month),
			Label:     monthLabels[month.Month],
			DayLabels: labels,
			Dates:     month.Days,
		})
	}

	keys := s.displayedKeys()
	active := s.activeResources()
	rows := make([]caldomain.ResourceRow, 0, len(active))
	for _, res := range active {
		row := caldomain.ResourceRow{
			ID:       res.ID,
			Name:     res.DisplayName(),
			FullName: res.FirstName + " " + res.LastName,
		}
		for idx, key := range keys {
			row.Spans = append(row.Spans, s.cache.Spans(key, res.DisplayName()))
			row.PresenceDays = append(row.PresenceDays, s.cache.PresenceDays(res.DisplayName(), idx))
		}
		rows = append(rows, row)
	}

	return caldomain.WindowSnapshot{
		Year:      s.year,
		Month:     s.month,
		Months:    months,
		Resources: rows,
	}
}

// monthKeysInRange lists the "YYYY-M" keys of every month the inclusive
// date range touches, in chronological order.
func monthKeysInRange(start, end time.Time) []string {
	var keys []string
	d := time.Date(start.Year(), start.Month(), 1, 0, 0, 0, 0, start.Location())
	for !d.After(end) {
		keys = append(keys, caldomain.KeyFor(d))
		d = d.AddDate(0, 1, 0)
	}
	return keys
}

func dropPending(events []resource.Event, pendingID string) []resource.Event {
	kept := events[:0]
	for _, ev := range events {
		if ev.PendingID != pendingID {
			kept = append(kept, ev)
		}
	}
	return kept
}

func dropSameRange(events []resource.Event, start, end time.Time) []resource.Event {
	kept := events[:0]
	for _, ev := range events {
		if !(ev.Start.Equal(start) && ev.End.Equal(end)) {
			kept = append(kept, ev)
		}
	}
	return kept
}

func eventView(ev resource.Event) caldomain.EventView {
	return caldomain.EventView{
		ID:         ev.ID,
		ResourceID: ev.ResourceID,
		StartDate:  ev.Start,
		EndDate:    ev.End,
		FullDay:    ev.FullDay,
		Morning:    ev.Morning,
		Afternoon:  ev.Afternoon,
	}
}
