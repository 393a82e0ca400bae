package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	caldomain "github.com/agiledash/calendar-backend-go/internal/domain/calendar"
	"github.com/agiledash/calendar-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

// CalendarService is the controller surface the handlers drive.
type CalendarService interface {
	LoadInitial(ctx context.Context) error
	Window() (caldomain.WindowSnapshot, error)
	PrevMonth() (caldomain.WindowSnapshot, error)
	NextMonth() (caldomain.WindowSnapshot, error)
	JumpToMonth(year, month int) (caldomain.WindowSnapshot, error)
	CreateEvent(ctx context.Context, req caldomain.CreateEventRequest) (caldomain.EventView, error)
	DeleteEvent(ctx context.Context, resourceID, eventID int64) error
}

// HolidayService yields the holiday set the grid is built against.
type HolidayService interface {
	Holidays(year int) []caldomain.Holiday
}

type CalendarHandler interface {
	Window(w http.ResponseWriter, r *http.Request)
	Prev(w http.ResponseWriter, r *http.Request)
	Next(w http.ResponseWriter, r *http.Request)
	JumpTo(w http.ResponseWriter, r *http.Request)
	Refresh(w http.ResponseWriter, r *http.Request)
	CreateEvent(w http.ResponseWriter, r *http.Request)
	DeleteEvent(w http.ResponseWriter, r *http.Request)
	Holidays(w http.ResponseWriter, r *http.Request)
}

type CalendarHandlerImpl struct {
	calendarService CalendarService
	holidayService  HolidayService
}

func NewCalendarHandler(calendarService CalendarService, holidayService HolidayService) CalendarHandler {
	return &CalendarHandlerImpl{
		calendarService: calendarService,
		holidayService:  holidayService,
	}
}

// Window implements CalendarHandler.
func (h *CalendarHandlerImpl) Window(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.calendarService.Window()
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, snapshot)
}

// Prev implements CalendarHandler.
func (h *CalendarHandlerImpl) Prev(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.calendarService.PrevMonth()
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, snapshot)
}

// Next implements CalendarHandler.
func (h *CalendarHandlerImpl) Next(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.calendarService.NextMonth()
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, snapshot)
}

type jumpToRequest struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

// JumpTo implements CalendarHandler.
func (h *CalendarHandlerImpl) JumpTo(w http.ResponseWriter, r *http.Request) {
	var req jumpToRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("JumpTo decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	snapshot, err := h.calendarService.JumpToMonth(req.Year, req.Month)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, snapshot)
}

// Refresh implements CalendarHandler. It re-fetches the resource set from
// the tracker and rebuilds the window.
func (h *CalendarHandlerImpl) Refresh(w http.ResponseWriter, r *http.Request) {
	if err := h.calendarService.LoadInitial(r.Context()); err != nil {
		response.HandleError(w, err)
		return
	}
	snapshot, err := h.calendarService.Window()
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Calendar reloaded", snapshot)
}

// CreateEvent implements CalendarHandler.
func (h *CalendarHandlerImpl) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req caldomain.CreateEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateEvent decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	saved, err := h.calendarService.CreateEvent(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Event created successfully", saved)
}

// DeleteEvent implements CalendarHandler.
func (h *CalendarHandlerImpl) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	eventID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Event ID must be numeric", nil)
		return
	}
	resourceID, err := strconv.ParseInt(r.URL.Query().Get("resource_id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "resource_id query parameter is required", nil)
		return
	}

	if err := h.calendarService.DeleteEvent(r.Context(), resourceID, eventID); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Event deleted successfully", nil)
}

// Holidays implements CalendarHandler.
func (h *CalendarHandlerImpl) Holidays(w http.ResponseWriter, r *http.Request) {
	year := time.Now().Year()
	if raw := r.URL.Query().Get("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			response.BadRequest(w, "year must be numeric", nil)
			return
		}
		year = parsed
	}

	response.Success(w, h.holidayService.Holidays(year))
}
