package response

import (
	"errors"
	"net/http"

	"github.com/agiledash/calendar-backend-go/internal/domain/calendar"
	"github.com/agiledash/calendar-backend-go/internal/domain/resource"
	"github.com/agiledash/calendar-backend-go/internal/pkg/validator"
	"github.com/agiledash/calendar-backend-go/internal/repository/tracker"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Calendar domain errors
	case errors.Is(err, calendar.ErrNotLoaded):
		Conflict(w, "Calendar not loaded yet")
	case errors.Is(err, calendar.ErrInvalidMonth):
		BadRequest(w, "Month must be between 1 and 12", nil)

	// Resource domain errors
	case errors.Is(err, resource.ErrResourceNotFound):
		NotFound(w, "Resource not found")
	case errors.Is(err, resource.ErrEventNotFound):
		NotFound(w, "Event not found")
	case errors.Is(err, resource.ErrMissingEventID):
		BadRequest(w, "Event has no identifier", nil)

	// Tracker backend failures
	case errors.Is(err, tracker.ErrUnavailable):
		BadGateway(w, "Tracking backend unavailable")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
