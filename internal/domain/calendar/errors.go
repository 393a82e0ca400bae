package calendar

import "errors"

var (
	ErrNotLoaded    = errors.New("calendar not loaded")
	ErrInvalidMonth = errors.New("month must be between 1 and 12")
)
