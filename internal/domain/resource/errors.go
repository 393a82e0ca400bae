package resource

import "errors"

var (
	ErrResourceNotFound = errors.New("resource not found")
	ErrEventNotFound    = errors.New("event not found")
	ErrMissingEventID   = errors.New("event has no identifier")
)
