package errors

import "errors"

// Common errors
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("resource not found")
)

// Resource errors
var (
	ErrMeetingNotFound = errors.New("meeting not found")
	ErrTeamNotFound    = errors.New("team not found")
	ErrProfileNotFound = errors.New("profile not found")
)
