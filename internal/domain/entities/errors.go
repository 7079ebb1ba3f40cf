package entities

import "errors"

// Domain errors
var (
	// User errors
	ErrUserNotFound = errors.New("user not found")
	ErrInvalidName  = errors.New("invalid name")
	ErrInvalidJob   = errors.New("invalid job")

	// Meeting errors
	ErrMeetingNotFound = errors.New("meeting not found")
	ErrInvalidStatus   = errors.New("invalid meeting status")

	// Generic errors
	ErrInvalidRequest = errors.New("invalid request")
)
