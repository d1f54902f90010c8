package service

import "errors"

// Service errors.
var (
	// ErrLockTimeout is returned when the board lock wait elapses before
	// the payload could be applied.
	ErrLockTimeout = errors.New("board lock wait timed out")

	// ErrUnknownAction is returned for payload actions the dispatcher does
	// not route.
	ErrUnknownAction = errors.New("unknown payload action")
)
