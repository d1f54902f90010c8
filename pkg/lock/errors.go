package lock

import "errors"

// Sentinel kinds for lock errors.
var (
	ErrTimeout = errors.New("lock wait timed out")
)
