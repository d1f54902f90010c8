package board

import "errors"

// ErrHandleNotFound is returned by lookups for handles absent from the
// cumulative table.
var ErrHandleNotFound = errors.New("handle not found in cumulative table")
