package sheets

import "errors"

// Sentinel kinds for store errors.
var (
	ErrSheetExists   = errors.New("sheet already exists")
	ErrSheetNotFound = errors.New("sheet not found")
	ErrBadRange      = errors.New("invalid range")
)
