package judge

import "errors"

// Sentinel kinds for judge errors.
var (
	ErrUnknownJudge = errors.New("unknown online judge")
)
