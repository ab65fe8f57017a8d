package league

import "errors"

// Sentinel kinds for league service errors.
var (
	ErrInvalidInput = errors.New("invalid input")
)
