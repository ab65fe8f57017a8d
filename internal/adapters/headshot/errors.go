package headshot

import "errors"

// Sentinel kinds for headshot errors.
var (
	ErrNotFound    = errors.New("headshot not found")
	ErrFetchFailed = errors.New("headshot fetch failed")
)
