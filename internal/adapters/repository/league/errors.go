package league

import "errors"

// Sentinel kinds for league store errors.
var (
	ErrNotFound     = errors.New("player not found")
	ErrInvalidQuery = errors.New("invalid query")
	ErrClosed       = errors.New("store is closed")
)
