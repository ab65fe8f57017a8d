package eats

import "errors"

// Sentinel kinds for restaurant store errors.
var (
	ErrUnknownDriver = errors.New("unknown restaurant driver")
	ErrNoData        = errors.New("no vote data")
)
