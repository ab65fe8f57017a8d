package valuation

import "errors"

// Sentinel kinds for valuation errors.
var (
	ErrMissingStat = errors.New("missing stat")
	ErrZeroSalary  = errors.New("zero or negative salary")
)
