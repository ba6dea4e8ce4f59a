package finance

import "errors"

var (
	ErrNegativePlannedAmount = errors.New("the planned amount must not be negative")
	ErrInvalidDateRange      = errors.New("the start date must not be after the end date")
	ErrInvalidMonth          = errors.New("the month must be between 1 and 12, or 0 for the whole year")
	ErrInvalidYear           = errors.New("a year must be specified when no explicit date range is given")
)
