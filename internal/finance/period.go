package finance

import (
	"time"

	"github.com/sikuang/backend/internal/types"
)

// DateRange is a closed interval of calendar days.
type DateRange struct {
	Start types.Date `json:"startDate" example:"2024-01-01"`
	End   types.Date `json:"endDate" example:"2024-01-31"`
}

// Contains reports whether the date is in the range.
func (r DateRange) Contains(d types.Date) bool {
	return d.Between(r.Start, r.End)
}

// ValidateDateRange fails when start is after end.
func ValidateDateRange(start, end types.Date) error {
	if start.After(end) {
		return ErrInvalidDateRange
	}

	return nil
}

// ResolveDateRange determines the period for a report.
//
// If both start and end are set, they are used as they are. Otherwise, the
// range covers the given month of the year, or the whole year if month is 0.
func ResolveDateRange(year, month int, start, end types.Date) (DateRange, error) {
	if !start.IsZero() && !end.IsZero() {
		if err := ValidateDateRange(start, end); err != nil {
			return DateRange{}, err
		}

		return DateRange{Start: start, End: end}, nil
	}

	if month < 0 || month > 12 {
		return DateRange{}, ErrInvalidMonth
	}

	if year <= 0 {
		return DateRange{}, ErrInvalidYear
	}

	if month == 0 {
		return DateRange{
			Start: types.NewDate(year, time.January, 1),
			End:   types.NewDate(year, time.December, 31),
		}, nil
	}

	return DateRange{
		Start: types.FirstOfMonth(year, time.Month(month)),
		End:   types.LastOfMonth(year, time.Month(month)),
	}, nil
}
