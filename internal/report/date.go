package report

import (
	"fmt"
	"time"

	"github.com/sikuang/backend/internal/finance"
	"github.com/sikuang/backend/internal/types"
)

var months = [...]string{
	"Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember",
}

// MonthName returns the Indonesian name of the month.
func MonthName(m time.Month) string {
	return months[m-1]
}

// FormatDate formats a date in Indonesian long form, e.g. "5 Januari 2024".
func FormatDate(d types.Date) string {
	if d.IsZero() {
		return ""
	}
	return fmt.Sprintf("%d %s %d", d.Day(), MonthName(d.Month()), d.Year())
}

// FormatPeriod describes a date range. Whole months and whole years
// are shortened to "Januari 2024" and "Tahun 2024".
func FormatPeriod(r finance.DateRange) string {
	start, end := r.Start, r.End

	if start.Day() == 1 && start.Month() == time.January &&
		end.Equal(types.NewDate(start.Year(), time.December, 31)) {
		return fmt.Sprintf("Tahun %d", start.Year())
	}

	if start.Day() == 1 && end.Equal(types.LastOfMonth(start.Year(), start.Month())) {
		return fmt.Sprintf("%s %d", MonthName(start.Month()), start.Year())
	}

	return fmt.Sprintf("%s - %s", FormatDate(start), FormatDate(end))
}
