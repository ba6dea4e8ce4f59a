package report

import (
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/sikuang/backend/internal/finance"
	"github.com/sikuang/backend/internal/types"
)

// Letterhead holds the application settings printed on every report.
type Letterhead struct {
	AppName       string
	CityName      string
	TreasurerName string
	LeaderName    string
}

// Header is printed above every report.
type Header struct {
	Letterhead
	Title     string
	Period    string
	PrintedOn types.Date
}

// NewHeader builds the header of a report covering the date range.
func NewHeader(l Letterhead, title string, r finance.DateRange, printedOn types.Date) Header {
	return Header{
		Letterhead: l,
		Title:      title,
		Period:     FormatPeriod(r),
		PrintedOn:  printedOn,
	}
}

// Column of a table. Width is relative to the other columns.
type Column struct {
	Title   string
	Width   float64
	Numeric bool
}

// Row is one line of a table. Cells are either strings or
// decimal.Decimal amounts.
type Row []any

// Table is the layout of a report, independent of the output format.
type Table struct {
	Header     Header
	Columns    []Column
	Rows       []Row
	Footer     []Row
	Signatures bool // Print the signature block for treasurer and leader
}

// cellText returns the printable text of a cell.
func cellText(v any) string {
	switch c := v.(type) {
	case nil:
		return ""
	case string:
		return c
	case decimal.Decimal:
		return finance.FormatRupiah(c)
	case int:
		return strconv.Itoa(c)
	default:
		return ""
	}
}
