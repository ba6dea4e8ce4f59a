package finance

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.Indonesian)

// FormatRupiah formats an amount as Indonesian Rupiah without fraction digits,
// e.g. "Rp100.000".
func FormatRupiah(d decimal.Decimal) string {
	n := d.Round(0).IntPart()
	if n < 0 {
		return "-Rp" + printer.Sprintf("%d", -n)
	}

	return "Rp" + printer.Sprintf("%d", n)
}

// FormatBreakdown returns the human readable decomposition of an ekuivalen,
// e.g. "5 paket × 2 hari × @ Rp100.000".
func FormatBreakdown(e Ekuivalen) string {
	var parts []string

	if !e.Quantity1.IsZero() {
		parts = append(parts, quantity(e.Quantity1, e.Unit1))
	}

	if e.Quantity2.Valid && !e.Quantity2.Decimal.IsZero() {
		parts = append(parts, quantity(e.Quantity2.Decimal, e.Unit2))
	}

	if e.Quantity3.Valid && !e.Quantity3.Decimal.IsZero() {
		parts = append(parts, quantity(e.Quantity3.Decimal, e.Unit3))
	}

	if !e.UnitPrice.IsZero() {
		parts = append(parts, "@ "+FormatRupiah(e.UnitPrice))
	}

	return strings.Join(parts, " × ")
}

func quantity(q decimal.Decimal, unit string) string {
	return strings.TrimSpace(q.String() + " " + strings.TrimSpace(unit))
}
