package finance

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	one     = decimal.NewFromInt(1)
	hundred = decimal.NewFromInt(100)
)

// DefaultUnit is the unit used for the primary quantity when none is given.
const DefaultUnit = "paket"

// Ekuivalen is the quantity × unit decomposition of a monetary amount.
//
// The amount is quantity1 × quantity2 × quantity3 × unitPrice where the
// optional quantities default to 1.
type Ekuivalen struct {
	Quantity1 decimal.Decimal     `json:"quantity1" gorm:"type:DECIMAL(20,8)" example:"5"`                  // Primary quantity
	Unit1     string              `json:"unit1" example:"paket" default:"paket"`                            // Unit of the primary quantity
	Quantity2 decimal.NullDecimal `json:"quantity2" gorm:"type:DECIMAL(20,8)" example:"2"`                  // Optional second quantity
	Unit2     string              `json:"unit2" example:"hari" default:""`                                  // Unit of the second quantity
	Quantity3 decimal.NullDecimal `json:"quantity3" gorm:"type:DECIMAL(20,8)" example:"1"`                  // Optional third quantity
	Unit3     string              `json:"unit3" example:"orang" default:""`                                 // Unit of the third quantity
	UnitPrice decimal.Decimal     `json:"unitPrice" gorm:"type:DECIMAL(20,8)" example:"100000" minimum:"0"` // Price per unit
}

// Amount returns the monetary total of the decomposition.
//
// Negative primary quantities and prices count as 0, absent or non-positive
// optional quantities count as 1.
func (e Ekuivalen) Amount() decimal.Decimal {
	return primary(e.Quantity1).
		Mul(factor(e.Quantity2)).
		Mul(factor(e.Quantity3)).
		Mul(primary(e.UnitPrice))
}

// Normalize trims the units and sets the default unit for the primary quantity.
func (e Ekuivalen) Normalize() Ekuivalen {
	e.Unit1 = strings.TrimSpace(e.Unit1)
	e.Unit2 = strings.TrimSpace(e.Unit2)
	e.Unit3 = strings.TrimSpace(e.Unit3)

	if e.Unit1 == "" {
		e.Unit1 = DefaultUnit
	}

	return e
}

func primary(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}

func factor(n decimal.NullDecimal) decimal.Decimal {
	if !n.Valid || !n.Decimal.IsPositive() {
		return one
	}
	return n.Decimal
}

// EkuivalenInput is an ekuivalen as entered in a form, with every number
// still a string.
type EkuivalenInput struct {
	Quantity1 string `json:"quantity1" form:"quantity1"`
	Unit1     string `json:"unit1" form:"unit1"`
	Quantity2 string `json:"quantity2" form:"quantity2"`
	Unit2     string `json:"unit2" form:"unit2"`
	Quantity3 string `json:"quantity3" form:"quantity3"`
	Unit3     string `json:"unit3" form:"unit3"`
	UnitPrice string `json:"unitPrice" form:"unitPrice"`
}

// Parse converts the input into an Ekuivalen. It never fails:
// unparseable or negative primary values become 0, unparseable
// or non-positive optional quantities are left out.
func (in EkuivalenInput) Parse() Ekuivalen {
	e := Ekuivalen{
		Quantity1: parsePrimary(in.Quantity1),
		Unit1:     in.Unit1,
		Quantity2: parseOptional(in.Quantity2),
		Unit2:     in.Unit2,
		Quantity3: parseOptional(in.Quantity3),
		Unit3:     in.Unit3,
		UnitPrice: parsePrimary(in.UnitPrice),
	}

	return e.Normalize()
}

// ComputeAmount computes the amount for raw quantity and price input.
func ComputeAmount(q1, q2, q3, unitPrice string) decimal.Decimal {
	return EkuivalenInput{
		Quantity1: q1,
		Quantity2: q2,
		Quantity3: q3,
		UnitPrice: unitPrice,
	}.Parse().Amount()
}

// parseNumber accepts both "." and "," as decimal separator.
func parseNumber(s string) (decimal.Decimal, bool) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	if s == "" {
		return decimal.Zero, false
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}

	return d, true
}

func parsePrimary(s string) decimal.Decimal {
	d, ok := parseNumber(s)
	if !ok || d.IsNegative() {
		return decimal.Zero
	}
	return d
}

func parseOptional(s string) decimal.NullDecimal {
	d, ok := parseNumber(s)
	if !ok || !d.IsPositive() {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(d)
}

// NormalizeJSON rewrites the quantities and the unit price of a JSON object,
// or of every object in a JSON array, the way EkuivalenInput.Parse reads
// them. Numbers and strings are both accepted. Optional quantities that
// do not parse become null. Keys that are not present stay absent.
func NormalizeJSON(data []byte) ([]byte, error) {
	d := json.NewDecoder(bytes.NewReader(data))
	d.UseNumber()

	var v any
	if err := d.Decode(&v); err != nil {
		return nil, err
	}

	// Trailing data is left for the binding to reject
	if d.More() {
		return data, nil
	}

	switch t := v.(type) {
	case map[string]any:
		normalizeObject(t)
	case []any:
		for _, item := range t {
			if obj, ok := item.(map[string]any); ok {
				normalizeObject(obj)
			}
		}
	default:
		return data, nil
	}

	return json.Marshal(v)
}

func normalizeObject(obj map[string]any) {
	var in EkuivalenInput
	fields := map[string]*string{
		"quantity1": &in.Quantity1,
		"quantity2": &in.Quantity2,
		"quantity3": &in.Quantity3,
		"unitPrice": &in.UnitPrice,
	}

	// JSON field name => key used in the object
	present := make(map[string]string)
	for key, value := range obj {
		for name, field := range fields {
			if !strings.EqualFold(key, name) {
				continue
			}

			text, ok := numberText(value)
			if !ok {
				continue
			}
			*field = text
			present[name] = key
		}
	}

	e := in.Parse()
	for name, key := range present {
		switch name {
		case "quantity1":
			obj[key] = e.Quantity1.String()
		case "quantity2":
			obj[key] = nullable(e.Quantity2)
		case "quantity3":
			obj[key] = nullable(e.Quantity3)
		case "unitPrice":
			obj[key] = e.UnitPrice.String()
		}
	}
}

// numberText returns the raw text of a JSON number or string. Other
// values are left for the decoder to reject.
func numberText(v any) (string, bool) {
	switch t := v.(type) {
	case nil:
		return "", true
	case string:
		return t, true
	case json.Number:
		return t.String(), true
	}
	return "", false
}

func nullable(n decimal.NullDecimal) any {
	if !n.Valid {
		return nil
	}
	return n.Decimal.String()
}
