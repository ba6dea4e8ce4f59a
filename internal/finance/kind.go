package finance

import (
	"fmt"
	"strings"
)

// Kind is the direction of a category or transaction.
//
// swagger:enum Kind
type Kind string

const (
	KindIncome  Kind = "income"
	KindExpense Kind = "expense"
)

var ErrKindInvalid = fmt.Errorf("the kind must be one of %q or %q", KindIncome, KindExpense)

// ParseKind parses a kind, ignoring case and surrounding whitespace.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	if !k.Valid() {
		return "", ErrKindInvalid
	}

	return k, nil
}

// Valid reports whether k is a known kind.
func (k Kind) Valid() bool {
	return k == KindIncome || k == KindExpense
}
