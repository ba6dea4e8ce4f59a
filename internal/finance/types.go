package finance

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sikuang/backend/internal/types"
)

// Category classifies plans and, through them, transactions.
type Category struct {
	ID   uuid.UUID
	Name string
	Kind Kind
}

// Plan is a budgeted activity.
type Plan struct {
	ID            uuid.UUID
	CategoryID    uuid.UUID
	CategoryName  string // Name of the plan's category, if it was expanded by the caller
	Name          string
	Kind          Kind // The kind of the plan's category
	StartDate     types.Date
	EndDate       types.Date
	PlannedAmount decimal.Decimal
	Ekuivalen     Ekuivalen
}

// Transaction is an actual cash movement.
type Transaction struct {
	ID          uuid.UUID
	PlanID      *uuid.UUID // nil for transactions not linked to a plan
	CategoryID  *uuid.UUID // Category of the linked plan, if it was expanded by the caller
	PlanName    string     // Name of the linked plan, if it was expanded by the caller
	Date        types.Date
	Description string
	Type        Kind
	Amount      decimal.Decimal
	Ekuivalen   Ekuivalen
}

// linkedTo reports whether the transaction is linked to the plan with the given ID.
func (t Transaction) linkedTo(id uuid.UUID) bool {
	return t.PlanID != nil && *t.PlanID == id
}
