package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sikuang/backend/internal/finance"
	"github.com/sikuang/backend/internal/types"
	"gorm.io/gorm"
)

// Transaction is an actual cash movement ("transaksi").
type Transaction struct {
	DefaultModel
	PlanID      *uuid.UUID // nil for transactions that are not linked to a plan
	Plan        *Plan      `json:"-"`
	Date        types.Date `gorm:"index"`
	Description string
	Type        finance.Kind
	finance.Ekuivalen
	Amount      decimal.Decimal `gorm:"type:DECIMAL(20,8)"` // Always computed from the ekuivalen
	EvidenceURL string                                      // Link to the receipt
}

// BeforeSave
//   - ensures that the plan ID is nil and not a pointer to a nil UUID
//   - defaults the date to today
//   - validates the type and the ekuivalen and computes the amount
func (t *Transaction) BeforeSave(tx *gorm.DB) error {
	t.Description = strings.TrimSpace(t.Description)
	t.EvidenceURL = strings.TrimSpace(t.EvidenceURL)
	t.Ekuivalen = t.Ekuivalen.Normalize()

	if t.PlanID != nil && *t.PlanID == uuid.Nil {
		t.PlanID = nil
	}

	if t.Date.IsZero() {
		t.Date = types.DateOf(time.Now().In(time.UTC))
	}

	if !t.Type.Valid() {
		return ErrTransactionTypeInvalid
	}

	if !t.Quantity1.IsPositive() {
		return ErrQuantityRequired
	}

	if !t.UnitPrice.IsPositive() {
		return ErrUnitPriceRequired
	}

	t.Amount = t.Ekuivalen.Amount()

	if t.PlanID != nil {
		err := tx.First(&Plan{}, *t.PlanID).Error
		if err != nil {
			return fmt.Errorf("invalid plan: %w", err)
		}
	}

	return nil
}

// Finance returns the representation used for computations.
//
// If the Plan is loaded, its name and category are set.
func (t Transaction) Finance() finance.Transaction {
	ft := finance.Transaction{
		ID:          t.ID,
		PlanID:      t.PlanID,
		Date:        t.Date,
		Description: t.Description,
		Type:        t.Type,
		Amount:      t.Amount,
		Ekuivalen:   t.Ekuivalen,
	}

	if t.Plan != nil {
		categoryID := t.Plan.CategoryID
		ft.CategoryID = &categoryID
		ft.PlanName = t.Plan.Name
	}

	return ft
}
