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

// Plan is a budgeted activity ("rencana kegiatan").
type Plan struct {
	DefaultModel
	BudgetYearID uuid.UUID
	BudgetYear   BudgetYear `json:"-"`
	CategoryID   uuid.UUID
	Category     Category `json:"-"`
	Name         string
	Description  string
	StartDate    types.Date
	EndDate      types.Date
	finance.Ekuivalen
	PlannedAmount decimal.Decimal `gorm:"type:DECIMAL(20,8)"` // Always computed from the ekuivalen

	// Cached realization, see CacheRealization
	TotalRealized   decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	PercentRealized decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Remaining       decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	RealizedAt      *time.Time
}

// BeforeSave validates the plan and computes the planned amount.
func (p *Plan) BeforeSave(tx *gorm.DB) error {
	p.Name = strings.TrimSpace(p.Name)
	p.Description = strings.TrimSpace(p.Description)
	p.Ekuivalen = p.Ekuivalen.Normalize()

	if !p.Quantity1.IsPositive() {
		return ErrQuantityRequired
	}

	if !p.UnitPrice.IsPositive() {
		return ErrUnitPriceRequired
	}

	if !p.StartDate.IsZero() && !p.EndDate.IsZero() && p.EndDate.Before(p.StartDate) {
		return ErrPlanDateRange
	}

	p.PlannedAmount = p.Ekuivalen.Amount()

	return p.checkIntegrity(tx)
}

func (p *Plan) checkIntegrity(tx *gorm.DB) error {
	err := tx.First(&BudgetYear{}, p.BudgetYearID).Error
	if err != nil {
		return fmt.Errorf("invalid budget year: %w", err)
	}

	err = tx.First(&Category{}, p.CategoryID).Error
	if err != nil {
		return fmt.Errorf("invalid category: %w", err)
	}

	return nil
}

// Finance returns the representation used for computations.
//
// The Category must be loaded to determine the kind of the plan.
func (p Plan) Finance() finance.Plan {
	return finance.Plan{
		ID:            p.ID,
		CategoryID:    p.CategoryID,
		CategoryName:  p.Category.Name,
		Name:          p.Name,
		Kind:          p.Category.Kind,
		StartDate:     p.StartDate,
		EndDate:       p.EndDate,
		PlannedAmount: p.PlannedAmount,
		Ekuivalen:     p.Ekuivalen,
	}
}

// PlanFilter selects the plans of a plan list.
type PlanFilter struct {
	BudgetYearID uuid.UUID
	CategoryID   uuid.UUID          // uuid.Nil selects all categories
	Starting     *finance.DateRange // Range of the start dates. nil selects all plans
}

// FilterPlans returns the plans matching the filter, ordered by start date
// and name.
func FilterPlans(db *gorm.DB, f PlanFilter) ([]finance.Plan, error) {
	query := db.Preload("Category").Where(&Plan{BudgetYearID: f.BudgetYearID})
	if f.CategoryID != uuid.Nil {
		query = query.Where(&Plan{CategoryID: f.CategoryID})
	}

	if f.Starting != nil {
		query = query.Where("start_date >= ? AND start_date <= ?", f.Starting.Start, f.Starting.End)
	}

	var plans []Plan
	err := query.Order("start_date ASC, name ASC").Find(&plans).Error
	if err != nil {
		return nil, fmt.Errorf("loading plans: %w", err)
	}

	result := make([]finance.Plan, 0, len(plans))
	for _, p := range plans {
		result = append(result, p.Finance())
	}

	return result, nil
}
