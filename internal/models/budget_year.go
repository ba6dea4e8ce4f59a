package models

import (
	"strings"

	"github.com/sikuang/backend/internal/types"
	"gorm.io/gorm"
)

// BudgetYear is a fiscal period ("tahun anggaran").
type BudgetYear struct {
	DefaultModel
	Name      string `gorm:"uniqueIndex:budget_year_name"` // e.g. "TA 2024/2025"
	StartDate types.Date
	EndDate   types.Date
	Active    bool // At most one budget year is active
}

func (b *BudgetYear) BeforeSave(_ *gorm.DB) error {
	b.Name = strings.TrimSpace(b.Name)

	if b.EndDate.Before(b.StartDate) {
		return ErrBudgetYearDateRange
	}

	return nil
}

// AfterSave deactivates all other budget years when this one is active.
//
// This runs in the same database transaction as the save itself.
func (b *BudgetYear) AfterSave(tx *gorm.DB) error {
	if !b.Active {
		return nil
	}

	return tx.
		Session(&gorm.Session{NewDB: true, SkipHooks: true}).
		Model(&BudgetYear{}).
		Where("id <> ? AND active = ?", b.ID, true).
		Update("active", false).Error
}

// ActiveBudgetYear returns the active budget year.
func ActiveBudgetYear(db *gorm.DB) (BudgetYear, error) {
	var b BudgetYear
	err := db.Where(&BudgetYear{Active: true}).First(&b).Error
	return b, err
}
