package models

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sikuang/backend/internal/finance"
	"gorm.io/gorm"
)

// Snapshot is a consistent view of everything that is needed to compute
// the summary and the reports for a period.
type Snapshot struct {
	BudgetYear   *BudgetYear // nil if no budget year was given and none is active
	Range        finance.DateRange
	Plans        []finance.Plan
	Transactions []finance.Transaction // Ordered by date
	Categories   []finance.Category
}

// LoadSnapshot reads the plans of the budget year, the transactions in the
// date range and all categories in one read transaction.
//
// If budgetYearID is uuid.Nil, the active budget year is used.
func LoadSnapshot(db *gorm.DB, budgetYearID uuid.UUID, dateRange finance.DateRange) (Snapshot, error) {
	snapshot := Snapshot{
		Range:        dateRange,
		Plans:        make([]finance.Plan, 0),
		Transactions: make([]finance.Transaction, 0),
		Categories:   make([]finance.Category, 0),
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		budgetYear, err := resolveBudgetYear(tx, budgetYearID)
		if err != nil {
			return err
		}

		if budgetYear != nil {
			snapshot.BudgetYear = budgetYear

			var plans []Plan
			err = tx.
				Preload("Category").
				Where(&Plan{BudgetYearID: budgetYear.ID}).
				Order("name ASC").
				Find(&plans).Error
			if err != nil {
				return fmt.Errorf("loading plans: %w", err)
			}

			for _, p := range plans {
				snapshot.Plans = append(snapshot.Plans, p.Finance())
			}
		}

		var transactions []Transaction
		err = tx.
			Preload("Plan").
			Where("date >= ? AND date <= ?", dateRange.Start, dateRange.End).
			Order("date ASC, created_at ASC").
			Find(&transactions).Error
		if err != nil {
			return fmt.Errorf("loading transactions: %w", err)
		}

		for _, t := range transactions {
			snapshot.Transactions = append(snapshot.Transactions, t.Finance())
		}

		var categories []Category
		err = tx.Order("name ASC").Find(&categories).Error
		if err != nil {
			return fmt.Errorf("loading categories: %w", err)
		}

		for _, c := range categories {
			snapshot.Categories = append(snapshot.Categories, c.Finance())
		}

		return nil
	})
	if err != nil {
		return Snapshot{}, err
	}

	return snapshot, nil
}

// resolveBudgetYear returns the budget year with the ID or, for uuid.Nil,
// the active budget year. If there is no active budget year, it returns nil.
func resolveBudgetYear(db *gorm.DB, id uuid.UUID) (*BudgetYear, error) {
	if id != uuid.Nil {
		var b BudgetYear
		err := db.First(&b, id).Error
		if err != nil {
			return nil, err
		}
		return &b, nil
	}

	b, err := ActiveBudgetYear(db)
	if errors.Is(err, ErrResourceNotFound) {
		return nil, nil
	} else if err != nil {
		return nil, err
	}

	return &b, nil
}
