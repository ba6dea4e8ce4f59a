package finance

import (
	"cmp"
	"slices"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OtherCategoryName is the name of the bucket for transactions without a category.
const OtherCategoryName = "Lainnya"

// CategoryTotal is the planned and realized total of one category.
type CategoryTotal struct {
	CategoryID    *uuid.UUID      `json:"categoryId" example:"0c3e9ab6-3f0d-4c38-a0e2-6b6f7f4f0d1c"` // nil for the "Lainnya" bucket
	CategoryName  string          `json:"categoryName" example:"Konsumsi"`
	Kind          Kind            `json:"kind" example:"expense"`
	PlannedTotal  decimal.Decimal `json:"plannedTotal" example:"1500000"`
	RealizedTotal decimal.Decimal `json:"realizedTotal" example:"1250000"`
}

// Summary is the planned and realized totals for a period.
type Summary struct {
	TotalPlannedIncome   decimal.Decimal `json:"totalPlannedIncome" example:"10000000"`
	TotalPlannedExpense  decimal.Decimal `json:"totalPlannedExpense" example:"8000000"`
	TotalRealizedIncome  decimal.Decimal `json:"totalRealizedIncome" example:"9500000"`
	TotalRealizedExpense decimal.Decimal `json:"totalRealizedExpense" example:"6200000"`
	NetBalance           decimal.Decimal `json:"netBalance" example:"3300000"` // Realized income minus realized expense
	ByCategory           []CategoryTotal `json:"byCategory"`
}

type categoryKey struct {
	id   uuid.UUID // uuid.Nil for the "Lainnya" bucket
	kind Kind
}

// Summarize computes the totals for the plans and transactions.
//
// The category of a transaction is the one set on the transaction or, if
// that is not set, the category of its linked plan. Transactions whose
// category cannot be resolved are counted in the "Lainnya" bucket.
// Realized amounts are grouped by the type of the transaction.
func Summarize(plans []Plan, transactions []Transaction, categories []Category) Summary {
	names := make(map[uuid.UUID]string, len(categories))
	for _, c := range categories {
		names[c.ID] = c.Name
	}

	planCategories := make(map[uuid.UUID]uuid.UUID, len(plans))
	for _, p := range plans {
		planCategories[p.ID] = p.CategoryID
	}

	var s Summary
	totals := make(map[categoryKey]*CategoryTotal)

	row := func(id uuid.UUID, kind Kind) *CategoryTotal {
		name, ok := names[id]
		if !ok {
			id = uuid.Nil
		}

		key := categoryKey{id: id, kind: kind}
		if t, ok := totals[key]; ok {
			return t
		}

		t := &CategoryTotal{CategoryName: OtherCategoryName, Kind: kind}
		if id != uuid.Nil {
			t.CategoryID = &id
			t.CategoryName = name
		}
		totals[key] = t
		return t
	}

	for _, p := range plans {
		kind := normalizeKind(p.Kind)
		r := row(p.CategoryID, kind)
		r.PlannedTotal = r.PlannedTotal.Add(p.PlannedAmount)

		if kind == KindIncome {
			s.TotalPlannedIncome = s.TotalPlannedIncome.Add(p.PlannedAmount)
		} else {
			s.TotalPlannedExpense = s.TotalPlannedExpense.Add(p.PlannedAmount)
		}
	}

	for _, t := range transactions {
		categoryID := uuid.Nil
		if t.CategoryID != nil {
			categoryID = *t.CategoryID
		} else if t.PlanID != nil {
			categoryID = planCategories[*t.PlanID]
		}

		kind := normalizeKind(t.Type)
		r := row(categoryID, kind)
		r.RealizedTotal = r.RealizedTotal.Add(t.Amount)

		if kind == KindIncome {
			s.TotalRealizedIncome = s.TotalRealizedIncome.Add(t.Amount)
		} else {
			s.TotalRealizedExpense = s.TotalRealizedExpense.Add(t.Amount)
		}
	}

	s.NetBalance = s.TotalRealizedIncome.Sub(s.TotalRealizedExpense)

	s.ByCategory = make([]CategoryTotal, 0, len(totals))
	for _, t := range totals {
		s.ByCategory = append(s.ByCategory, *t)
	}
	slices.SortFunc(s.ByCategory, compareCategoryTotals)

	return s
}

// normalizeKind treats everything that is not income as expense.
func normalizeKind(k Kind) Kind {
	if k == KindIncome {
		return KindIncome
	}
	return KindExpense
}

// compareCategoryTotals sorts income before expense, then by name with
// the "Lainnya" bucket last.
func compareCategoryTotals(a, b CategoryTotal) int {
	if a.Kind != b.Kind {
		if a.Kind == KindIncome {
			return -1
		}
		return 1
	}

	if (a.CategoryID == nil) != (b.CategoryID == nil) {
		if a.CategoryID == nil {
			return 1
		}
		return -1
	}

	return cmp.Compare(a.CategoryName, b.CategoryName)
}

// BalanceLine is one line of a balance sheet.
type BalanceLine struct {
	Name   string          `json:"name" example:"Konsumsi"`
	Amount decimal.Decimal `json:"amount" example:"1250000"`
}

// BalanceSheet is the "neraca": the cash position and the realized
// income and expense per category.
type BalanceSheet struct {
	Cash         decimal.Decimal `json:"cash" example:"3300000"`        // Cash and cash equivalents
	TotalAssets  decimal.Decimal `json:"totalAssets" example:"3300000"` // Equal to cash, there are no other assets
	Income       []BalanceLine   `json:"income"`
	TotalIncome  decimal.Decimal `json:"totalIncome" example:"9500000"`
	Expense      []BalanceLine   `json:"expense"`
	TotalExpense decimal.Decimal `json:"totalExpense" example:"6200000"`
}

// BalanceSheet derives the balance sheet from the summary.
// Categories without realized amounts are left out.
func (s Summary) BalanceSheet() BalanceSheet {
	sheet := BalanceSheet{
		Cash:         s.NetBalance,
		TotalAssets:  s.NetBalance,
		Income:       make([]BalanceLine, 0),
		TotalIncome:  s.TotalRealizedIncome,
		Expense:      make([]BalanceLine, 0),
		TotalExpense: s.TotalRealizedExpense,
	}

	for _, c := range s.ByCategory {
		if c.RealizedTotal.IsZero() {
			continue
		}

		line := BalanceLine{Name: c.CategoryName, Amount: c.RealizedTotal}
		if c.Kind == KindIncome {
			sheet.Income = append(sheet.Income, line)
		} else {
			sheet.Expense = append(sheet.Expense, line)
		}
	}

	return sheet
}
