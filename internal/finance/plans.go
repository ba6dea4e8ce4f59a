package finance

import "github.com/shopspring/decimal"

// PlanList is a list of plans with their planned totals.
type PlanList struct {
	Plans               []Plan
	TotalPlanned        decimal.Decimal
	TotalPlannedIncome  decimal.Decimal
	TotalPlannedExpense decimal.Decimal
	PlannedBalance      decimal.Decimal // Planned income minus planned expense
}

// ListPlans totals the planned amounts of the plans by kind. The order
// of the plans is kept.
func ListPlans(plans []Plan) PlanList {
	l := PlanList{Plans: make([]Plan, 0, len(plans))}

	for _, p := range plans {
		l.Plans = append(l.Plans, p)
		l.TotalPlanned = l.TotalPlanned.Add(p.PlannedAmount)

		if normalizeKind(p.Kind) == KindIncome {
			l.TotalPlannedIncome = l.TotalPlannedIncome.Add(p.PlannedAmount)
		} else {
			l.TotalPlannedExpense = l.TotalPlannedExpense.Add(p.PlannedAmount)
		}
	}

	l.PlannedBalance = l.TotalPlannedIncome.Sub(l.TotalPlannedExpense)
	return l
}
