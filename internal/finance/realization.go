package finance

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Realization is how much of a plan has been realized by transactions.
type Realization struct {
	TotalRealized   decimal.Decimal `json:"totalRealized" example:"500000"` // Sum of all matching transactions
	PercentRealized decimal.Decimal `json:"percentRealized" example:"50"`   // Realized share of the planned amount in percent, two decimal places
	Remaining       decimal.Decimal `json:"remaining" example:"500000"`     // Planned amount minus realized amount. Negative on overrun
}

// Aggregate computes the realization of a plan.
//
// Only transactions linked to the plan and of the same kind as the plan's
// category are counted. A plan with a planned amount of 0 is realized to 0 percent.
func Aggregate(plan Plan, transactions []Transaction) (Realization, error) {
	if plan.PlannedAmount.IsNegative() {
		return Realization{}, ErrNegativePlannedAmount
	}

	total := decimal.Zero
	for _, t := range transactions {
		if !t.linkedTo(plan.ID) || t.Type != plan.Kind {
			continue
		}
		total = total.Add(t.Amount)
	}

	percent := decimal.Zero
	if !plan.PlannedAmount.IsZero() {
		percent = total.Div(plan.PlannedAmount).Mul(hundred).Round(2)
	}

	return Realization{
		TotalRealized:   total,
		PercentRealized: percent,
		Remaining:       plan.PlannedAmount.Sub(total),
	}, nil
}

// PlanRealization is one row of the realization report.
type PlanRealization struct {
	Plan Plan
	Realization
	Err error // Set if the realization could not be computed
}

// RealizationReport is the realization of all plans of a budget year.
type RealizationReport struct {
	Rows           []PlanRealization
	TotalPlanned   decimal.Decimal
	TotalRealized  decimal.Decimal
	TotalRemaining decimal.Decimal
}

// AggregateAll computes the realization for every plan.
//
// Plans that fail with a structural error are kept in the rows with
// their error set, but are not included in the totals.
func AggregateAll(plans []Plan, transactions []Transaction) RealizationReport {
	byPlan := make(map[uuid.UUID][]Transaction)
	for _, t := range transactions {
		if t.PlanID == nil {
			continue
		}
		byPlan[*t.PlanID] = append(byPlan[*t.PlanID], t)
	}

	report := RealizationReport{
		Rows: make([]PlanRealization, 0, len(plans)),
	}

	for _, p := range plans {
		r, err := Aggregate(p, byPlan[p.ID])
		report.Rows = append(report.Rows, PlanRealization{Plan: p, Realization: r, Err: err})
		if err != nil {
			continue
		}

		report.TotalPlanned = report.TotalPlanned.Add(p.PlannedAmount)
		report.TotalRealized = report.TotalRealized.Add(r.TotalRealized)
		report.TotalRemaining = report.TotalRemaining.Add(r.Remaining)
	}

	return report
}
