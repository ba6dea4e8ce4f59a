package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"
	"github.com/sikuang/backend/internal/finance"
	"gorm.io/gorm"
)

// RealizationCacheFailures counts failed writes of the realization cache.
var RealizationCacheFailures = prometheus.NewCounter(
	prometheus.CounterOpts{
		Name: "realization_cache_failures_total",
		Help: "How many writes of cached plan realizations failed.",
	},
)

// CacheRealization writes the realization to the cache fields of the plan.
func CacheRealization(db *gorm.DB, planID uuid.UUID, r finance.Realization) error {
	return db.
		Session(&gorm.Session{SkipHooks: true}).
		Model(&Plan{DefaultModel: DefaultModel{ID: planID}}).
		Updates(map[string]any{
			"total_realized":   r.TotalRealized,
			"percent_realized": r.PercentRealized,
			"remaining":        r.Remaining,
			"realized_at":      time.Now().In(time.UTC),
		}).Error
}

// cacheBestEffort writes the realization cache and logs failures.
func cacheBestEffort(db *gorm.DB, planID uuid.UUID, r finance.Realization) {
	err := CacheRealization(db, planID, r)
	if err != nil {
		RealizationCacheFailures.Inc()
		log.Warn().Err(err).Str("plan", planID.String()).Msg("could not cache realization")
	}
}

// RealizePlan computes the realization of the plan from all its transactions.
//
// The result is written to the cache of the plan. Failing to do so is logged,
// but does not affect the returned realization.
func RealizePlan(db *gorm.DB, planID uuid.UUID) (Plan, finance.Realization, error) {
	var plan Plan
	err := db.Preload("Category").First(&plan, planID).Error
	if err != nil {
		return Plan{}, finance.Realization{}, err
	}

	var transactions []Transaction
	err = db.Where(&Transaction{PlanID: &plan.ID}).Find(&transactions).Error
	if err != nil {
		return Plan{}, finance.Realization{}, err
	}

	r, err := finance.Aggregate(plan.Finance(), toFinanceTransactions(transactions))
	if err != nil {
		return plan, finance.Realization{}, err
	}

	cacheBestEffort(db, plan.ID, r)
	return plan, r, nil
}

// RefreshRealizations recomputes and caches the realization of
// all plans of the budget year. It returns the number of plans
// whose realization was computed.
func RefreshRealizations(db *gorm.DB, budgetYearID uuid.UUID) (int, error) {
	var plans []Plan
	err := db.Preload("Category").Where(&Plan{BudgetYearID: budgetYearID}).Find(&plans).Error
	if err != nil {
		return 0, err
	}

	return refresh(db, plans)
}

// RefreshPlans recomputes and caches the realization of the plans with the given IDs.
// IDs of plans that do not exist are ignored.
func RefreshPlans(db *gorm.DB, ids ...uuid.UUID) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	var plans []Plan
	err := db.Preload("Category").Where("id IN ?", ids).Find(&plans).Error
	if err != nil {
		return 0, err
	}

	return refresh(db, plans)
}

func refresh(db *gorm.DB, plans []Plan) (int, error) {
	if len(plans) == 0 {
		return 0, nil
	}

	ids := make([]uuid.UUID, 0, len(plans))
	financePlans := make([]finance.Plan, 0, len(plans))
	for _, p := range plans {
		ids = append(ids, p.ID)
		financePlans = append(financePlans, p.Finance())
	}

	var transactions []Transaction
	err := db.Where("plan_id IN ?", ids).Find(&transactions).Error
	if err != nil {
		return 0, err
	}

	report := finance.AggregateAll(financePlans, toFinanceTransactions(transactions))

	count := 0
	for _, row := range report.Rows {
		if row.Err != nil {
			log.Warn().Err(row.Err).Str("plan", row.Plan.ID.String()).Msg("could not compute realization")
			continue
		}

		cacheBestEffort(db, row.Plan.ID, row.Realization)
		count++
	}

	return count, nil
}

func toFinanceTransactions(transactions []Transaction) []finance.Transaction {
	result := make([]finance.Transaction, 0, len(transactions))
	for _, t := range transactions {
		result = append(result, t.Finance())
	}

	return result
}
