// Package scheduler periodically recomputes the cached plan realizations.
package scheduler

import (
	"context"
	"errors"
	"fmt"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/sikuang/backend/internal/models"
	"gorm.io/gorm"
)

// Scheduler runs the realization refresh on a cron schedule.
type Scheduler struct {
	cron *cron.Cron
	db   *gorm.DB
}

// New creates a scheduler for the schedule. The schedule uses the standard
// cron format or a descriptor like "@every 15m".
//
// It returns nil for an empty schedule.
func New(db *gorm.DB, schedule string) (*Scheduler, error) {
	if schedule == "" {
		return nil, nil
	}

	logger := cronLogger{log.Logger.With().Str("component", "scheduler").Logger()}

	s := &Scheduler{
		db: db,
		cron: cron.New(
			cron.WithLogger(logger),
			cron.WithChain(cron.Recover(logger), cron.SkipIfStillRunning(logger)),
		),
	}

	_, err := s.cron.AddFunc(schedule, s.run)
	if err != nil {
		return nil, fmt.Errorf("invalid realization refresh schedule %q: %w", schedule, err)
	}

	return s, nil
}

// Start starts the scheduler in its own goroutine.
func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop stops the scheduler. The returned context is done when a running job has completed.
func (s *Scheduler) Stop() context.Context {
	return s.cron.Stop()
}

func (s *Scheduler) run() {
	count, err := RefreshActiveBudgetYear(s.db)
	if err != nil {
		log.Error().Err(err).Msg("realization refresh failed")
		return
	}

	log.Info().Int("plans", count).Msg("realization refresh")
}

// RefreshActiveBudgetYear recomputes the realization for all plans of the active
// budget year. Without an active budget year, nothing is done.
func RefreshActiveBudgetYear(db *gorm.DB) (int, error) {
	b, err := models.ActiveBudgetYear(db)
	if errors.Is(err, models.ErrResourceNotFound) {
		return 0, nil
	} else if err != nil {
		return 0, err
	}

	return models.RefreshRealizations(db, b.ID)
}

// cronLogger implements cron.Logger with zerolog.
type cronLogger struct {
	logger zerolog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Debug().Fields(keysAndValues).Msg(msg)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.logger.Error().Err(err).Fields(keysAndValues).Msg(msg)
}
