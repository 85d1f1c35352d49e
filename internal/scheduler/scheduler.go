// Package scheduler runs the periodic directory stats snapshot that feeds
// the Prometheus gauges.
package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/Chiosap01/allcascais/internal/metrics"
	"github.com/Chiosap01/allcascais/internal/store"
)

// Scheduler refreshes the directory gauges on a fixed interval.
type Scheduler struct {
	cron  *cron.Cron
	store store.Store
	log   *slog.Logger
}

// New creates a Scheduler snapshotting stats every statsInterval.
func New(st store.Store, statsInterval time.Duration, log *slog.Logger) (*Scheduler, error) {
	c := cron.New()

	s := &Scheduler{
		cron:  c,
		store: st,
		log:   log,
	}

	if _, err := c.AddFunc("@every "+statsInterval.String(), s.runStatsSnapshot); err != nil {
		return nil, err
	}

	return s, nil
}

// Start begins running scheduled tasks and takes an immediate first
// snapshot so the gauges are populated before the first tick.
func (s *Scheduler) Start() {
	s.log.Info("scheduler started")
	s.runStatsSnapshot()
	s.cron.Start()
}

// Stop gracefully stops the scheduler, waiting for running jobs to finish.
func (s *Scheduler) Stop() context.Context {
	s.log.Info("scheduler stopping")
	return s.cron.Stop()
}

// Entries returns the registered cron entries for inspection.
func (s *Scheduler) Entries() []cron.Entry {
	return s.cron.Entries()
}

func (s *Scheduler) runStatsSnapshot() {
	ctx := context.Background()

	stats, err := s.store.GetDirectoryStats(ctx)
	if err != nil {
		s.log.Error("stats snapshot failed", "error", err)
		return
	}

	metrics.ServicesVisible.Set(float64(stats.ServicesVisible))
	metrics.RatingsTotal.Set(float64(stats.RatingsTotal))
	metrics.OffersCurrent.Set(float64(stats.OffersCurrent))
	metrics.PropertiesActive.Set(float64(stats.PropertiesActive))
	metrics.SearchRequestsTotal.Set(float64(stats.SearchRequests))

	s.log.Debug("stats snapshot",
		"services_visible", stats.ServicesVisible,
		"ratings_total", stats.RatingsTotal,
		"offers_current", stats.OffersCurrent,
		"properties_active", stats.PropertiesActive,
	)
}
