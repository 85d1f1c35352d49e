package scheduler_test

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Chiosap01/allcascais/internal/metrics"
	"github.com/Chiosap01/allcascais/internal/scheduler"
	"github.com/Chiosap01/allcascais/internal/store"
	"github.com/Chiosap01/allcascais/pkg/logger"
	domain "github.com/Chiosap01/allcascais/pkg/types"
)

// statsStore stubs only the stats read; the embedded interface panics on
// anything else, which is the point.
type statsStore struct {
	store.Store
	stats *domain.DirectoryStats
	err   error
}

func (s *statsStore) GetDirectoryStats(context.Context) (*domain.DirectoryStats, error) {
	return s.stats, s.err
}

func TestSchedulerSnapshotSetsGauges(t *testing.T) {
	st := &statsStore{stats: &domain.DirectoryStats{
		ServicesVisible:  12,
		RatingsTotal:     34,
		OffersCurrent:    5,
		PropertiesActive: 7,
		SearchRequests:   2,
	}}

	s, err := scheduler.New(st, time.Hour, logger.NewWithWriter(io.Discard, "info", "text"))
	require.NoError(t, err)

	s.Start()
	defer func() { <-s.Stop().Done() }()

	assert.InDelta(t, 12, testutil.ToFloat64(metrics.ServicesVisible), 1e-9)
	assert.InDelta(t, 34, testutil.ToFloat64(metrics.RatingsTotal), 1e-9)
	assert.InDelta(t, 5, testutil.ToFloat64(metrics.OffersCurrent), 1e-9)
	assert.InDelta(t, 7, testutil.ToFloat64(metrics.PropertiesActive), 1e-9)
	assert.InDelta(t, 2, testutil.ToFloat64(metrics.SearchRequestsTotal), 1e-9)

	require.Len(t, s.Entries(), 1)
}

func TestSchedulerSnapshotFailureLeavesGauges(t *testing.T) {
	metrics.ServicesVisible.Set(99)

	st := &statsStore{err: errors.New("db down")}

	s, err := scheduler.New(st, time.Hour, logger.NewWithWriter(io.Discard, "info", "text"))
	require.NoError(t, err)

	s.Start()
	defer func() { <-s.Stop().Done() }()

	assert.InDelta(t, 99, testutil.ToFloat64(metrics.ServicesVisible), 1e-9)
}
