// Package sweeper contains the periodic release of expired claims.
package sweeper

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/reswipe/reswipe/internal/service"
)

var log = logrus.WithField("layer", "sweeper").WithField("package", "sweeper")

// Sweeper runs expiry sweep on every tick. A failed run is retried on the next tick.
type Sweeper struct {
	s                  service.Service
	interval           time.Duration
	deleteExpiredPosts bool

	mu       sync.RWMutex
	lastRun  time.Time
	released int
	lastErr  error
}

// New ...
func New(s service.Service, interval time.Duration, deleteExpiredPosts bool) *Sweeper {
	return &Sweeper{
		s:                  s,
		interval:           interval,
		deleteExpiredPosts: deleteExpiredPosts,
	}
}

// Name ...
func (s *Sweeper) Name() string {
	return "sweeper"
}

// Ping returns result of the last run.
func (s *Sweeper) Ping(_ context.Context) (interface{}, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	meta := map[string]interface{}{
		"released": s.released,
	}
	if !s.lastRun.IsZero() {
		meta["last_run"] = s.lastRun.UTC().Format(time.RFC3339)
	}

	if s.lastErr != nil {
		return meta, fmt.Errorf("last sweep failed: %w", s.lastErr)
	}

	return meta, nil
}

// Run sweeps immediately and then on every tick till the context is done.
func (s *Sweeper) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	log.WithField("interval", s.interval).Info("start sweeping expired claims")

	s.RunOnce(ctx)

	for {
		select {
		case <-ctx.Done():
			log.Info("stop sweeping expired claims")
			return nil
		case <-ticker.C:
			s.RunOnce(ctx)
		}
	}
}

// RunOnce performs one sweep.
func (s *Sweeper) RunOnce(ctx context.Context) {
	n, err := s.s.SweepExpiredClaims(ctx)

	s.mu.Lock()
	s.lastRun = time.Now()
	s.released = n
	s.lastErr = err
	s.mu.Unlock()

	if err != nil {
		log.WithError(err).Error("failed to sweep expired claims")
		return
	}

	if n > 0 {
		log.WithField("count", n).Info("expired claims released")
	} else {
		log.Debug("no expired claims")
	}

	if !s.deleteExpiredPosts {
		return
	}

	deleted, err := s.s.DeleteExpiredPosts(ctx)
	if err != nil {
		log.WithError(err).Error("failed to delete expired posts")
		return
	}

	if deleted > 0 {
		log.WithField("count", deleted).Info("expired posts deleted")
	}
}
