// Package changefeed contains consumer of change events written by the store's triggers.
package changefeed

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/reswipe/reswipe/internal/consumer"
	"github.com/reswipe/reswipe/internal/entities"
)

var log = logrus.WithField("layer", "consumer").WithField("package", "changefeed")

// EventSource ...
type EventSource interface {
	ListPendingEvents(ctx context.Context, limit uint16) ([]*entities.ChangeEvent, error)
	CountPendingEvents(ctx context.Context) (uint64, error)
}

// Handler applies the event. It must mark the event processed in the same transaction.
type Handler interface {
	HandleChange(ctx context.Context, e *entities.ChangeEvent) error
}

// Config ...
type Config struct {
	// BatchSize is a count of events read at once.
	BatchSize uint16
	// PollInterval is a max time between two reads when there are no wake-ups.
	PollInterval time.Duration
	// RetryInterval is a delay before retrying a failed event.
	RetryInterval time.Duration
}

// DefaultConfig ...
func DefaultConfig() Config {
	return Config{
		BatchSize:     100,
		PollInterval:  time.Minute,
		RetryInterval: 10 * time.Second,
	}
}

type feed struct {
	src  EventSource
	h    Handler
	wake <-chan struct{}
	cfg  Config
}

// New returns consumer reading events in order they were written.
// wake may be nil, then the feed is polled only.
func New(src EventSource, h Handler, wake <-chan struct{}, cfg Config) consumer.Consumer {
	d := DefaultConfig()
	if cfg.BatchSize == 0 {
		cfg.BatchSize = d.BatchSize
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = d.PollInterval
	}
	if cfg.RetryInterval <= 0 {
		cfg.RetryInterval = d.RetryInterval
	}

	return feed{
		src:  src,
		h:    h,
		wake: wake,
		cfg:  cfg,
	}
}

func (f feed) Name() string {
	return "changefeed"
}

// Ping reports count of unprocessed events.
func (f feed) Ping(ctx context.Context) (interface{}, error) {
	n, err := f.src.CountPendingEvents(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count pending events: %w", err)
	}

	return map[string]uint64{"pending": n}, nil
}

func (f feed) Run(ctx context.Context) error {
	log.Info("start consuming change feed")

	for {
		wait := f.cfg.PollInterval

		if err := f.drain(ctx); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			log.WithError(err).Error("failed to process change feed")
			wait = f.cfg.RetryInterval
		}

		select {
		case <-ctx.Done():
			log.Info("stop consuming change feed")
			return nil
		case <-f.wake:
		case <-time.After(wait):
		}
	}
}

// drain processes pending events till the feed is empty. It stops on the first failure
// so the failed event is retried before any later one.
func (f feed) drain(ctx context.Context) error {
	for {
		events, err := f.src.ListPendingEvents(ctx, f.cfg.BatchSize)
		if err != nil {
			return fmt.Errorf("failed to list events: %w", err)
		}

		for _, e := range events {
			if err := f.h.HandleChange(ctx, e); err != nil {
				return err
			}

			log.WithFields(logrus.Fields{
				"event": e.ID,
				"kind":  e.Kind,
			}).Debug("event processed")
		}

		if len(events) < int(f.cfg.BatchSize) {
			return nil
		}
	}
}
