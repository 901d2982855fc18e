// Package consumer contains interface of change feed consumer.
package consumer

import (
	"context"

	"github.com/reswipe/reswipe/internal/health"
)

// Consumer consumes the store's change feed.
type Consumer interface {
	health.Pinger

	// Run blocks till the context is done.
	Run(ctx context.Context) error
}
