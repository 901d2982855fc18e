// Package impl is implementation of service interface.
package impl

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/reswipe/reswipe/internal/entities"
	"github.com/reswipe/reswipe/internal/metrics"
	"github.com/reswipe/reswipe/internal/service"
	"github.com/reswipe/reswipe/internal/storage"
	"github.com/reswipe/reswipe/internal/trust"
)

var log = logrus.WithField("layer", "service").WithField("package", "impl")

const (
	pickupCodeLength   = 6
	pickupCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// Config ...
type Config struct {
	// Cooldown is a minimal interval between two claims of the same user.
	Cooldown time.Duration
	// ClaimTimeout is a time given to the claimer to pick the food up.
	ClaimTimeout time.Duration
	// RestoreQuantity returns a unit taken by a cancelled or expired claim back to the post.
	RestoreQuantity bool
}

// DefaultConfig ...
func DefaultConfig() Config {
	return Config{
		Cooldown:     30 * time.Second,
		ClaimTimeout: 15 * time.Minute,
	}
}

// Option ...
type Option func(s *srv)

// WithClock replaces time source of the service.
func WithClock(now func() time.Time) Option {
	return func(s *srv) {
		s.now = now
	}
}

// WithMetrics ...
func WithMetrics(m metrics.Recorder) Option {
	return func(s *srv) {
		s.m = m
	}
}

type srv struct {
	s   storage.Storage
	cfg Config
	now func() time.Time
	m   metrics.Recorder
}

// New creates new instance of service.
func New(s storage.Storage, cfg Config, opts ...Option) service.Service {
	out := &srv{
		s:   s,
		cfg: cfg,
		now: time.Now,
		m:   metrics.Nop(),
	}

	for _, o := range opts {
		o(out)
	}

	return out
}

// notify writes notifications. It never fails the caller.
func (s *srv) notify(ctx context.Context, n ...*entities.Notification) {
	if len(n) == 0 {
		return
	}

	if err := s.s.CreateNotifications(ctx, n); err != nil {
		s.m.RecordNotificationFailure()
		log.WithError(err).WithField("count", len(n)).Error("failed to create notifications")
	}
}

func (s *srv) notification(userID string, t entities.NotificationType, claimID string, format string, args ...interface{}) *entities.Notification {
	return &entities.Notification{
		ID:        uuid.New().String(),
		UserID:    userID,
		Type:      t,
		Message:   fmt.Sprintf(format, args...),
		ClaimID:   claimID,
		CreatedAt: s.now(),
	}
}

// getOrCreateUser returns locked user record, creating it with default standing if it's missing.
func getOrCreateUser(ctx context.Context, tx storage.Storage, id string, now time.Time) (*entities.User, error) {
	u, err := tx.GetUserForUpdate(ctx, id)
	if err == nil {
		return u, nil
	}

	if !errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	u = newUser(id, now)
	switch err := tx.CreateUser(ctx, u); {
	case err == nil:
		return u, nil
	case errors.Is(err, storage.ErrAlreadyExists):
		// created concurrently
		u, err := tx.GetUserForUpdate(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("failed to get user: %w", err)
		}
		return u, nil
	default:
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
}

func newUser(id string, now time.Time) *entities.User {
	st := trust.DefaultStanding()

	return &entities.User{
		ID:               id,
		TrustScore:       st.TrustScore,
		Level:            st.Level,
		MaxClaimsAllowed: st.MaxClaimsAllowed,
		CreatedAt:        now,
	}
}

// wrap keeps business errors as is and adds context to internal ones.
func wrap(err error, msg string) error {
	var e *service.Error
	if errors.As(err, &e) {
		return err
	}

	return fmt.Errorf("%s: %w", msg, err)
}

func generatePickupCode() (string, error) {
	max := big.NewInt(int64(len(pickupCodeAlphabet)))
	b := make([]byte, pickupCodeLength)

	for i := range b {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("failed to read random: %w", err)
		}
		b[i] = pickupCodeAlphabet[n.Int64()]
	}

	return string(b), nil
}

func requireCaller(callerID string) error {
	if callerID == "" {
		return service.Errorf(service.ErrUnauthenticated, "authentication required")
	}

	return nil
}
