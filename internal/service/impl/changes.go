package impl

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/reswipe/reswipe/internal/entities"
	"github.com/reswipe/reswipe/internal/storage"
	"github.com/reswipe/reswipe/internal/trust"
)

// HandleChange marks the event processed and applies its recompute in the same transaction,
// so a redelivered event is a no-op.
func (s *srv) HandleChange(ctx context.Context, e *entities.ChangeEvent) error {
	l := log.WithFields(logrus.Fields{
		"event":  e.ID,
		"kind":   e.Kind,
		"entity": e.EntityID,
	})

	var n []*entities.Notification

	if err := s.s.InTx(ctx, func(tx storage.Storage) error {
		n = nil

		if err := tx.MarkEventProcessed(ctx, e.ID, s.now()); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				l.Debug("event is already processed")
				return nil
			}
			return fmt.Errorf("failed to mark event processed: %w", err)
		}

		switch e.Kind {
		case entities.ClaimStatusChanged:
			return s.onClaimStatusChanged(ctx, tx, e)
		case entities.RatingCreated:
			var err error
			n, err = s.onRatingCreated(ctx, tx, e)
			return err
		default:
			l.Warn("unknown event kind, skipping")
			return nil
		}
	}); err != nil {
		return fmt.Errorf("failed to handle change event %d: %w", e.ID, err)
	}

	s.m.RecordEventProcessed(string(e.Kind))
	s.notify(ctx, n...)

	return nil
}

func (s *srv) onClaimStatusChanged(ctx context.Context, tx storage.Storage, e *entities.ChangeEvent) error {
	var after entities.ClaimSnapshot
	if err := json.Unmarshal(e.After, &after); err != nil {
		return fmt.Errorf("failed to unmarshal claim snapshot: %w", err)
	}

	u, err := tx.GetUserForUpdate(ctx, after.ClaimerID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.WithField("user", after.ClaimerID).Warn("claimer is missing, skipping recompute")
			return nil
		}
		return fmt.Errorf("failed to get claimer: %w", err)
	}

	st := trust.FromClaimHistory(u.CompletedClaims, u.ExpiredClaims)
	if err := tx.SetUserStanding(ctx, u.ID, st); err != nil {
		return fmt.Errorf("failed to set claimer standing: %w", err)
	}

	return nil
}

func (s *srv) onRatingCreated(ctx context.Context, tx storage.Storage, e *entities.ChangeEvent) ([]*entities.Notification, error) {
	var r entities.RatingSnapshot
	if err := json.Unmarshal(e.After, &r); err != nil {
		return nil, fmt.Errorf("failed to unmarshal rating snapshot: %w", err)
	}

	u, err := getOrCreateUser(ctx, tx, r.PosterID, s.now())
	if err != nil {
		return nil, err
	}

	st := trust.FromRating(u.TrustScore, u.TotalRatings, r.Stars)

	if err := tx.UpdateUserCounters(ctx, u.ID, storage.UserCountersDelta{TotalRatings: 1}); err != nil {
		return nil, fmt.Errorf("failed to update poster: %w", err)
	}

	if err := tx.SetUserStanding(ctx, u.ID, st); err != nil {
		return nil, fmt.Errorf("failed to set poster standing: %w", err)
	}

	n := []*entities.Notification{
		s.notification(u.ID, entities.RatingReceivedNotification, r.ClaimID,
			"You received a %d star rating.", r.Stars),
	}

	if st.Level != u.Level {
		n = append(n, s.notification(u.ID, entities.LevelUpNotification, r.ClaimID,
			"Your level is now %s. You can hold up to %d active claims.", st.Level, st.MaxClaimsAllowed))
	}

	return n, nil
}
