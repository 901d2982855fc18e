package impl

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/reswipe/reswipe/internal/entities"
	"github.com/reswipe/reswipe/internal/storage"
)

func (s *srv) SweepExpiredClaims(ctx context.Context) (int, error) {
	start := time.Now()

	var expired []*entities.ExpiredClaim

	if err := s.s.InTx(ctx, func(tx storage.Storage) error {
		var err error

		expired, err = tx.ExpireDueClaims(ctx, s.now())
		if err != nil {
			return fmt.Errorf("failed to expire claims: %w", err)
		}

		if len(expired) == 0 {
			return nil
		}

		if err := s.releasePosts(ctx, tx, expired); err != nil {
			return err
		}

		perClaimer := make(map[string]int32)
		for _, v := range expired {
			perClaimer[v.ClaimerID]++
		}

		for _, id := range claimers(perClaimer) {
			if err := tx.UpdateUserCounters(ctx, id, storage.UserCountersDelta{
				ActiveClaims:  -perClaimer[id],
				ExpiredClaims: perClaimer[id],
			}); err != nil {
				return fmt.Errorf("failed to update claimer %s: %w", id, err)
			}
		}

		return nil
	}); err != nil {
		s.m.RecordSweepFailure()
		return 0, fmt.Errorf("failed to sweep expired claims: %w", err)
	}

	s.m.RecordSweep(len(expired), time.Since(start))

	if len(expired) == 0 {
		return 0, nil
	}

	s.m.RecordClaimClosed(string(entities.ClaimStatusTimedOut), len(expired))

	n := make([]*entities.Notification, 0, len(expired)*2)
	for _, v := range expired {
		n = append(n,
			s.notification(v.ClaimerID, entities.ClaimExpiredNotification, v.ClaimID,
				"Your claim has expired because the food was not picked up in time."),
			s.notification(v.PosterID, entities.ClaimExpiredNotification, v.ClaimID,
				"A claim on your food has expired. It is available again."),
		)
	}
	s.notify(ctx, n...)

	return len(expired), nil
}

// claimers returns ids in stable order to keep row locks ordered across concurrent sweeps.
func claimers(m map[string]int32) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)

	return out
}

func (s *srv) DeleteExpiredPosts(ctx context.Context) (int64, error) {
	n, err := s.s.DeleteExpiredPosts(ctx, s.now())
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired posts: %w", err)
	}

	return n, nil
}
