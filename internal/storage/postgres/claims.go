package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/reswipe/reswipe/internal/entities"
	"github.com/reswipe/reswipe/internal/storage"
)

const claimColumns = `id, claimer_id, poster_id, post_id, status, pickup_code, partial, locked_at, expires_at,
	completed_at, cancelled_at, expired_at`

type claimDTO struct {
	ID          string     `db:"id"`
	ClaimerID   string     `db:"claimer_id"`
	PosterID    string     `db:"poster_id"`
	PostID      string     `db:"post_id"`
	Status      string     `db:"status"`
	PickupCode  string     `db:"pickup_code"`
	Partial     bool       `db:"partial"`
	LockedAt    time.Time  `db:"locked_at"`
	ExpiresAt   time.Time  `db:"expires_at"`
	CompletedAt *time.Time `db:"completed_at"`
	CancelledAt *time.Time `db:"cancelled_at"`
	ExpiredAt   *time.Time `db:"expired_at"`
}

type expiredClaimDTO struct {
	ID        string `db:"id"`
	ClaimerID string `db:"claimer_id"`
	PosterID  string `db:"poster_id"`
	PostID    string `db:"post_id"`
	Partial   bool   `db:"partial"`
}

func (s pg) CreateClaim(ctx context.Context, c *entities.Claim) error {
	claim := claimDTO{
		ID:          c.ID,
		ClaimerID:   c.ClaimerID,
		PosterID:    c.PosterID,
		PostID:      c.PostID,
		Status:      string(c.Status),
		PickupCode:  c.PickupCode,
		Partial:     c.Partial,
		LockedAt:    c.LockedAt.UTC(),
		ExpiresAt:   c.ExpiresAt.UTC(),
		CompletedAt: utcPtr(c.CompletedAt),
		CancelledAt: utcPtr(c.CancelledAt),
		ExpiredAt:   utcPtr(c.ExpiredAt),
	}

	if _, err := sqlx.NamedExecContext(ctx, s.ext,
		`
			INSERT INTO claim(id, claimer_id, poster_id, post_id, status, pickup_code, partial, locked_at, expires_at,
				completed_at, cancelled_at, expired_at)
			VALUES(:id, :claimer_id, :poster_id, :post_id, :status, :pickup_code, :partial, :locked_at, :expires_at,
				:completed_at, :cancelled_at, :expired_at)
		`, claim,
	); err != nil {
		if isPQError(err, uniqueViolation) {
			return storage.ErrAlreadyExists
		}

		return fmt.Errorf("failed to exec: %w", err)
	}

	return nil
}

func (s pg) getClaim(ctx context.Context, id string, suffix string) (*entities.Claim, error) {
	var c claimDTO

	if err := sqlx.GetContext(ctx, s.ext, &c,
		fmt.Sprintf(`SELECT %s FROM claim WHERE id = $1 %s`, claimColumns, suffix), id,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}

		return nil, fmt.Errorf("failed to query: %w", err)
	}

	return &entities.Claim{
		ID:          c.ID,
		ClaimerID:   c.ClaimerID,
		PosterID:    c.PosterID,
		PostID:      c.PostID,
		Status:      entities.ClaimStatus(c.Status),
		PickupCode:  c.PickupCode,
		Partial:     c.Partial,
		LockedAt:    c.LockedAt,
		ExpiresAt:   c.ExpiresAt,
		CompletedAt: c.CompletedAt,
		CancelledAt: c.CancelledAt,
		ExpiredAt:   c.ExpiredAt,
	}, nil
}

func (s pg) GetClaim(ctx context.Context, id string) (*entities.Claim, error) {
	return s.getClaim(ctx, id, "")
}

func (s pg) GetClaimForUpdate(ctx context.Context, id string) (*entities.Claim, error) {
	return s.getClaim(ctx, id, "FOR UPDATE")
}

func (s pg) SetClaimStatus(ctx context.Context, id string, status entities.ClaimStatus, timestamp time.Time) error {
	var column string

	switch status {
	case entities.ClaimStatusCompleted:
		column = "completed_at"
	case entities.ClaimStatusCancelled:
		column = "cancelled_at"
	case entities.ClaimStatusTimedOut:
		column = "expired_at"
	default:
		return fmt.Errorf("status %s is not terminal", status)
	}

	res, err := s.ext.ExecContext(ctx,
		fmt.Sprintf(`UPDATE claim SET status=$2, %s=$3 WHERE id=$1`, column),
		id, string(status), timestamp.UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	return checkAffected(res)
}

func (s pg) ExpireDueClaims(ctx context.Context, now time.Time) ([]*entities.ExpiredClaim, error) {
	var c []*expiredClaimDTO

	if err := sqlx.SelectContext(ctx, s.ext, &c, `
			UPDATE claim SET status='timed_out', expired_at=$1
			WHERE status = 'pending' AND expires_at < $1
			RETURNING id, claimer_id, poster_id, post_id, partial
		`, now.UTC(),
	); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	out := make([]*entities.ExpiredClaim, len(c))
	for i, v := range c {
		out[i] = &entities.ExpiredClaim{
			ClaimID:   v.ID,
			ClaimerID: v.ClaimerID,
			PosterID:  v.PosterID,
			PostID:    v.PostID,
			Partial:   v.Partial,
		}
	}

	return out, nil
}

func (s pg) DeleteClaim(ctx context.Context, id string) error {
	res, err := s.ext.ExecContext(ctx, `DELETE FROM claim WHERE id=$1`, id)
	if err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	return checkAffected(res)
}

func (s pg) CreateConversation(ctx context.Context, c *entities.Conversation) error {
	if _, err := s.ext.ExecContext(ctx, `
			INSERT INTO conversation(id, claim_id, post_id, participants, created_at)
			VALUES($1, $2, $3, $4, $5)
		`, c.ID, c.ClaimID, c.PostID, pq.Array(c.Participants), c.CreatedAt.UTC(),
	); err != nil {
		if isPQError(err, uniqueViolation) {
			return storage.ErrAlreadyExists
		}

		return fmt.Errorf("failed to exec: %w", err)
	}

	return nil
}

func (s pg) DeleteConversationByClaim(ctx context.Context, claimID string) error {
	if _, err := s.ext.ExecContext(ctx, `DELETE FROM conversation WHERE claim_id=$1`, claimID); err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	return nil
}

func (s pg) CreateRating(ctx context.Context, r *entities.Rating) error {
	if _, err := s.ext.ExecContext(ctx, `
			INSERT INTO rating(id, claim_id, post_id, poster_id, claimer_id, stars, comment, created_at)
			VALUES($1, $2, $3, $4, $5, $6, $7, $8)
		`, r.ID, r.ClaimID, r.PostID, r.PosterID, r.ClaimerID, r.Stars, r.Comment, r.CreatedAt.UTC(),
	); err != nil {
		if isPQError(err, uniqueViolation) {
			return storage.ErrAlreadyExists
		}

		return fmt.Errorf("failed to exec: %w", err)
	}

	return nil
}
