package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/reswipe/reswipe/internal/entities"
	"github.com/reswipe/reswipe/internal/storage"
)

const userColumns = `id, display_name, active_claims, total_claims, completed_claims, expired_claims,
	successful_posts, total_ratings, trust_score, level, max_claims_allowed, last_claim_at, banned, created_at`

type userDTO struct {
	ID               string     `db:"id"`
	DisplayName      string     `db:"display_name"`
	ActiveClaims     uint32     `db:"active_claims"`
	TotalClaims      uint32     `db:"total_claims"`
	CompletedClaims  uint32     `db:"completed_claims"`
	ExpiredClaims    uint32     `db:"expired_claims"`
	SuccessfulPosts  uint32     `db:"successful_posts"`
	TotalRatings     uint32     `db:"total_ratings"`
	TrustScore       float64    `db:"trust_score"`
	Level            string     `db:"level"`
	MaxClaimsAllowed uint32     `db:"max_claims_allowed"`
	LastClaimAt      *time.Time `db:"last_claim_at"`
	Banned           bool       `db:"banned"`
	CreatedAt        time.Time  `db:"created_at"`
}

func (u userDTO) toEntity() *entities.User {
	return &entities.User{
		ID:               u.ID,
		DisplayName:      u.DisplayName,
		ActiveClaims:     u.ActiveClaims,
		TotalClaims:      u.TotalClaims,
		CompletedClaims:  u.CompletedClaims,
		ExpiredClaims:    u.ExpiredClaims,
		SuccessfulPosts:  u.SuccessfulPosts,
		TotalRatings:     u.TotalRatings,
		TrustScore:       u.TrustScore,
		Level:            entities.Level(u.Level),
		MaxClaimsAllowed: u.MaxClaimsAllowed,
		LastClaimAt:      u.LastClaimAt,
		Banned:           u.Banned,
		CreatedAt:        u.CreatedAt,
	}
}

func (s pg) getUser(ctx context.Context, id string, suffix string) (*entities.User, error) {
	var u userDTO

	if err := sqlx.GetContext(ctx, s.ext, &u,
		fmt.Sprintf(`SELECT %s FROM profile WHERE id = $1 %s`, userColumns, suffix), id,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}

		return nil, fmt.Errorf("failed to query: %w", err)
	}

	return u.toEntity(), nil
}

func (s pg) GetUser(ctx context.Context, id string) (*entities.User, error) {
	return s.getUser(ctx, id, "")
}

func (s pg) GetUserForUpdate(ctx context.Context, id string) (*entities.User, error) {
	return s.getUser(ctx, id, "FOR UPDATE")
}

func (s pg) CreateUser(ctx context.Context, u *entities.User) error {
	user := userDTO{
		ID:               u.ID,
		DisplayName:      u.DisplayName,
		ActiveClaims:     u.ActiveClaims,
		TotalClaims:      u.TotalClaims,
		CompletedClaims:  u.CompletedClaims,
		ExpiredClaims:    u.ExpiredClaims,
		SuccessfulPosts:  u.SuccessfulPosts,
		TotalRatings:     u.TotalRatings,
		TrustScore:       u.TrustScore,
		Level:            string(u.Level),
		MaxClaimsAllowed: u.MaxClaimsAllowed,
		LastClaimAt:      utcPtr(u.LastClaimAt),
		Banned:           u.Banned,
		CreatedAt:        u.CreatedAt.UTC(),
	}

	res, err := sqlx.NamedExecContext(ctx, s.ext,
		`
			INSERT INTO profile(id, display_name, active_claims, total_claims, completed_claims, expired_claims,
				successful_posts, total_ratings, trust_score, level, max_claims_allowed, last_claim_at, banned, created_at)
			VALUES(:id, :display_name, :active_claims, :total_claims, :completed_claims, :expired_claims,
				:successful_posts, :total_ratings, :trust_score, :level, :max_claims_allowed, :last_claim_at, :banned, :created_at)
			ON CONFLICT(id) DO NOTHING
		`, user,
	)
	if err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	if c, _ := res.RowsAffected(); c == 0 {
		return storage.ErrAlreadyExists
	}

	return nil
}

func (s pg) SetDisplayName(ctx context.Context, id, displayName string) error {
	res, err := s.ext.ExecContext(ctx, `UPDATE profile SET display_name=$2 WHERE id=$1`, id, displayName)
	if err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	return checkAffected(res)
}

func (s pg) UpdateUserCounters(ctx context.Context, id string, d storage.UserCountersDelta) error {
	res, err := s.ext.ExecContext(ctx, `
			UPDATE profile SET
				active_claims = GREATEST(active_claims + $2, 0),
				total_claims = total_claims + $3,
				completed_claims = completed_claims + $4,
				expired_claims = expired_claims + $5,
				successful_posts = successful_posts + $6,
				total_ratings = total_ratings + $7,
				last_claim_at = COALESCE($8, last_claim_at)
			WHERE id = $1
		`,
		id, d.ActiveClaims, d.TotalClaims, d.CompletedClaims, d.ExpiredClaims, d.SuccessfulPosts, d.TotalRatings,
		utcPtr(d.LastClaimAt),
	)
	if err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	return checkAffected(res)
}

func (s pg) SetUserStanding(ctx context.Context, id string, st entities.Standing) error {
	res, err := s.ext.ExecContext(ctx,
		`UPDATE profile SET trust_score=$2, level=$3, max_claims_allowed=$4 WHERE id=$1`,
		id, st.TrustScore, string(st.Level), st.MaxClaimsAllowed,
	)
	if err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	return checkAffected(res)
}

func (s pg) ListLeaders(ctx context.Context, limit uint16) ([]*entities.User, error) {
	var u []*userDTO

	if err := sqlx.SelectContext(ctx, s.ext, &u, fmt.Sprintf(`
			SELECT %s FROM profile
			WHERE banned = FALSE AND completed_claims > 0
			ORDER BY completed_claims DESC, trust_score DESC, id
			LIMIT $1
		`, userColumns), limit,
	); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	out := make([]*entities.User, len(u))
	for i, v := range u {
		out[i] = v.toEntity()
	}

	return out, nil
}
