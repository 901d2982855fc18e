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

const postColumns = `id, poster_id, title, description, image_url, status, quantity, latitude, longitude, address,
	expires_at, lock_claimed_by, lock_claim_id, lock_locked_at, lock_expires_at, created_at`

type postDTO struct {
	ID            string     `db:"id"`
	PosterID      string     `db:"poster_id"`
	Title         string     `db:"title"`
	Description   string     `db:"description"`
	ImageURL      string     `db:"image_url"`
	Status        string     `db:"status"`
	Quantity      *int32     `db:"quantity"`
	Latitude      float64    `db:"latitude"`
	Longitude     float64    `db:"longitude"`
	Address       string     `db:"address"`
	ExpiresAt     time.Time  `db:"expires_at"`
	LockClaimedBy *string    `db:"lock_claimed_by"`
	LockClaimID   *string    `db:"lock_claim_id"`
	LockLockedAt  *time.Time `db:"lock_locked_at"`
	LockExpiresAt *time.Time `db:"lock_expires_at"`
	CreatedAt     time.Time  `db:"created_at"`
}

func newPostDTO(p *entities.Post) postDTO {
	dto := postDTO{
		ID:          p.ID,
		PosterID:    p.PosterID,
		Title:       p.Title,
		Description: p.Description,
		ImageURL:    p.ImageURL,
		Status:      string(p.Status),
		Quantity:    p.Quantity,
		Latitude:    p.Location.Latitude,
		Longitude:   p.Location.Longitude,
		Address:     p.Location.Address,
		ExpiresAt:   p.ExpiresAt.UTC(),
		CreatedAt:   p.CreatedAt.UTC(),
	}

	if p.Lock != nil {
		lockedAt, expiresAt := p.Lock.LockedAt.UTC(), p.Lock.ExpiresAt.UTC()
		dto.LockClaimedBy = &p.Lock.ClaimedBy
		dto.LockClaimID = &p.Lock.ClaimID
		dto.LockLockedAt = &lockedAt
		dto.LockExpiresAt = &expiresAt
	}

	return dto
}

func (p postDTO) toEntity() *entities.Post {
	out := &entities.Post{
		ID:          p.ID,
		PosterID:    p.PosterID,
		Title:       p.Title,
		Description: p.Description,
		ImageURL:    p.ImageURL,
		Status:      entities.PostStatus(p.Status),
		Quantity:    p.Quantity,
		Location: entities.Location{
			Latitude:  p.Latitude,
			Longitude: p.Longitude,
			Address:   p.Address,
		},
		ExpiresAt: p.ExpiresAt,
		CreatedAt: p.CreatedAt,
	}

	if p.LockClaimID != nil {
		out.Lock = &entities.LockInfo{ClaimID: *p.LockClaimID}
		if p.LockClaimedBy != nil {
			out.Lock.ClaimedBy = *p.LockClaimedBy
		}
		if p.LockLockedAt != nil {
			out.Lock.LockedAt = *p.LockLockedAt
		}
		if p.LockExpiresAt != nil {
			out.Lock.ExpiresAt = *p.LockExpiresAt
		}
	}

	return out
}

func (s pg) CreatePost(ctx context.Context, p *entities.Post) error {
	if _, err := sqlx.NamedExecContext(ctx, s.ext,
		`
			INSERT INTO post(id, poster_id, title, description, image_url, status, quantity, latitude, longitude, address,
				expires_at, lock_claimed_by, lock_claim_id, lock_locked_at, lock_expires_at, created_at)
			VALUES(:id, :poster_id, :title, :description, :image_url, :status, :quantity, :latitude, :longitude, :address,
				:expires_at, :lock_claimed_by, :lock_claim_id, :lock_locked_at, :lock_expires_at, :created_at)
		`, newPostDTO(p),
	); err != nil {
		if isPQError(err, foreignKeyViolation) {
			return storage.ErrNotFound
		}
		if isPQError(err, uniqueViolation) {
			return storage.ErrAlreadyExists
		}

		return fmt.Errorf("failed to exec: %w", err)
	}

	return nil
}

func (s pg) getPost(ctx context.Context, id string, suffix string) (*entities.Post, error) {
	var p postDTO

	if err := sqlx.GetContext(ctx, s.ext, &p,
		fmt.Sprintf(`SELECT %s FROM post WHERE id = $1 %s`, postColumns, suffix), id,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}

		return nil, fmt.Errorf("failed to query: %w", err)
	}

	return p.toEntity(), nil
}

func (s pg) GetPost(ctx context.Context, id string) (*entities.Post, error) {
	return s.getPost(ctx, id, "")
}

func (s pg) GetPostForUpdate(ctx context.Context, id string) (*entities.Post, error) {
	return s.getPost(ctx, id, "FOR UPDATE")
}

func (s pg) UpdatePost(ctx context.Context, p *entities.Post) error {
	res, err := sqlx.NamedExecContext(ctx, s.ext,
		`
			UPDATE post SET
				status=:status, quantity=:quantity,
				lock_claimed_by=:lock_claimed_by, lock_claim_id=:lock_claim_id,
				lock_locked_at=:lock_locked_at, lock_expires_at=:lock_expires_at
			WHERE id=:id
		`, newPostDTO(p),
	)
	if err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	return checkAffected(res)
}

func (s pg) ReleasePosts(ctx context.Context, claimIDs []string) error {
	if len(claimIDs) == 0 {
		return nil
	}

	if _, err := s.ext.ExecContext(ctx, `
			UPDATE post SET
				status='available',
				lock_claimed_by=NULL, lock_claim_id=NULL, lock_locked_at=NULL, lock_expires_at=NULL
			WHERE lock_claim_id = ANY($1) AND status <> 'completed'
		`, pq.Array(claimIDs),
	); err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	return nil
}

func (s pg) RestorePostUnits(ctx context.Context, units map[string]int32) error {
	// stable order keeps row locks acquired in the same sequence by concurrent transactions
	for _, id := range sortedKeys(units) {
		if _, err := s.ext.ExecContext(ctx,
			`UPDATE post SET quantity = quantity + $2 WHERE id = $1 AND quantity IS NOT NULL`,
			id, units[id],
		); err != nil {
			return fmt.Errorf("failed to exec: %w", err)
		}
	}

	return nil
}

func (s pg) ListAvailablePosts(ctx context.Context, p *storage.ListPostsParams) ([]*entities.Post, error) {
	var posts []*postDTO

	if err := sqlx.SelectContext(ctx, s.ext, &posts, fmt.Sprintf(`
			SELECT %s FROM post
			WHERE status = 'available' AND expires_at > $1
				AND (quantity IS NULL OR quantity > 0)
				AND ($2::TEXT IS NULL OR poster_id <> $2)
				AND ($3::TIMESTAMP WITH TIME ZONE IS NULL OR created_at < $3)
			ORDER BY created_at DESC, id
			LIMIT $4
		`, postColumns),
		p.Now.UTC(), p.ExcludePoster, utcPtr(p.After), p.Limit,
	); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	out := make([]*entities.Post, len(posts))
	for i, v := range posts {
		out[i] = v.toEntity()
	}

	return out, nil
}

func (s pg) DeletePost(ctx context.Context, id string) error {
	res, err := s.ext.ExecContext(ctx, `DELETE FROM post WHERE id=$1`, id)
	if err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	return checkAffected(res)
}

func (s pg) DeleteExpiredPosts(ctx context.Context, before time.Time) (int64, error) {
	res, err := s.ext.ExecContext(ctx,
		`DELETE FROM post WHERE status = 'available' AND lock_claim_id IS NULL AND expires_at < $1`,
		before.UTC(),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to exec: %w", err)
	}

	c, _ := res.RowsAffected()

	return c, nil
}
