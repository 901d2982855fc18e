package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/reswipe/reswipe/internal/entities"
)

type notificationDTO struct {
	ID        string    `db:"id"`
	UserID    string    `db:"user_id"`
	Type      string    `db:"type"`
	Message   string    `db:"message"`
	ClaimID   string    `db:"claim_id"`
	CreatedAt time.Time `db:"created_at"`
}

type changeEventDTO struct {
	ID        uint64    `db:"id"`
	Kind      string    `db:"kind"`
	EntityID  string    `db:"entity_id"`
	Before    []byte    `db:"before"`
	After     []byte    `db:"after"`
	CreatedAt time.Time `db:"created_at"`
}

func (s pg) CreateNotifications(ctx context.Context, n []*entities.Notification) error {
	if len(n) == 0 {
		return nil
	}

	for _, v := range n {
		if _, err := sqlx.NamedExecContext(ctx, s.ext,
			`
				INSERT INTO notification(id, user_id, type, message, claim_id, created_at)
				VALUES(:id, :user_id, :type, :message, :claim_id, :created_at)
			`, notificationDTO{
				ID:        v.ID,
				UserID:    v.UserID,
				Type:      string(v.Type),
				Message:   v.Message,
				ClaimID:   v.ClaimID,
				CreatedAt: v.CreatedAt.UTC(),
			},
		); err != nil {
			return fmt.Errorf("failed to exec: %w", err)
		}
	}

	return nil
}

func (s pg) ListNotifications(ctx context.Context, userID string, limit uint16) ([]*entities.Notification, error) {
	var n []*notificationDTO

	if err := sqlx.SelectContext(ctx, s.ext, &n, `
			SELECT id, user_id, type, message, claim_id, created_at FROM notification
			WHERE user_id = $1
			ORDER BY created_at DESC, id
			LIMIT $2
		`, userID, limit,
	); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	out := make([]*entities.Notification, len(n))
	for i, v := range n {
		out[i] = &entities.Notification{
			ID:        v.ID,
			UserID:    v.UserID,
			Type:      entities.NotificationType(v.Type),
			Message:   v.Message,
			ClaimID:   v.ClaimID,
			CreatedAt: v.CreatedAt,
		}
	}

	return out, nil
}

func (s pg) ListPendingEvents(ctx context.Context, limit uint16) ([]*entities.ChangeEvent, error) {
	var e []*changeEventDTO

	if err := sqlx.SelectContext(ctx, s.ext, &e, `
			SELECT id, kind, entity_id, before, after, created_at FROM change_event
			WHERE processed_at IS NULL
			ORDER BY id
			LIMIT $1
		`, limit,
	); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	out := make([]*entities.ChangeEvent, len(e))
	for i, v := range e {
		out[i] = &entities.ChangeEvent{
			ID:        v.ID,
			Kind:      entities.ChangeEventKind(v.Kind),
			EntityID:  v.EntityID,
			Before:    v.Before,
			After:     v.After,
			CreatedAt: v.CreatedAt,
		}
	}

	return out, nil
}

func (s pg) MarkEventProcessed(ctx context.Context, id uint64, timestamp time.Time) error {
	res, err := s.ext.ExecContext(ctx,
		`UPDATE change_event SET processed_at=$2 WHERE id=$1 AND processed_at IS NULL`,
		int64(id), timestamp.UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	return checkAffected(res)
}

func (s pg) CountPendingEvents(ctx context.Context) (uint64, error) {
	var c uint64
	if err := sqlx.GetContext(ctx, s.ext, &c, `SELECT COUNT(*) FROM change_event WHERE processed_at IS NULL`); err != nil {
		return 0, fmt.Errorf("failed to query: %w", err)
	}

	return c, nil
}
