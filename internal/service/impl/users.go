package impl

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/reswipe/reswipe/internal/entities"
	"github.com/reswipe/reswipe/internal/service"
	"github.com/reswipe/reswipe/internal/storage"
)

const maxDisplayNameLength = 64

func (s *srv) SetupProfile(ctx context.Context, userID, displayName string) (*entities.User, error) {
	if err := requireCaller(userID); err != nil {
		return nil, err
	}

	displayName = strings.TrimSpace(displayName)
	if displayName == "" || len(displayName) > maxDisplayNameLength {
		return nil, service.Errorf(service.ErrInvalidArgument,
			"display name should be between 1 and %d characters", maxDisplayNameLength)
	}

	var u *entities.User

	if err := s.s.InTx(ctx, func(tx storage.Storage) error {
		var err error
		if u, err = getOrCreateUser(ctx, tx, userID, s.now()); err != nil {
			return err
		}

		if err := tx.SetDisplayName(ctx, userID, displayName); err != nil {
			return fmt.Errorf("failed to set display name: %w", err)
		}
		u.DisplayName = displayName

		return nil
	}); err != nil {
		return nil, wrap(err, "failed to setup profile")
	}

	return u, nil
}

func (s *srv) GetUser(ctx context.Context, id string) (*entities.User, error) {
	u, err := s.s.GetUser(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, service.Errorf(service.ErrNotFound, "user not found")
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return u, nil
}

func (s *srv) ListLeaders(ctx context.Context, limit uint16) ([]*entities.User, error) {
	u, err := s.s.ListLeaders(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list leaders: %w", err)
	}

	return u, nil
}

func (s *srv) ListNotifications(ctx context.Context, userID string, limit uint16) ([]*entities.Notification, error) {
	if err := requireCaller(userID); err != nil {
		return nil, err
	}

	n, err := s.s.ListNotifications(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}

	return n, nil
}
