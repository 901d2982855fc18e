package impl

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/reswipe/reswipe/internal/entities"
	"github.com/reswipe/reswipe/internal/service"
	"github.com/reswipe/reswipe/internal/storage"
)

const maxTitleLength = 100

func (s *srv) CreatePost(ctx context.Context, p *service.CreatePostParams) (*entities.Post, error) {
	if err := requireCaller(p.PosterID); err != nil {
		return nil, err
	}

	title := strings.TrimSpace(p.Title)
	switch {
	case title == "":
		return nil, service.Errorf(service.ErrInvalidArgument, "title is required")
	case len(title) > maxTitleLength:
		return nil, service.Errorf(service.ErrInvalidArgument, "title should be at most %d characters", maxTitleLength)
	case p.Quantity != nil && *p.Quantity < 1:
		return nil, service.Errorf(service.ErrInvalidArgument, "quantity should be positive")
	case p.Location.Latitude < -90 || p.Location.Latitude > 90 ||
		p.Location.Longitude < -180 || p.Location.Longitude > 180:
		return nil, service.Errorf(service.ErrInvalidArgument, "invalid location")
	}

	var post *entities.Post

	if err := s.s.InTx(ctx, func(tx storage.Storage) error {
		now := s.now()

		if !p.ExpiresAt.After(now) {
			return service.Errorf(service.ErrInvalidArgument, "expiration time should be in the future")
		}

		u, err := getOrCreateUser(ctx, tx, p.PosterID, now)
		if err != nil {
			return err
		}

		if u.Banned {
			return service.Errorf(service.ErrPermissionDenied, "your account is not allowed to post food")
		}

		post = &entities.Post{
			ID:          uuid.New().String(),
			PosterID:    p.PosterID,
			Title:       title,
			Description: p.Description,
			ImageURL:    p.ImageURL,
			Status:      entities.PostStatusAvailable,
			Quantity:    p.Quantity,
			Location:    p.Location,
			ExpiresAt:   p.ExpiresAt,
			CreatedAt:   now,
		}

		if err := tx.CreatePost(ctx, post); err != nil {
			return fmt.Errorf("failed to create post: %w", err)
		}

		return nil
	}); err != nil {
		return nil, wrap(err, "failed to create post")
	}

	return post, nil
}

func (s *srv) GetPost(ctx context.Context, id string) (*entities.Post, error) {
	p, err := s.s.GetPost(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, service.Errorf(service.ErrNotFound, "post not found")
		}
		return nil, fmt.Errorf("failed to get post: %w", err)
	}

	return p, nil
}

func (s *srv) ListAvailablePosts(ctx context.Context, callerID string, limit uint16, after *time.Time) ([]*entities.Post, error) {
	params := storage.ListPostsParams{
		Now:   s.now(),
		Limit: limit,
		After: after,
	}

	if callerID != "" {
		params.ExcludePoster = &callerID
	}

	p, err := s.s.ListAvailablePosts(ctx, &params)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}

	return p, nil
}
