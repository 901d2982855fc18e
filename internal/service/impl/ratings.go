package impl

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/reswipe/reswipe/internal/entities"
	"github.com/reswipe/reswipe/internal/service"
	"github.com/reswipe/reswipe/internal/storage"
)

const maxCommentLength = 500

// RateClaim stores the rating and removes the settled post, claim and conversation.
// Poster's standing is recomputed later from the rating change event.
func (s *srv) RateClaim(ctx context.Context, callerID, claimID string, stars uint8, comment string) error {
	if err := requireCaller(callerID); err != nil {
		return err
	}

	if claimID == "" {
		return service.Errorf(service.ErrInvalidArgument, "claim id is required")
	}

	if stars < 1 || stars > 5 {
		return service.Errorf(service.ErrInvalidArgument, "stars should be between 1 and 5")
	}

	if utf8.RuneCountInString(comment) > maxCommentLength {
		return service.Errorf(service.ErrInvalidArgument, "comment should be at most %d characters", maxCommentLength)
	}

	if err := s.s.InTx(ctx, func(tx storage.Storage) error {
		c, err := tx.GetClaimForUpdate(ctx, claimID)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return service.Errorf(service.ErrNotFound, "claim not found")
			}
			return fmt.Errorf("failed to get claim: %w", err)
		}

		if c.ClaimerID != callerID {
			return service.Errorf(service.ErrPermissionDenied, "only the claimer can rate the pickup")
		}

		if c.Status != entities.ClaimStatusCompleted {
			return service.Errorf(service.ErrFailedPrecondition, "only completed claims can be rated")
		}

		if err := tx.CreateRating(ctx, &entities.Rating{
			ID:        uuid.New().String(),
			ClaimID:   c.ID,
			PostID:    c.PostID,
			PosterID:  c.PosterID,
			ClaimerID: c.ClaimerID,
			Stars:     stars,
			Comment:   comment,
			CreatedAt: s.now(),
		}); err != nil {
			if errors.Is(err, storage.ErrAlreadyExists) {
				return service.Errorf(service.ErrFailedPrecondition, "claim is already rated")
			}
			return fmt.Errorf("failed to create rating: %w", err)
		}

		if err := tx.DeleteConversationByClaim(ctx, c.ID); err != nil && !errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("failed to delete conversation: %w", err)
		}

		if err := tx.DeleteClaim(ctx, c.ID); err != nil {
			return fmt.Errorf("failed to delete claim: %w", err)
		}

		p, err := tx.GetPostForUpdate(ctx, c.PostID)
		switch {
		case errors.Is(err, storage.ErrNotFound):
			return nil
		case err != nil:
			return fmt.Errorf("failed to get post: %w", err)
		case p.Status != entities.PostStatusCompleted:
			// still serves other claims
			return nil
		}

		if err := tx.DeletePost(ctx, p.ID); err != nil {
			return fmt.Errorf("failed to delete post: %w", err)
		}

		return nil
	}); err != nil {
		return wrap(err, "failed to rate claim")
	}

	return nil
}
