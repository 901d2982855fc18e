package impl

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/reswipe/reswipe/internal/entities"
	"github.com/reswipe/reswipe/internal/service"
	"github.com/reswipe/reswipe/internal/storage"
)

func (s *srv) CreateClaim(ctx context.Context, claimerID, postID string) (*entities.ClaimReceipt, error) {
	receipt, posterID, err := s.createClaim(ctx, claimerID, postID)
	if err != nil {
		s.m.RecordClaimRejected(service.KindName(err))
		return nil, err
	}

	s.m.RecordClaimCreated()
	s.notify(ctx, s.notification(posterID, entities.ClaimCreatedNotification, receipt.ClaimID,
		"Your food has been claimed! Pickup is expected before %s", receipt.ExpiresAt.UTC().Format(time.Kitchen)))

	log.WithFields(logrus.Fields{
		"claim":   receipt.ClaimID,
		"claimer": claimerID,
		"post":    postID,
	}).Info("claim created")

	return receipt, nil
}

func (s *srv) createClaim(ctx context.Context, claimerID, postID string) (*entities.ClaimReceipt, string, error) {
	if err := requireCaller(claimerID); err != nil {
		return nil, "", err
	}

	if postID == "" {
		return nil, "", service.Errorf(service.ErrInvalidArgument, "post id is required")
	}

	code, err := generatePickupCode()
	if err != nil {
		return nil, "", err
	}

	var (
		receipt  *entities.ClaimReceipt
		posterID string
	)

	if err := s.s.InTx(ctx, func(tx storage.Storage) error {
		now := s.now()

		user, err := getOrCreateUser(ctx, tx, claimerID, now)
		if err != nil {
			return err
		}

		if err := s.checkEligibility(user, now); err != nil {
			return err
		}

		post, err := tx.GetPostForUpdate(ctx, postID)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return service.Errorf(service.ErrNotFound, "post not found")
			}
			return fmt.Errorf("failed to get post: %w", err)
		}

		if err := checkClaimable(post, now); err != nil {
			return err
		}

		claim := &entities.Claim{
			ID:         uuid.New().String(),
			ClaimerID:  claimerID,
			PosterID:   post.PosterID,
			PostID:     post.ID,
			Status:     entities.ClaimStatusPending,
			PickupCode: code,
			LockedAt:   now,
			ExpiresAt:  now.Add(s.cfg.ClaimTimeout),
		}

		if post.Quantity != nil && *post.Quantity > 1 {
			q := *post.Quantity - 1
			post.Quantity = &q
			claim.Partial = true
		} else {
			post.Status = entities.PostStatusLocked
		}

		post.Lock = &entities.LockInfo{
			ClaimedBy: claimerID,
			ClaimID:   claim.ID,
			LockedAt:  now,
			ExpiresAt: claim.ExpiresAt,
		}

		if err := tx.UpdatePost(ctx, post); err != nil {
			return fmt.Errorf("failed to lock post: %w", err)
		}

		if err := tx.CreateClaim(ctx, claim); err != nil {
			return fmt.Errorf("failed to create claim: %w", err)
		}

		if err := tx.UpdateUserCounters(ctx, claimerID, storage.UserCountersDelta{
			ActiveClaims: 1,
			TotalClaims:  1,
			LastClaimAt:  &now,
		}); err != nil {
			return fmt.Errorf("failed to update claimer: %w", err)
		}

		conversation := &entities.Conversation{
			ID:           uuid.New().String(),
			ClaimID:      claim.ID,
			PostID:       post.ID,
			Participants: []string{claimerID, post.PosterID},
			CreatedAt:    now,
		}

		if err := tx.CreateConversation(ctx, conversation); err != nil {
			return fmt.Errorf("failed to create conversation: %w", err)
		}

		receipt = &entities.ClaimReceipt{
			ClaimID:        claim.ID,
			ConversationID: conversation.ID,
			PickupCode:     claim.PickupCode,
			ExpiresAt:      claim.ExpiresAt,
			PostLocation:   post.Location,
		}
		posterID = post.PosterID

		return nil
	}); err != nil {
		return nil, "", wrap(err, "failed to create claim")
	}

	return receipt, posterID, nil
}

func (s *srv) checkEligibility(u *entities.User, now time.Time) error {
	if u.Banned {
		return service.Errorf(service.ErrPermissionDenied, "your account is not allowed to claim food")
	}

	if u.LastClaimAt != nil {
		if elapsed := now.Sub(*u.LastClaimAt); elapsed < s.cfg.Cooldown {
			remaining := int(math.Ceil((s.cfg.Cooldown - elapsed).Seconds()))
			return service.Errorf(service.ErrPermissionDenied,
				"please wait %d seconds before claiming again", remaining)
		}
	}

	if u.ActiveClaims >= u.MaxClaimsAllowed {
		return service.Errorf(service.ErrPermissionDenied,
			"as a %s you can hold at most %d active claims at a time", u.Level, u.MaxClaimsAllowed)
	}

	return nil
}

func checkClaimable(p *entities.Post, now time.Time) error {
	if p.Status != entities.PostStatusAvailable {
		return service.Errorf(service.ErrFailedPrecondition, "post is no longer available")
	}

	if p.ExpiresAt.Before(now) {
		return service.Errorf(service.ErrFailedPrecondition, "post has expired")
	}

	if p.Quantity != nil && *p.Quantity <= 0 {
		return service.Errorf(service.ErrFailedPrecondition, "post is sold out")
	}

	return nil
}

func (s *srv) ConfirmPickup(ctx context.Context, callerID, claimID, pickupCode string) error {
	if err := requireCaller(callerID); err != nil {
		return err
	}

	pickupCode = strings.ToUpper(strings.TrimSpace(pickupCode))
	if claimID == "" || pickupCode == "" {
		return service.Errorf(service.ErrInvalidArgument, "claim id and pickup code are required")
	}

	var claim *entities.Claim

	if err := s.s.InTx(ctx, func(tx storage.Storage) error {
		now := s.now()

		c, err := tx.GetClaimForUpdate(ctx, claimID)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return service.Errorf(service.ErrNotFound, "claim not found")
			}
			return fmt.Errorf("failed to get claim: %w", err)
		}

		if c.PickupCode != pickupCode {
			return service.Errorf(service.ErrInvalidArgument, "invalid pickup code")
		}

		if now.After(c.ExpiresAt) {
			return service.Errorf(service.ErrFailedPrecondition, "claim has expired")
		}

		if c.Status != entities.ClaimStatusPending {
			return service.Errorf(service.ErrFailedPrecondition, "claim is already %s", c.Status)
		}

		if callerID != c.ClaimerID && callerID != c.PosterID {
			return service.Errorf(service.ErrPermissionDenied, "only the claimer or the poster can confirm the pickup")
		}

		if err := tx.SetClaimStatus(ctx, c.ID, entities.ClaimStatusCompleted, now); err != nil {
			return fmt.Errorf("failed to complete claim: %w", err)
		}

		if err := completePost(ctx, tx, c.PostID); err != nil {
			return err
		}

		if err := tx.UpdateUserCounters(ctx, c.ClaimerID, storage.UserCountersDelta{
			ActiveClaims:    -1,
			CompletedClaims: 1,
		}); err != nil {
			return fmt.Errorf("failed to update claimer: %w", err)
		}

		if err := tx.UpdateUserCounters(ctx, c.PosterID, storage.UserCountersDelta{
			SuccessfulPosts: 1,
		}); err != nil && !errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("failed to update poster: %w", err)
		}

		claim = c

		return nil
	}); err != nil {
		return wrap(err, "failed to confirm pickup")
	}

	s.m.RecordClaimClosed(string(entities.ClaimStatusCompleted), 1)
	s.notify(ctx, s.notification(claim.ClaimerID, entities.PickupConfirmedNotification, claim.ID,
		"Pickup confirmed. Enjoy your food and don't forget to rate the poster!"))

	return nil
}

func completePost(ctx context.Context, tx storage.Storage, postID string) error {
	post, err := tx.GetPostForUpdate(ctx, postID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.WithField("post", postID).Warn("post of confirmed claim is missing")
			return nil
		}
		return fmt.Errorf("failed to get post: %w", err)
	}

	post.Status = entities.PostStatusCompleted
	post.Lock = nil

	if err := tx.UpdatePost(ctx, post); err != nil {
		return fmt.Errorf("failed to complete post: %w", err)
	}

	return nil
}

func (s *srv) CancelClaim(ctx context.Context, callerID, claimID string) error {
	if err := requireCaller(callerID); err != nil {
		return err
	}

	if claimID == "" {
		return service.Errorf(service.ErrInvalidArgument, "claim id is required")
	}

	var claim *entities.Claim

	if err := s.s.InTx(ctx, func(tx storage.Storage) error {
		now := s.now()

		c, err := tx.GetClaimForUpdate(ctx, claimID)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return service.Errorf(service.ErrNotFound, "claim not found")
			}
			return fmt.Errorf("failed to get claim: %w", err)
		}

		if callerID != c.ClaimerID {
			return service.Errorf(service.ErrPermissionDenied, "only the claimer can cancel the claim")
		}

		if c.Status != entities.ClaimStatusPending {
			return service.Errorf(service.ErrFailedPrecondition, "claim is already %s", c.Status)
		}

		if err := tx.SetClaimStatus(ctx, c.ID, entities.ClaimStatusCancelled, now); err != nil {
			return fmt.Errorf("failed to cancel claim: %w", err)
		}

		if err := s.releasePosts(ctx, tx, []*entities.ExpiredClaim{{
			ClaimID: c.ID,
			PostID:  c.PostID,
			Partial: c.Partial,
		}}); err != nil {
			return err
		}

		if err := tx.UpdateUserCounters(ctx, c.ClaimerID, storage.UserCountersDelta{
			ActiveClaims: -1,
		}); err != nil {
			return fmt.Errorf("failed to update claimer: %w", err)
		}

		claim = c

		return nil
	}); err != nil {
		return wrap(err, "failed to cancel claim")
	}

	s.m.RecordClaimClosed(string(entities.ClaimStatusCancelled), 1)
	s.notify(ctx, s.notification(claim.PosterID, entities.ClaimCancelledNotification, claim.ID,
		"The claim on your food was cancelled. It is available again."))

	return nil
}

// releasePosts unlocks posts held by the claims. Units taken from multi-unit posts are returned
// only when the service is configured to restore quantity.
func (s *srv) releasePosts(ctx context.Context, tx storage.Storage, claims []*entities.ExpiredClaim) error {
	ids := make([]string, len(claims))
	units := make(map[string]int32)

	for i, c := range claims {
		ids[i] = c.ClaimID
		if c.Partial && s.cfg.RestoreQuantity {
			units[c.PostID]++
		}
	}

	if err := tx.ReleasePosts(ctx, ids); err != nil {
		return fmt.Errorf("failed to release posts: %w", err)
	}

	if len(units) > 0 {
		if err := tx.RestorePostUnits(ctx, units); err != nil {
			return fmt.Errorf("failed to restore posts' quantity: %w", err)
		}
	}

	return nil
}

func (s *srv) GetClaim(ctx context.Context, callerID, claimID string) (*entities.Claim, error) {
	if err := requireCaller(callerID); err != nil {
		return nil, err
	}

	c, err := s.s.GetClaim(ctx, claimID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, service.Errorf(service.ErrNotFound, "claim not found")
		}
		return nil, fmt.Errorf("failed to get claim: %w", err)
	}

	switch callerID {
	case c.ClaimerID:
	case c.PosterID:
		c.PickupCode = ""
	default:
		return nil, service.Errorf(service.ErrPermissionDenied, "claim belongs to another user")
	}

	return c, nil
}
