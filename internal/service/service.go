// Package service contains interface for service business-logic.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/reswipe/reswipe/internal/entities"
)

//go:generate mockgen -destination=./mock/service.go -package=mock -source=service.go

// Errors kinds. Every business rule violation wraps exactly one of them.
var (
	// ErrUnauthenticated is returned when there is no verified caller identity.
	ErrUnauthenticated = errors.New("unauthenticated")
	// ErrInvalidArgument is returned when required field is missing or malformed, or pickup code mismatches.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrNotFound is returned when referenced post or claim does not exist.
	ErrNotFound = errors.New("not found")
	// ErrPermissionDenied is returned when caller is not allowed to do the action.
	ErrPermissionDenied = errors.New("permission denied")
	// ErrFailedPrecondition is returned when target is not in the state required for the transition.
	ErrFailedPrecondition = errors.New("failed precondition")
	// ErrInternal is a kind of every error which is not a business rule violation.
	ErrInternal = errors.New("internal")
)

// Error is a business rule violation with human readable message.
type Error struct {
	Kind    error
	Message string
}

// Error ...
func (e *Error) Error() string {
	return e.Message
}

// Unwrap ...
func (e *Error) Unwrap() error {
	return e.Kind
}

// Errorf returns new Error of kind.
func Errorf(kind error, format string, args ...interface{}) error {
	return &Error{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
	}
}

// KindOf returns kind of the error. Errors not produced by Errorf are internal.
func KindOf(err error) error {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}

	return ErrInternal
}

// KindName returns snake-cased kind name of the error.
func KindName(err error) string {
	switch KindOf(err) {
	case ErrUnauthenticated:
		return "unauthenticated"
	case ErrInvalidArgument:
		return "invalid_argument"
	case ErrNotFound:
		return "not_found"
	case ErrPermissionDenied:
		return "permission_denied"
	case ErrFailedPrecondition:
		return "failed_precondition"
	default:
		return "internal"
	}
}

// Service ...
type Service interface {
	// CreateClaim reserves the post for the claimer.
	CreateClaim(ctx context.Context, claimerID, postID string) (*entities.ClaimReceipt, error)
	// ConfirmPickup completes the claim. Both claimer and poster are allowed to confirm.
	ConfirmPickup(ctx context.Context, callerID, claimID, pickupCode string) error
	// CancelClaim cancels the claim on behalf of the claimer.
	CancelClaim(ctx context.Context, callerID, claimID string) error
	// GetClaim returns the claim to its claimer or poster. Pickup code is visible to the claimer only.
	GetClaim(ctx context.Context, callerID, claimID string) (*entities.Claim, error)
	// RateClaim rates the poster of a completed claim and removes the settled post, claim and conversation.
	RateClaim(ctx context.Context, callerID, claimID string, stars uint8, comment string) error

	// SweepExpiredClaims times out pending claims past their deadline and returns count of released claims.
	SweepExpiredClaims(ctx context.Context) (int, error)
	// DeleteExpiredPosts removes available posts past their own deadline.
	DeleteExpiredPosts(ctx context.Context) (int64, error)
	// HandleChange applies derived recompute rules for the change event exactly once.
	HandleChange(ctx context.Context, e *entities.ChangeEvent) error

	CreatePost(ctx context.Context, p *CreatePostParams) (*entities.Post, error)
	GetPost(ctx context.Context, id string) (*entities.Post, error)
	// ListAvailablePosts returns claimable posts which are not owned by the caller.
	ListAvailablePosts(ctx context.Context, callerID string, limit uint16, after *time.Time) ([]*entities.Post, error)

	// SetupProfile creates the user with default standing if it's missing and sets its display name.
	SetupProfile(ctx context.Context, userID, displayName string) (*entities.User, error)
	GetUser(ctx context.Context, id string) (*entities.User, error)
	ListLeaders(ctx context.Context, limit uint16) ([]*entities.User, error)
	ListNotifications(ctx context.Context, userID string, limit uint16) ([]*entities.Notification, error)
}

// CreatePostParams ...
type CreatePostParams struct {
	PosterID    string
	Title       string
	Description string
	ImageURL    string
	Quantity    *int32
	Location    entities.Location
	ExpiresAt   time.Time
}
