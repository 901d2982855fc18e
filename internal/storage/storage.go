// Package storage contains a storage interface.
package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/reswipe/reswipe/internal/entities"
)

//go:generate mockgen -destination=./mock/storage.go -package=mock -source=storage.go

// ErrNotFound ...
var ErrNotFound = fmt.Errorf("not found")

// ErrAlreadyExists ...
var ErrAlreadyExists = fmt.Errorf("already exists")

// Storage provides methods for interacting with database.
type Storage interface {
	// InTx runs f within a transaction. All changes are rolled back if f returns an error.
	InTx(ctx context.Context, f func(s Storage) error) error

	GetUser(ctx context.Context, id string) (*entities.User, error)
	// GetUserForUpdate returns the user and locks it till the end of the transaction.
	GetUserForUpdate(ctx context.Context, id string) (*entities.User, error)
	// CreateUser returns ErrAlreadyExists without failing the transaction when the user is present.
	CreateUser(ctx context.Context, u *entities.User) error
	SetDisplayName(ctx context.Context, id, displayName string) error
	UpdateUserCounters(ctx context.Context, id string, d UserCountersDelta) error
	SetUserStanding(ctx context.Context, id string, st entities.Standing) error
	ListLeaders(ctx context.Context, limit uint16) ([]*entities.User, error)

	CreatePost(ctx context.Context, p *entities.Post) error
	GetPost(ctx context.Context, id string) (*entities.Post, error)
	GetPostForUpdate(ctx context.Context, id string) (*entities.Post, error)
	// UpdatePost saves status, quantity and lock of the post.
	UpdatePost(ctx context.Context, p *entities.Post) error
	// ReleasePosts makes available posts locked by the claims. Completed posts are not touched.
	ReleasePosts(ctx context.Context, claimIDs []string) error
	// RestorePostUnits increases posts' quantity by the given amount.
	RestorePostUnits(ctx context.Context, units map[string]int32) error
	ListAvailablePosts(ctx context.Context, p *ListPostsParams) ([]*entities.Post, error)
	DeletePost(ctx context.Context, id string) error
	// DeleteExpiredPosts deletes available posts which are not locked and expired before the timestamp.
	DeleteExpiredPosts(ctx context.Context, before time.Time) (int64, error)

	CreateClaim(ctx context.Context, c *entities.Claim) error
	GetClaim(ctx context.Context, id string) (*entities.Claim, error)
	GetClaimForUpdate(ctx context.Context, id string) (*entities.Claim, error)
	// SetClaimStatus moves the claim to the terminal status stamped with the timestamp.
	SetClaimStatus(ctx context.Context, id string, status entities.ClaimStatus, timestamp time.Time) error
	// ExpireDueClaims moves every pending claim expired before the timestamp to timed_out.
	ExpireDueClaims(ctx context.Context, now time.Time) ([]*entities.ExpiredClaim, error)
	DeleteClaim(ctx context.Context, id string) error

	CreateConversation(ctx context.Context, c *entities.Conversation) error
	DeleteConversationByClaim(ctx context.Context, claimID string) error

	// CreateRating returns ErrAlreadyExists if the claim is rated.
	CreateRating(ctx context.Context, r *entities.Rating) error

	CreateNotifications(ctx context.Context, n []*entities.Notification) error
	ListNotifications(ctx context.Context, userID string, limit uint16) ([]*entities.Notification, error)

	// ListPendingEvents returns unprocessed change events in order they were written.
	ListPendingEvents(ctx context.Context, limit uint16) ([]*entities.ChangeEvent, error)
	// MarkEventProcessed returns ErrNotFound if the event is already processed.
	MarkEventProcessed(ctx context.Context, id uint64, timestamp time.Time) error
	CountPendingEvents(ctx context.Context) (uint64, error)
}

// UserCountersDelta is added to user's counters. Active claims never go below zero.
type UserCountersDelta struct {
	ActiveClaims    int32
	TotalClaims     int32
	CompletedClaims int32
	ExpiredClaims   int32
	SuccessfulPosts int32
	TotalRatings    int32
	LastClaimAt     *time.Time
}

// ListPostsParams ...
type ListPostsParams struct {
	Now           time.Time
	ExcludePoster *string
	Limit         uint16
	// After is a not-including bound by created_at.
	After *time.Time
}
