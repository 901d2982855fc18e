// Package entities contains main entities of service.
package entities

import (
	"encoding/json"
	"time"
)

// Level is a reputation tier of user.
type Level string

const (
	// RookieRescuer is the default level.
	RookieRescuer Level = "Rookie Rescuer"
	// FoodHero ...
	FoodHero Level = "Food Hero"
	// FoodLegend ...
	FoodLegend Level = "Food Legend"
)

// PostStatus ...
type PostStatus string

const (
	// PostStatusAvailable ...
	PostStatusAvailable PostStatus = "available"
	// PostStatusLocked means a claim against the post's last unit is pending.
	PostStatusLocked PostStatus = "locked"
	// PostStatusClaimed is declared by the schema but no transition leads to it.
	PostStatusClaimed PostStatus = "claimed"
	// PostStatusCompleted ...
	PostStatusCompleted PostStatus = "completed"
)

// ClaimStatus ...
type ClaimStatus string

const (
	// ClaimStatusPending ...
	ClaimStatusPending ClaimStatus = "pending"
	// ClaimStatusCompleted ...
	ClaimStatusCompleted ClaimStatus = "completed"
	// ClaimStatusCancelled ...
	ClaimStatusCancelled ClaimStatus = "cancelled"
	// ClaimStatusTimedOut ...
	ClaimStatusTimedOut ClaimStatus = "timed_out"
)

// IsTerminal returns true if no transition leaves the status.
func (s ClaimStatus) IsTerminal() bool {
	return s == ClaimStatusCompleted || s == ClaimStatusCancelled || s == ClaimStatusTimedOut
}

// Standing is a derived part of user's record.
type Standing struct {
	TrustScore       float64
	Level            Level
	MaxClaimsAllowed uint32
}

// User ...
type User struct {
	ID               string
	DisplayName      string
	ActiveClaims     uint32
	TotalClaims      uint32
	CompletedClaims  uint32
	ExpiredClaims    uint32
	SuccessfulPosts  uint32
	TotalRatings     uint32
	TrustScore       float64
	Level            Level
	MaxClaimsAllowed uint32
	LastClaimAt      *time.Time
	Banned           bool
	CreatedAt        time.Time
}

// Location ...
type Location struct {
	Latitude  float64
	Longitude float64
	Address   string
}

// LockInfo is present on a post while one of its units is held by a pending claim.
type LockInfo struct {
	ClaimedBy string
	ClaimID   string
	LockedAt  time.Time
	ExpiresAt time.Time
}

// Post ...
type Post struct {
	ID          string
	PosterID    string
	Title       string
	Description string
	ImageURL    string
	Status      PostStatus
	// Quantity is nil when the post is a single undivided item.
	Quantity  *int32
	Location  Location
	ExpiresAt time.Time
	Lock      *LockInfo
	CreatedAt time.Time
}

// Claim ...
type Claim struct {
	ID         string
	ClaimerID  string
	PosterID   string
	PostID     string
	Status     ClaimStatus
	PickupCode string
	// Partial is set when the claim took one unit of a multi-unit post.
	Partial     bool
	LockedAt    time.Time
	ExpiresAt   time.Time
	CompletedAt *time.Time
	CancelledAt *time.Time
	ExpiredAt   *time.Time
}

// ClaimReceipt is returned to the claimer right after a successful claim.
type ClaimReceipt struct {
	ClaimID        string
	ConversationID string
	PickupCode     string
	ExpiresAt      time.Time
	PostLocation   Location
}

// ExpiredClaim is a claim moved to timed_out by a sweep.
type ExpiredClaim struct {
	ClaimID   string
	ClaimerID string
	PosterID  string
	PostID    string
	Partial   bool
}

// Conversation links claimer and poster of a claim.
type Conversation struct {
	ID           string
	ClaimID      string
	PostID       string
	Participants []string
	CreatedAt    time.Time
}

// Rating ...
type Rating struct {
	ID        string
	ClaimID   string
	PostID    string
	PosterID  string
	ClaimerID string
	Stars     uint8
	Comment   string
	CreatedAt time.Time
}

// NotificationType ...
type NotificationType string

const (
	// ClaimCreatedNotification ...
	ClaimCreatedNotification NotificationType = "claim_created"
	// PickupConfirmedNotification ...
	PickupConfirmedNotification NotificationType = "pickup_confirmed"
	// ClaimCancelledNotification ...
	ClaimCancelledNotification NotificationType = "claim_cancelled"
	// ClaimExpiredNotification ...
	ClaimExpiredNotification NotificationType = "claim_expired"
	// RatingReceivedNotification ...
	RatingReceivedNotification NotificationType = "rating_received"
	// LevelUpNotification ...
	LevelUpNotification NotificationType = "level_up"
)

// Notification ...
type Notification struct {
	ID        string
	UserID    string
	Type      NotificationType
	Message   string
	ClaimID   string
	CreatedAt time.Time
}

// ChangeEventKind ...
type ChangeEventKind string

const (
	// ClaimStatusChanged is written by the store when a claim row changes its status.
	ClaimStatusChanged ChangeEventKind = "claim_status_changed"
	// RatingCreated is written by the store when a rating row is inserted.
	RatingCreated ChangeEventKind = "rating_created"
)

// ChangeEvent is an entry of the store's change feed.
type ChangeEvent struct {
	ID        uint64
	Kind      ChangeEventKind
	EntityID  string
	Before    json.RawMessage
	After     json.RawMessage
	CreatedAt time.Time
}

// ClaimSnapshot is the claim part of ClaimStatusChanged event.
type ClaimSnapshot struct {
	Status    ClaimStatus `json:"status"`
	ClaimerID string      `json:"claimer_id"`
	PosterID  string      `json:"poster_id"`
}

// RatingSnapshot is the rating part of RatingCreated event.
type RatingSnapshot struct {
	PosterID  string `json:"poster_id"`
	ClaimerID string `json:"claimer_id"`
	ClaimID   string `json:"claim_id"`
	Stars     uint8  `json:"stars"`
}
