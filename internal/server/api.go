package server

import (
	"time"

	"github.com/reswipe/reswipe/internal/entities"
)

const maxLimit = 100
const defaultLimit = 20

// MessageResponse ...
// swagger:model
type MessageResponse struct {
	Message string `json:"message"`
}

// CreateClaimRequest ...
// swagger:model
type CreateClaimRequest struct {
	PostID string `json:"postId"`
}

// CreateClaimResponse ...
// swagger:model
type CreateClaimResponse struct {
	ClaimID        string `json:"claimId"`
	ConversationID string `json:"conversationId"`
	PickupCode     string `json:"pickupCode"`
	// Epoch milliseconds.
	ExpiresAt    int64    `json:"expiresAt"`
	PostLocation Location `json:"postLocation"`
	Message      string   `json:"message"`
}

// ConfirmPickupRequest ...
// swagger:model
type ConfirmPickupRequest struct {
	PickupCode string `json:"pickupCode"`
}

// RateClaimRequest ...
// swagger:model
type RateClaimRequest struct {
	Stars   uint8  `json:"stars"`
	Comment string `json:"comment"`
}

// Location ...
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Address   string  `json:"address"`
}

// Claim ...
// swagger:model
type Claim struct {
	ID          string `json:"id"`
	ClaimerID   string `json:"claimerId"`
	PosterID    string `json:"posterId"`
	PostID      string `json:"postId"`
	Status      string `json:"status"`
	PickupCode  string `json:"pickupCode,omitempty"`
	LockedAt    int64  `json:"lockedAt"`
	ExpiresAt   int64  `json:"expiresAt"`
	CompletedAt *int64 `json:"completedAt,omitempty"`
	CancelledAt *int64 `json:"cancelledAt,omitempty"`
	ExpiredAt   *int64 `json:"expiredAt,omitempty"`
}

// CreatePostRequest ...
// swagger:model
type CreatePostRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	ImageURL    string   `json:"imageUrl"`
	Quantity    *int32   `json:"quantity,omitempty"`
	Location    Location `json:"location"`
	// Epoch milliseconds.
	ExpiresAt int64 `json:"expiresAt"`
}

// Post ...
// swagger:model
type Post struct {
	ID          string   `json:"id"`
	PosterID    string   `json:"posterId"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	ImageURL    string   `json:"imageUrl"`
	Status      string   `json:"status"`
	Quantity    *int32   `json:"quantity,omitempty"`
	Location    Location `json:"location"`
	ExpiresAt   int64    `json:"expiresAt"`
	CreatedAt   int64    `json:"createdAt"`
}

// SetupProfileRequest ...
// swagger:model
type SetupProfileRequest struct {
	DisplayName string `json:"displayName"`
}

// User ...
// swagger:model
type User struct {
	ID               string  `json:"id"`
	DisplayName      string  `json:"displayName"`
	ActiveClaims     uint32  `json:"activeClaimsCount"`
	TotalClaims      uint32  `json:"totalClaims"`
	CompletedClaims  uint32  `json:"completedClaims"`
	ExpiredClaims    uint32  `json:"expiredClaims"`
	SuccessfulPosts  uint32  `json:"successfulPosts"`
	TotalRatings     uint32  `json:"totalRatings"`
	TrustScore       float64 `json:"trustScore"`
	Level            string  `json:"level"`
	MaxClaimsAllowed uint32  `json:"maxClaimsAllowed"`
	CreatedAt        int64   `json:"createdAt"`
}

// Notification ...
// swagger:model
type Notification struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	Message   string `json:"message"`
	ClaimID   string `json:"claimId,omitempty"`
	CreatedAt int64  `json:"createdAt"`
}

func toMillis(t time.Time) int64 {
	return t.UnixNano() / int64(time.Millisecond)
}

func toMillisPtr(t *time.Time) *int64 {
	if t == nil {
		return nil
	}

	v := toMillis(*t)
	return &v
}

func fromMillis(v int64) time.Time {
	return time.Unix(0, v*int64(time.Millisecond)).UTC()
}

func toAPILocation(l entities.Location) Location {
	return Location{
		Latitude:  l.Latitude,
		Longitude: l.Longitude,
		Address:   l.Address,
	}
}

func fromAPILocation(l Location) entities.Location {
	return entities.Location{
		Latitude:  l.Latitude,
		Longitude: l.Longitude,
		Address:   l.Address,
	}
}

func toAPIClaim(c *entities.Claim) Claim {
	return Claim{
		ID:          c.ID,
		ClaimerID:   c.ClaimerID,
		PosterID:    c.PosterID,
		PostID:      c.PostID,
		Status:      string(c.Status),
		PickupCode:  c.PickupCode,
		LockedAt:    toMillis(c.LockedAt),
		ExpiresAt:   toMillis(c.ExpiresAt),
		CompletedAt: toMillisPtr(c.CompletedAt),
		CancelledAt: toMillisPtr(c.CancelledAt),
		ExpiredAt:   toMillisPtr(c.ExpiredAt),
	}
}

func toAPIPost(p *entities.Post) Post {
	return Post{
		ID:          p.ID,
		PosterID:    p.PosterID,
		Title:       p.Title,
		Description: p.Description,
		ImageURL:    p.ImageURL,
		Status:      string(p.Status),
		Quantity:    p.Quantity,
		Location:    toAPILocation(p.Location),
		ExpiresAt:   toMillis(p.ExpiresAt),
		CreatedAt:   toMillis(p.CreatedAt),
	}
}

func toAPIUser(u *entities.User) User {
	return User{
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
		CreatedAt:        toMillis(u.CreatedAt),
	}
}

func toAPINotification(n *entities.Notification) Notification {
	return Notification{
		ID:        n.ID,
		Type:      string(n.Type),
		Message:   n.Message,
		ClaimID:   n.ClaimID,
		CreatedAt: toMillis(n.CreatedAt),
	}
}
