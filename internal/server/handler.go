package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi"

	"github.com/reswipe/reswipe/internal/api"
	mm "github.com/reswipe/reswipe/internal/middleware"
	"github.com/reswipe/reswipe/internal/service"
)

var errInvalidRequest = errors.New("invalid request")

// writeServiceError maps error kind to http status.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var status int

	switch service.KindOf(err) {
	case service.ErrUnauthenticated:
		status = http.StatusUnauthorized
	case service.ErrInvalidArgument:
		status = http.StatusBadRequest
	case service.ErrNotFound:
		status = http.StatusNotFound
	case service.ErrPermissionDenied:
		status = http.StatusForbidden
	case service.ErrFailedPrecondition:
		status = http.StatusConflict
	default:
		api.WriteInternalErrorf(r.Context(), w, "%s %s: %s", r.Method, r.URL.Path, err.Error())
		return
	}

	api.WriteKindError(w, status, service.KindName(err), err.Error())
}

func decode(r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: %s", errInvalidRequest, err.Error())
	}

	return nil
}

func writeBadRequest(w http.ResponseWriter, err error) {
	api.WriteKindError(w, http.StatusBadRequest, "invalid_argument", err.Error())
}

func (s server) createClaim(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /claims Claims CreateClaim
	//
	// Claims the post on behalf of the caller.
	//
	// ---
	// parameters:
	// - name: request
	//   in: body
	//   required: true
	//   schema:
	//     "$ref": "#/definitions/CreateClaimRequest"
	// responses:
	//   '201':
	//     description: Claim is created
	//     schema:
	//       "$ref": "#/definitions/CreateClaimResponse"
	//   '400':
	//     description: bad request
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '401':
	//     description: caller is unknown
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '403':
	//     description: caller is banned, in cooldown or out of quota
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '404':
	//     description: post not found
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '409':
	//     description: post is not claimable
	//     schema:
	//       "$ref": "#/definitions/Error"

	var req CreateClaimRequest
	if err := decode(r, &req); err != nil {
		writeBadRequest(w, err)
		return
	}

	receipt, err := s.s.CreateClaim(r.Context(), mm.Caller(r.Context()), req.PostID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	api.WriteOK(w, http.StatusCreated, CreateClaimResponse{
		ClaimID:        receipt.ClaimID,
		ConversationID: receipt.ConversationID,
		PickupCode:     receipt.PickupCode,
		ExpiresAt:      toMillis(receipt.ExpiresAt),
		PostLocation:   toAPILocation(receipt.PostLocation),
		Message:        fmt.Sprintf("Food claimed! Show code %s at pickup.", receipt.PickupCode),
	})
}

func (s server) confirmPickup(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /claims/{id}/confirm Claims ConfirmPickup
	//
	// Completes the claim. Both claimer and poster can confirm.
	//
	// ---
	// parameters:
	// - name: id
	//   in: path
	//   required: true
	//   type: string
	// - name: request
	//   in: body
	//   required: true
	//   schema:
	//     "$ref": "#/definitions/ConfirmPickupRequest"
	// responses:
	//   '200':
	//     description: Pickup is confirmed
	//     schema:
	//       "$ref": "#/definitions/MessageResponse"
	//   '400':
	//     description: bad request or wrong pickup code
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '403':
	//     description: caller is neither claimer nor poster
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '404':
	//     description: claim not found
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '409':
	//     description: claim is expired or already closed
	//     schema:
	//       "$ref": "#/definitions/Error"

	var req ConfirmPickupRequest
	if err := decode(r, &req); err != nil {
		writeBadRequest(w, err)
		return
	}

	if err := s.s.ConfirmPickup(r.Context(), mm.Caller(r.Context()), chi.URLParam(r, "id"), req.PickupCode); err != nil {
		writeServiceError(w, r, err)
		return
	}

	api.WriteOK(w, http.StatusOK, MessageResponse{Message: "Pickup confirmed!"})
}

func (s server) cancelClaim(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /claims/{id}/cancel Claims CancelClaim
	//
	// Cancels the pending claim of the caller.
	//
	// ---
	// parameters:
	// - name: id
	//   in: path
	//   required: true
	//   type: string
	// responses:
	//   '200':
	//     description: Claim is cancelled
	//     schema:
	//       "$ref": "#/definitions/MessageResponse"
	//   '403':
	//     description: caller is not the claimer
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '404':
	//     description: claim not found
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '409':
	//     description: claim is already closed
	//     schema:
	//       "$ref": "#/definitions/Error"

	if err := s.s.CancelClaim(r.Context(), mm.Caller(r.Context()), chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, r, err)
		return
	}

	api.WriteOK(w, http.StatusOK, MessageResponse{Message: "Claim cancelled."})
}

func (s server) rateClaim(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /claims/{id}/rating Claims RateClaim
	//
	// Rates the poster of the completed claim.
	//
	// ---
	// parameters:
	// - name: id
	//   in: path
	//   required: true
	//   type: string
	// - name: request
	//   in: body
	//   required: true
	//   schema:
	//     "$ref": "#/definitions/RateClaimRequest"
	// responses:
	//   '200':
	//     description: Rating is saved
	//     schema:
	//       "$ref": "#/definitions/MessageResponse"
	//   '400':
	//     description: bad request
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '409':
	//     description: claim is not completed or already rated
	//     schema:
	//       "$ref": "#/definitions/Error"

	var req RateClaimRequest
	if err := decode(r, &req); err != nil {
		writeBadRequest(w, err)
		return
	}

	if err := s.s.RateClaim(r.Context(), mm.Caller(r.Context()), chi.URLParam(r, "id"), req.Stars, req.Comment); err != nil {
		writeServiceError(w, r, err)
		return
	}

	api.WriteOK(w, http.StatusOK, MessageResponse{Message: "Thanks for your rating!"})
}

func (s server) getClaim(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /claims/{id} Claims GetClaim
	//
	// Returns the claim to its claimer or poster. Pickup code is visible to the claimer only.
	//
	// ---
	// parameters:
	// - name: id
	//   in: path
	//   required: true
	//   type: string
	// responses:
	//   '200':
	//     description: Claim
	//     schema:
	//       "$ref": "#/definitions/Claim"
	//   '403':
	//     description: claim belongs to another user
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '404':
	//     description: claim not found
	//     schema:
	//       "$ref": "#/definitions/Error"

	c, err := s.s.GetClaim(r.Context(), mm.Caller(r.Context()), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	api.WriteOK(w, http.StatusOK, toAPIClaim(c))
}

func (s server) createPost(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /posts Posts CreatePost
	//
	// Creates a food post.
	//
	// ---
	// parameters:
	// - name: request
	//   in: body
	//   required: true
	//   schema:
	//     "$ref": "#/definitions/CreatePostRequest"
	// responses:
	//   '201':
	//     description: Post
	//     schema:
	//       "$ref": "#/definitions/Post"
	//   '400':
	//     description: bad request
	//     schema:
	//       "$ref": "#/definitions/Error"

	var req CreatePostRequest
	if err := decode(r, &req); err != nil {
		writeBadRequest(w, err)
		return
	}

	p, err := s.s.CreatePost(r.Context(), &service.CreatePostParams{
		PosterID:    mm.Caller(r.Context()),
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Quantity:    req.Quantity,
		Location:    fromAPILocation(req.Location),
		ExpiresAt:   fromMillis(req.ExpiresAt),
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	api.WriteOK(w, http.StatusCreated, toAPIPost(p))
}

func (s server) listPosts(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /posts Posts ListPosts
	//
	// Returns claimable posts not owned by the caller, newest first.
	//
	// ---
	// parameters:
	// - name: limit
	//   in: query
	//   required: false
	//   default: 20
	//   minimum: 1
	//   maximum: 100
	// - name: after
	//   description: not-including upper bound by creation time in epoch milliseconds
	//   in: query
	//   required: false
	//   example: 1613414389000
	// responses:
	//   '200':
	//     description: Posts
	//     schema:
	//       type: array
	//       items:
	//         "$ref": "#/definitions/Post"
	//   '400':
	//     description: bad request
	//     schema:
	//       "$ref": "#/definitions/Error"

	limit, err := getLimit(r)
	if err != nil {
		writeBadRequest(w, err)
		return
	}

	var after *time.Time
	if v := r.URL.Query().Get("after"); v != "" {
		ms, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			writeBadRequest(w, fmt.Errorf("%w: invalid after", errInvalidRequest))
			return
		}
		t := fromMillis(ms)
		after = &t
	}

	posts, err := s.s.ListAvailablePosts(r.Context(), mm.Caller(r.Context()), limit, after)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	out := make([]Post, len(posts))
	for i, v := range posts {
		out[i] = toAPIPost(v)
	}

	api.WriteOK(w, http.StatusOK, out)
}

func (s server) getPost(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /posts/{id} Posts GetPost
	//
	// Returns the post.
	//
	// ---
	// parameters:
	// - name: id
	//   in: path
	//   required: true
	//   type: string
	// responses:
	//   '200':
	//     description: Post
	//     schema:
	//       "$ref": "#/definitions/Post"
	//   '404':
	//     description: post not found
	//     schema:
	//       "$ref": "#/definitions/Error"

	p, err := s.s.GetPost(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	api.WriteOK(w, http.StatusOK, toAPIPost(p))
}

func (s server) setupProfile(w http.ResponseWriter, r *http.Request) {
	// swagger:operation PUT /profile Users SetupProfile
	//
	// Creates the caller's profile with default standing if it's missing and sets display name.
	//
	// ---
	// parameters:
	// - name: request
	//   in: body
	//   required: true
	//   schema:
	//     "$ref": "#/definitions/SetupProfileRequest"
	// responses:
	//   '200':
	//     description: User
	//     schema:
	//       "$ref": "#/definitions/User"
	//   '400':
	//     description: bad request
	//     schema:
	//       "$ref": "#/definitions/Error"

	var req SetupProfileRequest
	if err := decode(r, &req); err != nil {
		writeBadRequest(w, err)
		return
	}

	u, err := s.s.SetupProfile(r.Context(), mm.Caller(r.Context()), req.DisplayName)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	api.WriteOK(w, http.StatusOK, toAPIUser(u))
}

func (s server) getUser(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /users/{id} Users GetUser
	//
	// Returns user's standing and counters.
	//
	// ---
	// parameters:
	// - name: id
	//   in: path
	//   required: true
	//   type: string
	// responses:
	//   '200':
	//     description: User
	//     schema:
	//       "$ref": "#/definitions/User"
	//   '404':
	//     description: user not found
	//     schema:
	//       "$ref": "#/definitions/Error"

	u, err := s.s.GetUser(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	api.WriteOK(w, http.StatusOK, toAPIUser(u))
}

func (s server) listLeaders(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /leaders Users ListLeaders
	//
	// Returns users with the most completed pickups.
	//
	// ---
	// parameters:
	// - name: limit
	//   in: query
	//   required: false
	//   default: 20
	//   minimum: 1
	//   maximum: 100
	// responses:
	//   '200':
	//     description: Users
	//     schema:
	//       type: array
	//       items:
	//         "$ref": "#/definitions/User"

	limit, err := getLimit(r)
	if err != nil {
		writeBadRequest(w, err)
		return
	}

	users, err := s.s.ListLeaders(r.Context(), limit)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	out := make([]User, len(users))
	for i, v := range users {
		out[i] = toAPIUser(v)
	}

	api.WriteOK(w, http.StatusOK, out)
}

func (s server) listNotifications(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /notifications Users ListNotifications
	//
	// Returns the caller's notifications, newest first.
	//
	// ---
	// parameters:
	// - name: limit
	//   in: query
	//   required: false
	//   default: 20
	//   minimum: 1
	//   maximum: 100
	// responses:
	//   '200':
	//     description: Notifications
	//     schema:
	//       type: array
	//       items:
	//         "$ref": "#/definitions/Notification"

	limit, err := getLimit(r)
	if err != nil {
		writeBadRequest(w, err)
		return
	}

	n, err := s.s.ListNotifications(r.Context(), mm.Caller(r.Context()), limit)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	out := make([]Notification, len(n))
	for i, v := range n {
		out[i] = toAPINotification(v)
	}

	api.WriteOK(w, http.StatusOK, out)
}

func getLimit(r *http.Request) (uint16, error) {
	s := r.URL.Query().Get("limit")
	if s == "" {
		return defaultLimit, nil
	}

	v, err := strconv.ParseUint(s, 10, 16)
	if err != nil || v == 0 || v > maxLimit {
		return 0, fmt.Errorf("%w: limit should be between 1 and %d", errInvalidRequest, maxLimit)
	}

	return uint16(v), nil
}
