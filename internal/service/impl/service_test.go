package impl

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reswipe/reswipe/internal/entities"
	"github.com/reswipe/reswipe/internal/service"
	storageinterface "github.com/reswipe/reswipe/internal/storage"
	storage "github.com/reswipe/reswipe/internal/storage/mock"
)

var (
	testNow   = time.Date(2021, 3, 4, 12, 0, 0, 0, time.UTC)
	testClock = func() time.Time { return testNow }
)

func int32Ptr(v int32) *int32 {
	return &v
}

func timePtr(v time.Time) *time.Time {
	return &v
}

func newTestService(t *testing.T, cfg Config) (*storage.MockStorage, service.Service) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	s := storage.NewMockStorage(ctrl)
	s.EXPECT().InTx(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, f func(s storageinterface.Storage) error) error {
		return f(s)
	}).AnyTimes()

	return s, New(s, cfg, WithClock(testClock))
}

func requireKind(t *testing.T, err error, kind error) {
	t.Helper()

	require.Error(t, err)
	require.Truef(t, errors.Is(err, kind), "expected %v, got %v", kind, err)
}

func rookie(id string) *entities.User {
	return &entities.User{
		ID:               id,
		TrustScore:       1,
		Level:            entities.RookieRescuer,
		MaxClaimsAllowed: 1,
	}
}

func availablePost() *entities.Post {
	return &entities.Post{
		ID:        "post",
		PosterID:  "poster",
		Title:     "bread",
		Status:    entities.PostStatusAvailable,
		Location:  entities.Location{Latitude: 1, Longitude: 2, Address: "street"},
		ExpiresAt: testNow.Add(time.Hour),
	}
}

func TestSrv_CreateClaim_Rejected(t *testing.T) {
	tt := []struct {
		name    string
		claimer string
		post    string
		user    *entities.User
		p       *entities.Post
		postErr error

		kind    error
		message string
	}{
		{
			name:    "unauthenticated",
			post:    "post",
			kind:    service.ErrUnauthenticated,
			message: "authentication required",
		},
		{
			name:    "missing_post_id",
			claimer: "claimer",
			kind:    service.ErrInvalidArgument,
			message: "post id is required",
		},
		{
			name:    "banned",
			claimer: "claimer",
			post:    "post",
			user: func() *entities.User {
				u := rookie("claimer")
				u.Banned = true
				return u
			}(),
			kind:    service.ErrPermissionDenied,
			message: "your account is not allowed to claim food",
		},
		{
			name:    "cooldown",
			claimer: "claimer",
			post:    "post",
			user: func() *entities.User {
				u := rookie("claimer")
				u.LastClaimAt = timePtr(testNow.Add(-10 * time.Second))
				return u
			}(),
			kind:    service.ErrPermissionDenied,
			message: "please wait 20 seconds before claiming again",
		},
		{
			name:    "cooldown_rounds_up",
			claimer: "claimer",
			post:    "post",
			user: func() *entities.User {
				u := rookie("claimer")
				u.LastClaimAt = timePtr(testNow.Add(-29*time.Second - 500*time.Millisecond))
				return u
			}(),
			kind:    service.ErrPermissionDenied,
			message: "please wait 1 seconds before claiming again",
		},
		{
			name:    "quota",
			claimer: "claimer",
			post:    "post",
			user: func() *entities.User {
				u := rookie("claimer")
				u.ActiveClaims = 1
				return u
			}(),
			kind:    service.ErrPermissionDenied,
			message: "as a Rookie Rescuer you can hold at most 1 active claims at a time",
		},
		{
			name:    "hero_quota",
			claimer: "claimer",
			post:    "post",
			user: &entities.User{
				ID:               "claimer",
				Level:            entities.FoodHero,
				MaxClaimsAllowed: 3,
				ActiveClaims:     3,
			},
			kind:    service.ErrPermissionDenied,
			message: "as a Food Hero you can hold at most 3 active claims at a time",
		},
		{
			name:    "post_not_found",
			claimer: "claimer",
			post:    "post",
			user:    rookie("claimer"),
			postErr: storageinterface.ErrNotFound,
			kind:    service.ErrNotFound,
			message: "post not found",
		},
		{
			name:    "post_locked",
			claimer: "claimer",
			post:    "post",
			user:    rookie("claimer"),
			p: func() *entities.Post {
				p := availablePost()
				p.Status = entities.PostStatusLocked
				return p
			}(),
			kind:    service.ErrFailedPrecondition,
			message: "post is no longer available",
		},
		{
			name:    "post_expired",
			claimer: "claimer",
			post:    "post",
			user:    rookie("claimer"),
			p: func() *entities.Post {
				p := availablePost()
				p.ExpiresAt = testNow.Add(-time.Second)
				return p
			}(),
			kind:    service.ErrFailedPrecondition,
			message: "post has expired",
		},
		{
			name:    "sold_out",
			claimer: "claimer",
			post:    "post",
			user:    rookie("claimer"),
			p: func() *entities.Post {
				p := availablePost()
				p.Quantity = int32Ptr(0)
				return p
			}(),
			kind:    service.ErrFailedPrecondition,
			message: "post is sold out",
		},
	}

	for i := range tt {
		tc := tt[i]

		t.Run(tc.name, func(t *testing.T) {
			s, srv := newTestService(t, DefaultConfig())

			if tc.user != nil {
				s.EXPECT().GetUserForUpdate(gomock.Any(), tc.claimer).Return(tc.user, nil)
			}

			if tc.p != nil || tc.postErr != nil {
				s.EXPECT().GetPostForUpdate(gomock.Any(), tc.post).Return(tc.p, tc.postErr)
			}

			r, err := srv.CreateClaim(context.Background(), tc.claimer, tc.post)
			requireKind(t, err, tc.kind)
			require.Equal(t, tc.message, err.Error())
			require.Nil(t, r)
		})
	}
}

func TestSrv_CreateClaim_SingleItem(t *testing.T) {
	s, srv := newTestService(t, DefaultConfig())

	s.EXPECT().GetUserForUpdate(gomock.Any(), "claimer").Return(rookie("claimer"), nil)
	s.EXPECT().GetPostForUpdate(gomock.Any(), "post").Return(availablePost(), nil)

	var claim *entities.Claim

	s.EXPECT().UpdatePost(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p *entities.Post) error {
		assert.Equal(t, entities.PostStatusLocked, p.Status)
		assert.Nil(t, p.Quantity)
		require.NotNil(t, p.Lock)
		assert.Equal(t, "claimer", p.Lock.ClaimedBy)
		assert.Equal(t, testNow, p.Lock.LockedAt)
		assert.Equal(t, testNow.Add(15*time.Minute), p.Lock.ExpiresAt)
		return nil
	})
	s.EXPECT().CreateClaim(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, c *entities.Claim) error {
		claim = c
		assert.Equal(t, entities.ClaimStatusPending, c.Status)
		assert.Equal(t, "claimer", c.ClaimerID)
		assert.Equal(t, "poster", c.PosterID)
		assert.False(t, c.Partial)
		assert.Regexp(t, regexp.MustCompile(`^[A-Z0-9]{6}$`), c.PickupCode)
		return nil
	})
	s.EXPECT().UpdateUserCounters(gomock.Any(), "claimer", storageinterface.UserCountersDelta{
		ActiveClaims: 1,
		TotalClaims:  1,
		LastClaimAt:  &testNow,
	}).Return(nil)
	s.EXPECT().CreateConversation(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, c *entities.Conversation) error {
		assert.Equal(t, claim.ID, c.ClaimID)
		assert.Equal(t, []string{"claimer", "poster"}, c.Participants)
		return nil
	})
	s.EXPECT().CreateNotifications(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, n []*entities.Notification) error {
		require.Len(t, n, 1)
		assert.Equal(t, "poster", n[0].UserID)
		assert.Equal(t, entities.ClaimCreatedNotification, n[0].Type)
		return nil
	})

	r, err := srv.CreateClaim(context.Background(), "claimer", "post")
	require.NoError(t, err)
	require.Equal(t, claim.ID, r.ClaimID)
	require.Equal(t, claim.PickupCode, r.PickupCode)
	require.Equal(t, testNow.Add(15*time.Minute), r.ExpiresAt)
	require.Equal(t, entities.Location{Latitude: 1, Longitude: 2, Address: "street"}, r.PostLocation)
	require.NotEmpty(t, r.ConversationID)
}

func TestSrv_CreateClaim_MultiUnit(t *testing.T) {
	s, srv := newTestService(t, DefaultConfig())

	p := availablePost()
	p.Quantity = int32Ptr(3)

	s.EXPECT().GetUserForUpdate(gomock.Any(), "claimer").Return(rookie("claimer"), nil)
	s.EXPECT().GetPostForUpdate(gomock.Any(), "post").Return(p, nil)
	s.EXPECT().UpdatePost(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p *entities.Post) error {
		assert.Equal(t, entities.PostStatusAvailable, p.Status)
		assert.EqualValues(t, 2, *p.Quantity)
		assert.NotNil(t, p.Lock)
		return nil
	})
	s.EXPECT().CreateClaim(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, c *entities.Claim) error {
		assert.True(t, c.Partial)
		return nil
	})
	s.EXPECT().UpdateUserCounters(gomock.Any(), "claimer", gomock.Any()).Return(nil)
	s.EXPECT().CreateConversation(gomock.Any(), gomock.Any()).Return(nil)
	s.EXPECT().CreateNotifications(gomock.Any(), gomock.Any()).Return(errors.New("notifications are down"))

	_, err := srv.CreateClaim(context.Background(), "claimer", "post")
	require.NoError(t, err)
}

func TestSrv_CreateClaim_LastUnitLocks(t *testing.T) {
	s, srv := newTestService(t, DefaultConfig())

	p := availablePost()
	p.Quantity = int32Ptr(1)

	s.EXPECT().GetUserForUpdate(gomock.Any(), "claimer").Return(rookie("claimer"), nil)
	s.EXPECT().GetPostForUpdate(gomock.Any(), "post").Return(p, nil)
	s.EXPECT().UpdatePost(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p *entities.Post) error {
		assert.Equal(t, entities.PostStatusLocked, p.Status)
		assert.EqualValues(t, 1, *p.Quantity)
		return nil
	})
	s.EXPECT().CreateClaim(gomock.Any(), gomock.Any()).Return(nil)
	s.EXPECT().UpdateUserCounters(gomock.Any(), "claimer", gomock.Any()).Return(nil)
	s.EXPECT().CreateConversation(gomock.Any(), gomock.Any()).Return(nil)
	s.EXPECT().CreateNotifications(gomock.Any(), gomock.Any()).Return(nil)

	_, err := srv.CreateClaim(context.Background(), "claimer", "post")
	require.NoError(t, err)
}

func TestSrv_CreateClaim_FirstClaimCreatesUser(t *testing.T) {
	s, srv := newTestService(t, DefaultConfig())

	s.EXPECT().GetUserForUpdate(gomock.Any(), "claimer").Return(nil, storageinterface.ErrNotFound)
	s.EXPECT().CreateUser(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, u *entities.User) error {
		assert.Equal(t, "claimer", u.ID)
		assert.Equal(t, entities.RookieRescuer, u.Level)
		assert.EqualValues(t, 1, u.MaxClaimsAllowed)
		assert.EqualValues(t, 1, u.TrustScore)
		assert.Equal(t, testNow, u.CreatedAt)
		return nil
	})
	s.EXPECT().GetPostForUpdate(gomock.Any(), "post").Return(availablePost(), nil)
	s.EXPECT().UpdatePost(gomock.Any(), gomock.Any()).Return(nil)
	s.EXPECT().CreateClaim(gomock.Any(), gomock.Any()).Return(nil)
	s.EXPECT().UpdateUserCounters(gomock.Any(), "claimer", gomock.Any()).Return(nil)
	s.EXPECT().CreateConversation(gomock.Any(), gomock.Any()).Return(nil)
	s.EXPECT().CreateNotifications(gomock.Any(), gomock.Any()).Return(nil)

	_, err := srv.CreateClaim(context.Background(), "claimer", "post")
	require.NoError(t, err)
}

func TestSrv_CreateClaim_StorageError(t *testing.T) {
	s, srv := newTestService(t, DefaultConfig())

	s.EXPECT().GetUserForUpdate(gomock.Any(), "claimer").Return(rookie("claimer"), nil)
	s.EXPECT().GetPostForUpdate(gomock.Any(), "post").Return(availablePost(), nil)
	s.EXPECT().UpdatePost(gomock.Any(), gomock.Any()).Return(context.Canceled)

	_, err := srv.CreateClaim(context.Background(), "claimer", "post")
	require.True(t, errors.Is(err, context.Canceled))
	require.Equal(t, service.ErrInternal, service.KindOf(err))
}

func pendingClaim() *entities.Claim {
	return &entities.Claim{
		ID:         "claim",
		ClaimerID:  "claimer",
		PosterID:   "poster",
		PostID:     "post",
		Status:     entities.ClaimStatusPending,
		PickupCode: "ABC123",
		LockedAt:   testNow.Add(-time.Minute),
		ExpiresAt:  testNow.Add(14 * time.Minute),
	}
}

func TestSrv_ConfirmPickup_Rejected(t *testing.T) {
	tt := []struct {
		name   string
		caller string
		code   string
		claim  *entities.Claim
		err    error

		kind error
	}{
		{
			name:   "missing_code",
			caller: "claimer",
			kind:   service.ErrInvalidArgument,
		},
		{
			name:   "not_found",
			caller: "claimer",
			code:   "ABC123",
			err:    storageinterface.ErrNotFound,
			kind:   service.ErrNotFound,
		},
		{
			name:   "wrong_code",
			caller: "claimer",
			code:   "ABC124",
			claim:  pendingClaim(),
			kind:   service.ErrInvalidArgument,
		},
		{
			name:   "wrong_code_checked_before_expiry",
			caller: "claimer",
			code:   "ZZZZZZ",
			claim: func() *entities.Claim {
				c := pendingClaim()
				c.ExpiresAt = testNow.Add(-time.Second)
				return c
			}(),
			kind: service.ErrInvalidArgument,
		},
		{
			name:   "expired",
			caller: "claimer",
			code:   "ABC123",
			claim: func() *entities.Claim {
				c := pendingClaim()
				c.ExpiresAt = testNow.Add(-time.Second)
				return c
			}(),
			kind: service.ErrFailedPrecondition,
		},
		{
			name:   "cancelled",
			caller: "claimer",
			code:   "ABC123",
			claim: func() *entities.Claim {
				c := pendingClaim()
				c.Status = entities.ClaimStatusCancelled
				return c
			}(),
			kind: service.ErrFailedPrecondition,
		},
		{
			name:   "stranger",
			caller: "stranger",
			code:   "ABC123",
			claim:  pendingClaim(),
			kind:   service.ErrPermissionDenied,
		},
	}

	for i := range tt {
		tc := tt[i]

		t.Run(tc.name, func(t *testing.T) {
			s, srv := newTestService(t, DefaultConfig())

			if tc.claim != nil || tc.err != nil {
				s.EXPECT().GetClaimForUpdate(gomock.Any(), "claim").Return(tc.claim, tc.err)
			}

			requireKind(t, srv.ConfirmPickup(context.Background(), tc.caller, "claim", tc.code), tc.kind)
		})
	}
}

func TestSrv_ConfirmPickup(t *testing.T) {
	for _, caller := range []string{"claimer", "poster"} {
		caller := caller

		t.Run(caller, func(t *testing.T) {
			s, srv := newTestService(t, DefaultConfig())

			p := availablePost()
			p.Status = entities.PostStatusLocked
			p.Lock = &entities.LockInfo{ClaimID: "claim"}

			s.EXPECT().GetClaimForUpdate(gomock.Any(), "claim").Return(pendingClaim(), nil)
			s.EXPECT().SetClaimStatus(gomock.Any(), "claim", entities.ClaimStatusCompleted, testNow).Return(nil)
			s.EXPECT().GetPostForUpdate(gomock.Any(), "post").Return(p, nil)
			s.EXPECT().UpdatePost(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p *entities.Post) error {
				assert.Equal(t, entities.PostStatusCompleted, p.Status)
				assert.Nil(t, p.Lock)
				return nil
			})
			s.EXPECT().UpdateUserCounters(gomock.Any(), "claimer", storageinterface.UserCountersDelta{
				ActiveClaims:    -1,
				CompletedClaims: 1,
			}).Return(nil)
			s.EXPECT().UpdateUserCounters(gomock.Any(), "poster", storageinterface.UserCountersDelta{
				SuccessfulPosts: 1,
			}).Return(nil)
			s.EXPECT().CreateNotifications(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, n []*entities.Notification) error {
				require.Len(t, n, 1)
				assert.Equal(t, "claimer", n[0].UserID)
				assert.Equal(t, entities.PickupConfirmedNotification, n[0].Type)
				return nil
			})

			// lower-cased code with spaces is accepted
			require.NoError(t, srv.ConfirmPickup(context.Background(), caller, "claim", " abc123 "))
		})
	}
}

func TestSrv_CancelClaim_Rejected(t *testing.T) {
	tt := []struct {
		name   string
		caller string
		claim  *entities.Claim
		err    error

		kind error
	}{
		{
			name:   "not_found",
			caller: "claimer",
			err:    storageinterface.ErrNotFound,
			kind:   service.ErrNotFound,
		},
		{
			name:   "poster",
			caller: "poster",
			claim:  pendingClaim(),
			kind:   service.ErrPermissionDenied,
		},
		{
			name:   "timed_out",
			caller: "claimer",
			claim: func() *entities.Claim {
				c := pendingClaim()
				c.Status = entities.ClaimStatusTimedOut
				return c
			}(),
			kind: service.ErrFailedPrecondition,
		},
	}

	for i := range tt {
		tc := tt[i]

		t.Run(tc.name, func(t *testing.T) {
			s, srv := newTestService(t, DefaultConfig())

			s.EXPECT().GetClaimForUpdate(gomock.Any(), "claim").Return(tc.claim, tc.err)

			requireKind(t, srv.CancelClaim(context.Background(), tc.caller, "claim"), tc.kind)
		})
	}
}

func TestSrv_CancelClaim(t *testing.T) {
	tt := []struct {
		name    string
		restore bool
		partial bool

		units map[string]int32
	}{
		{
			name: "single",
		},
		{
			name:    "partial_keeps_quantity",
			partial: true,
		},
		{
			name:    "partial_restores_quantity",
			restore: true,
			partial: true,
			units:   map[string]int32{"post": 1},
		},
		{
			name:    "single_with_restore",
			restore: true,
		},
	}

	for i := range tt {
		tc := tt[i]

		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.RestoreQuantity = tc.restore

			s, srv := newTestService(t, cfg)

			c := pendingClaim()
			c.Partial = tc.partial

			s.EXPECT().GetClaimForUpdate(gomock.Any(), "claim").Return(c, nil)
			s.EXPECT().SetClaimStatus(gomock.Any(), "claim", entities.ClaimStatusCancelled, testNow).Return(nil)
			s.EXPECT().ReleasePosts(gomock.Any(), []string{"claim"}).Return(nil)
			if tc.units != nil {
				s.EXPECT().RestorePostUnits(gomock.Any(), tc.units).Return(nil)
			}
			s.EXPECT().UpdateUserCounters(gomock.Any(), "claimer", storageinterface.UserCountersDelta{
				ActiveClaims: -1,
			}).Return(nil)
			s.EXPECT().CreateNotifications(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, n []*entities.Notification) error {
				require.Len(t, n, 1)
				assert.Equal(t, "poster", n[0].UserID)
				return nil
			})

			require.NoError(t, srv.CancelClaim(context.Background(), "claimer", "claim"))
		})
	}
}

func TestSrv_GetClaim(t *testing.T) {
	s, srv := newTestService(t, DefaultConfig())

	s.EXPECT().GetClaim(gomock.Any(), "claim").Return(pendingClaim(), nil).Times(3)

	c, err := srv.GetClaim(context.Background(), "claimer", "claim")
	require.NoError(t, err)
	require.Equal(t, "ABC123", c.PickupCode)

	c, err = srv.GetClaim(context.Background(), "poster", "claim")
	require.NoError(t, err)
	require.Empty(t, c.PickupCode)

	_, err = srv.GetClaim(context.Background(), "stranger", "claim")
	requireKind(t, err, service.ErrPermissionDenied)
}

func TestSrv_SweepExpiredClaims(t *testing.T) {
	s, srv := newTestService(t, DefaultConfig())

	expired := []*entities.ExpiredClaim{
		{ClaimID: "c1", ClaimerID: "alice", PosterID: "poster", PostID: "p1"},
		{ClaimID: "c2", ClaimerID: "bob", PosterID: "poster", PostID: "p2", Partial: true},
		{ClaimID: "c3", ClaimerID: "alice", PosterID: "poster", PostID: "p3"},
	}

	gomock.InOrder(
		s.EXPECT().ExpireDueClaims(gomock.Any(), testNow).Return(expired, nil),
		s.EXPECT().ReleasePosts(gomock.Any(), []string{"c1", "c2", "c3"}).Return(nil),
		s.EXPECT().UpdateUserCounters(gomock.Any(), "alice", storageinterface.UserCountersDelta{
			ActiveClaims:  -2,
			ExpiredClaims: 2,
		}).Return(nil),
		s.EXPECT().UpdateUserCounters(gomock.Any(), "bob", storageinterface.UserCountersDelta{
			ActiveClaims:  -1,
			ExpiredClaims: 1,
		}).Return(nil),
		s.EXPECT().CreateNotifications(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, n []*entities.Notification) error {
			assert.Len(t, n, 6)
			return nil
		}),
	)

	n, err := srv.SweepExpiredClaims(context.Background())
	require.NoError(t, err)
	require.Equal(t, 3, n)
}

func TestSrv_SweepExpiredClaims_Nothing(t *testing.T) {
	s, srv := newTestService(t, DefaultConfig())

	s.EXPECT().ExpireDueClaims(gomock.Any(), testNow).Return(nil, nil)

	n, err := srv.SweepExpiredClaims(context.Background())
	require.NoError(t, err)
	require.Zero(t, n)
}

func TestSrv_SweepExpiredClaims_Fail(t *testing.T) {
	s, srv := newTestService(t, DefaultConfig())

	s.EXPECT().ExpireDueClaims(gomock.Any(), testNow).Return([]*entities.ExpiredClaim{
		{ClaimID: "c1", ClaimerID: "alice", PosterID: "poster", PostID: "p1"},
	}, nil)
	s.EXPECT().ReleasePosts(gomock.Any(), []string{"c1"}).Return(context.DeadlineExceeded)

	n, err := srv.SweepExpiredClaims(context.Background())
	require.True(t, errors.Is(err, context.DeadlineExceeded))
	require.Zero(t, n)
}

func TestSrv_HandleChange_ClaimStatusChanged(t *testing.T) {
	s, srv := newTestService(t, DefaultConfig())

	u := rookie("claimer")
	u.CompletedClaims = 8
	u.ExpiredClaims = 2

	s.EXPECT().MarkEventProcessed(gomock.Any(), uint64(7), testNow).Return(nil)
	s.EXPECT().GetUserForUpdate(gomock.Any(), "claimer").Return(u, nil)
	s.EXPECT().SetUserStanding(gomock.Any(), "claimer", entities.Standing{
		TrustScore:       0.8,
		Level:            entities.FoodHero,
		MaxClaimsAllowed: 3,
	}).Return(nil)

	require.NoError(t, srv.HandleChange(context.Background(), &entities.ChangeEvent{
		ID:       7,
		Kind:     entities.ClaimStatusChanged,
		EntityID: "claim",
		Before:   []byte(`{"status":"pending","claimer_id":"claimer","poster_id":"poster"}`),
		After:    []byte(`{"status":"completed","claimer_id":"claimer","poster_id":"poster"}`),
	}))
}

func TestSrv_HandleChange_AlreadyProcessed(t *testing.T) {
	s, srv := newTestService(t, DefaultConfig())

	s.EXPECT().MarkEventProcessed(gomock.Any(), uint64(7), testNow).Return(storageinterface.ErrNotFound)

	require.NoError(t, srv.HandleChange(context.Background(), &entities.ChangeEvent{
		ID:    7,
		Kind:  entities.ClaimStatusChanged,
		After: []byte(`{"status":"completed","claimer_id":"claimer"}`),
	}))
}

func TestSrv_HandleChange_RatingCreated(t *testing.T) {
	tt := []struct {
		name  string
		user  *entities.User
		stars uint8

		standing      entities.Standing
		notifications int
	}{
		{
			name:  "first_rating",
			user:  rookie("poster"),
			stars: 4,
			standing: entities.Standing{
				TrustScore:       0.8,
				Level:            entities.RookieRescuer,
				MaxClaimsAllowed: 1,
			},
			notifications: 1,
		},
		{
			name: "level_up",
			user: &entities.User{
				ID:               "poster",
				TrustScore:       0.8,
				TotalRatings:     4,
				Level:            entities.RookieRescuer,
				MaxClaimsAllowed: 1,
			},
			stars: 4,
			standing: entities.Standing{
				TrustScore:       0.8,
				Level:            entities.FoodHero,
				MaxClaimsAllowed: 3,
			},
			notifications: 2,
		},
	}

	for i := range tt {
		tc := tt[i]

		t.Run(tc.name, func(t *testing.T) {
			s, srv := newTestService(t, DefaultConfig())

			s.EXPECT().MarkEventProcessed(gomock.Any(), uint64(9), testNow).Return(nil)
			s.EXPECT().GetUserForUpdate(gomock.Any(), "poster").Return(tc.user, nil)
			s.EXPECT().UpdateUserCounters(gomock.Any(), "poster", storageinterface.UserCountersDelta{TotalRatings: 1}).Return(nil)
			s.EXPECT().SetUserStanding(gomock.Any(), "poster", gomock.Any()).DoAndReturn(func(_ context.Context, _ string, st entities.Standing) error {
				assert.InDelta(t, tc.standing.TrustScore, st.TrustScore, 1e-9)
				assert.Equal(t, tc.standing.Level, st.Level)
				assert.Equal(t, tc.standing.MaxClaimsAllowed, st.MaxClaimsAllowed)
				return nil
			})
			s.EXPECT().CreateNotifications(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, n []*entities.Notification) error {
				require.Len(t, n, tc.notifications)
				assert.Equal(t, entities.RatingReceivedNotification, n[0].Type)
				if tc.notifications > 1 {
					assert.Equal(t, entities.LevelUpNotification, n[1].Type)
				}
				return nil
			})

			require.NoError(t, srv.HandleChange(context.Background(), &entities.ChangeEvent{
				ID:       9,
				Kind:     entities.RatingCreated,
				EntityID: "rating",
				After:    []byte(`{"poster_id":"poster","claimer_id":"claimer","claim_id":"claim","stars":4}`),
			}))
		})
	}
}

func TestSrv_HandleChange_Fail(t *testing.T) {
	s, srv := newTestService(t, DefaultConfig())

	s.EXPECT().MarkEventProcessed(gomock.Any(), uint64(7), testNow).Return(nil)
	s.EXPECT().GetUserForUpdate(gomock.Any(), "claimer").Return(nil, context.Canceled)

	err := srv.HandleChange(context.Background(), &entities.ChangeEvent{
		ID:    7,
		Kind:  entities.ClaimStatusChanged,
		After: []byte(`{"status":"completed","claimer_id":"claimer"}`),
	})
	require.True(t, errors.Is(err, context.Canceled))
}

func TestSrv_RateClaim(t *testing.T) {
	s, srv := newTestService(t, DefaultConfig())

	c := pendingClaim()
	c.Status = entities.ClaimStatusCompleted

	p := availablePost()
	p.Status = entities.PostStatusCompleted

	s.EXPECT().GetClaimForUpdate(gomock.Any(), "claim").Return(c, nil)
	s.EXPECT().CreateRating(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, r *entities.Rating) error {
		assert.Equal(t, "poster", r.PosterID)
		assert.Equal(t, "claimer", r.ClaimerID)
		assert.EqualValues(t, 5, r.Stars)
		assert.Equal(t, "thanks", r.Comment)
		return nil
	})
	s.EXPECT().DeleteConversationByClaim(gomock.Any(), "claim").Return(nil)
	s.EXPECT().DeleteClaim(gomock.Any(), "claim").Return(nil)
	s.EXPECT().GetPostForUpdate(gomock.Any(), "post").Return(p, nil)
	s.EXPECT().DeletePost(gomock.Any(), "post").Return(nil)

	require.NoError(t, srv.RateClaim(context.Background(), "claimer", "claim", 5, "thanks"))
}

func TestSrv_RateClaim_Rejected(t *testing.T) {
	s, srv := newTestService(t, DefaultConfig())

	requireKind(t, srv.RateClaim(context.Background(), "claimer", "claim", 0, ""), service.ErrInvalidArgument)
	requireKind(t, srv.RateClaim(context.Background(), "claimer", "claim", 6, ""), service.ErrInvalidArgument)

	s.EXPECT().GetClaimForUpdate(gomock.Any(), "claim").Return(pendingClaim(), nil)
	requireKind(t, srv.RateClaim(context.Background(), "claimer", "claim", 5, ""), service.ErrFailedPrecondition)

	c := pendingClaim()
	c.Status = entities.ClaimStatusCompleted
	s.EXPECT().GetClaimForUpdate(gomock.Any(), "claim").Return(c, nil)
	requireKind(t, srv.RateClaim(context.Background(), "poster", "claim", 5, ""), service.ErrPermissionDenied)

	s.EXPECT().GetClaimForUpdate(gomock.Any(), "claim").Return(c, nil)
	s.EXPECT().CreateRating(gomock.Any(), gomock.Any()).Return(storageinterface.ErrAlreadyExists)
	requireKind(t, srv.RateClaim(context.Background(), "claimer", "claim", 5, ""), service.ErrFailedPrecondition)
}

func TestSrv_CreatePost(t *testing.T) {
	s, srv := newTestService(t, DefaultConfig())

	s.EXPECT().GetUserForUpdate(gomock.Any(), "poster").Return(rookie("poster"), nil)
	s.EXPECT().CreatePost(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p *entities.Post) error {
		assert.Equal(t, entities.PostStatusAvailable, p.Status)
		assert.Equal(t, "bread", p.Title)
		assert.EqualValues(t, 2, *p.Quantity)
		assert.Equal(t, testNow, p.CreatedAt)
		return nil
	})

	p, err := srv.CreatePost(context.Background(), &service.CreatePostParams{
		PosterID:  "poster",
		Title:     " bread ",
		Quantity:  int32Ptr(2),
		Location:  entities.Location{Latitude: 10, Longitude: 20},
		ExpiresAt: testNow.Add(time.Hour),
	})
	require.NoError(t, err)
	require.NotEmpty(t, p.ID)

	_, err = srv.CreatePost(context.Background(), &service.CreatePostParams{
		PosterID:  "poster",
		Title:     "bread",
		Quantity:  int32Ptr(0),
		ExpiresAt: testNow.Add(time.Hour),
	})
	requireKind(t, err, service.ErrInvalidArgument)

	_, err = srv.CreatePost(context.Background(), &service.CreatePostParams{
		PosterID:  "poster",
		Title:     "bread",
		ExpiresAt: testNow,
	})
	requireKind(t, err, service.ErrInvalidArgument)
}

func TestSrv_ListAvailablePosts(t *testing.T) {
	s, srv := newTestService(t, DefaultConfig())

	caller := "claimer"
	s.EXPECT().ListAvailablePosts(gomock.Any(), &storageinterface.ListPostsParams{
		Now:           testNow,
		ExcludePoster: &caller,
		Limit:         20,
	}).Return([]*entities.Post{availablePost()}, nil)

	p, err := srv.ListAvailablePosts(context.Background(), caller, 20, nil)
	require.NoError(t, err)
	require.Len(t, p, 1)
}

func TestSrv_SetupProfile(t *testing.T) {
	s, srv := newTestService(t, DefaultConfig())

	s.EXPECT().GetUserForUpdate(gomock.Any(), "user").Return(nil, storageinterface.ErrNotFound)
	s.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(storageinterface.ErrAlreadyExists)
	s.EXPECT().GetUserForUpdate(gomock.Any(), "user").Return(rookie("user"), nil)
	s.EXPECT().SetDisplayName(gomock.Any(), "user", "Alice").Return(nil)

	u, err := srv.SetupProfile(context.Background(), "user", " Alice ")
	require.NoError(t, err)
	require.Equal(t, "Alice", u.DisplayName)
	require.Equal(t, entities.RookieRescuer, u.Level)

	_, err = srv.SetupProfile(context.Background(), "user", "")
	requireKind(t, err, service.ErrInvalidArgument)
}

func TestSrv_GetUser(t *testing.T) {
	s, srv := newTestService(t, DefaultConfig())

	s.EXPECT().GetUser(gomock.Any(), "user").Return(rookie("user"), nil)
	u, err := srv.GetUser(context.Background(), "user")
	require.NoError(t, err)
	require.Equal(t, "user", u.ID)

	s.EXPECT().GetUser(gomock.Any(), "user").Return(nil, storageinterface.ErrNotFound)
	_, err = srv.GetUser(context.Background(), "user")
	requireKind(t, err, service.ErrNotFound)
}

func TestGeneratePickupCode(t *testing.T) {
	seen := make(map[string]struct{})

	for i := 0; i < 100; i++ {
		c, err := generatePickupCode()
		require.NoError(t, err)
		require.Regexp(t, regexp.MustCompile(`^[A-Z0-9]{6}$`), c)
		seen[c] = struct{}{}
	}

	require.Greater(t, len(seen), 90)
}
