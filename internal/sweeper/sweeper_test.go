package sweeper

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/reswipe/reswipe/internal/service/mock"
)

func TestSweeper_RunOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	srv := mock.NewMockService(ctrl)
	s := New(srv, time.Minute, true)

	srv.EXPECT().SweepExpiredClaims(gomock.Any()).Return(3, nil)
	srv.EXPECT().DeleteExpiredPosts(gomock.Any()).Return(int64(2), nil)

	s.RunOnce(context.Background())

	m, err := s.Ping(context.Background())
	require.NoError(t, err)
	require.Equal(t, 3, m.(map[string]interface{})["released"])
	require.Contains(t, m, "last_run")
}

func TestSweeper_RunOnce_Fail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	srv := mock.NewMockService(ctrl)
	s := New(srv, time.Minute, true)

	// posts cleanup is skipped when the sweep fails
	srv.EXPECT().SweepExpiredClaims(gomock.Any()).Return(0, context.DeadlineExceeded)

	s.RunOnce(context.Background())

	_, err := s.Ping(context.Background())
	require.Error(t, err)

	srv.EXPECT().SweepExpiredClaims(gomock.Any()).Return(0, nil)
	srv.EXPECT().DeleteExpiredPosts(gomock.Any()).Return(int64(0), nil)

	s.RunOnce(context.Background())

	_, err = s.Ping(context.Background())
	require.NoError(t, err)
}

func TestSweeper_Run(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	srv := mock.NewMockService(ctrl)
	s := New(srv, 10*time.Millisecond, false)

	ctx, cancel := context.WithCancel(context.Background())

	calls := 0
	srv.EXPECT().SweepExpiredClaims(gomock.Any()).DoAndReturn(func(context.Context) (int, error) {
		calls++
		if calls == 3 {
			cancel()
		}
		return 0, nil
	}).MinTimes(3)

	done := make(chan error)
	go func() {
		done <- s.Run(ctx)
	}()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("sweeper is not stopped")
	}
}
