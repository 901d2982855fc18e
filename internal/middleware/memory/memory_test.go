package memory

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestStorage(t *testing.T) {
	now := time.Unix(1000, 0)

	s := NewStorage(2)
	s.now = func() time.Time { return now }

	require.Nil(t, s.Get("a"))

	s.Set("a", []byte("1"), time.Minute)
	require.Equal(t, []byte("1"), s.Get("a"))

	now = now.Add(time.Minute + time.Second)
	require.Nil(t, s.Get("a"))
}

func TestStorage_Evicts(t *testing.T) {
	s := NewStorage(2)

	s.Set("a", []byte("1"), time.Minute)
	s.Set("b", []byte("2"), time.Minute)
	s.Set("c", []byte("3"), time.Minute)

	require.Nil(t, s.Get("a"))
	require.Equal(t, []byte("2"), s.Get("b"))
	require.Equal(t, []byte("3"), s.Get("c"))
}
