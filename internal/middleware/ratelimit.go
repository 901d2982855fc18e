package middleware

import (
	"net/http"
	"sync"

	lru "github.com/hashicorp/golang-lru"
	"golang.org/x/time/rate"

	"github.com/reswipe/reswipe/internal/api"
)

const maxLimiters = 10000

// RateLimiter limits requests per caller. Anonymous requests are not limited.
type RateLimiter struct {
	limit rate.Limit
	burst int

	mu       sync.Mutex
	limiters *lru.Cache
}

// NewRateLimiter ...
func NewRateLimiter(limit rate.Limit, burst int) *RateLimiter {
	c, err := lru.New(maxLimiters)
	if err != nil {
		panic(err)
	}

	return &RateLimiter{
		limit:    limit,
		burst:    burst,
		limiters: c,
	}
}

func (l *RateLimiter) get(id string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	if v, ok := l.limiters.Get(id); ok {
		return v.(*rate.Limiter)
	}

	v := rate.NewLimiter(l.limit, l.burst)
	l.limiters.Add(id, v)

	return v
}

// Handler ...
func (l *RateLimiter) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if id := Caller(r.Context()); id != "" && !l.get(id).Allow() {
			api.WriteKindError(w, http.StatusTooManyRequests, "rate_limited", "too many requests, try again later")
			return
		}

		next.ServeHTTP(w, r)
	})
}
