// Package middleware contains http middlewares of the service.
package middleware

import (
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/reswipe/reswipe/internal/middleware/memory"
)

const cacheSize = 128

// Storage ...
type Storage interface {
	Get(key string) []byte
	Set(key string, content []byte, duration time.Duration)
}

// Cached caches successful responses of the handler by request uri.
func Cached(ttl time.Duration, handler http.HandlerFunc) http.HandlerFunc {
	return CachedWith(memory.NewStorage(cacheSize), ttl, handler)
}

// CachedWith is Cached over custom storage.
func CachedWith(storage Storage, ttl time.Duration, handler http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if content := storage.Get(r.RequestURI); content != nil {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write(content)
			return
		}

		c := httptest.NewRecorder()
		handler(c, r)

		for k, v := range c.Header() {
			w.Header()[k] = v
		}

		w.WriteHeader(c.Code)
		content := c.Body.Bytes()

		if c.Code == http.StatusOK {
			storage.Set(r.RequestURI, content, ttl)
		}

		_, _ = w.Write(content)
	}
}
