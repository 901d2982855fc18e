package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/reswipe/reswipe/internal/api"
)

type callerKey struct{}

// Caller returns id of the authenticated caller or empty string.
func Caller(ctx context.Context) string {
	id, _ := ctx.Value(callerKey{}).(string)
	return id
}

// WithCaller puts caller id into the context.
func WithCaller(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, callerKey{}, id)
}

// Identity reads caller id verified by the upstream identity provider from the header.
func Identity(header string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if id := strings.TrimSpace(r.Header.Get(header)); id != "" {
				r = r.WithContext(WithCaller(r.Context(), id))
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireCaller rejects requests without caller identity.
func RequireCaller(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if Caller(r.Context()) == "" {
			api.WriteKindError(w, http.StatusUnauthorized, "unauthenticated", "authentication required")
			return
		}

		next.ServeHTTP(w, r)
	})
}
