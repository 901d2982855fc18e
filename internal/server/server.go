// Package server ReSwipe
//
// The ReSwipe is a service for peer-to-peer surplus food sharing: posting food, claiming it and confirming pickups.
//
//     Schemes: https
//     BasePath: /v1
//     Version: 1.0.0
//
//     Produces:
//     - application/json
//     Consumes:
//     - application/json
//
// swagger:meta
package server

import (
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/cors"
	"golang.org/x/time/rate"

	"github.com/reswipe/reswipe/internal/api"
	mm "github.com/reswipe/reswipe/internal/middleware"
	"github.com/reswipe/reswipe/internal/service"
)

//go:generate swagger generate spec -t swagger -m -c . -o ../../static/swagger.json

const maxBodySize = 4096

// Config ...
type Config struct {
	Timeout time.Duration
	// AuthHeader carries caller id verified by the identity provider in front of the service.
	AuthHeader string
	// ClaimsRate limits claim mutations per caller.
	ClaimsRate  rate.Limit
	ClaimsBurst int
	// LeadersTTL is a lifetime of cached leaderboard.
	LeadersTTL time.Duration
}

type server struct {
	s service.Service
}

// SetupRouter setups handlers to chi router.
func SetupRouter(s service.Service, r chi.Router, c Config) {
	r.Use(
		middleware.RequestID,
		api.LoggerMiddleware,
		middleware.StripSlashes,
		cors.AllowAll().Handler,
		middleware.Recoverer,
		middleware.Timeout(c.Timeout),
		api.BodyLimiterMiddleware(maxBodySize),
		mm.Identity(c.AuthHeader),
	)

	srv := server{
		s: s,
	}

	limiter := mm.NewRateLimiter(c.ClaimsRate, c.ClaimsBurst)

	r.Route("/v1", func(r chi.Router) {
		r.Get("/posts", srv.listPosts)
		r.Get("/posts/{id}", srv.getPost)
		r.Get("/users/{id}", srv.getUser)
		r.Get("/leaders", mm.Cached(c.LeadersTTL, srv.listLeaders))

		r.Group(func(r chi.Router) {
			r.Use(mm.RequireCaller)

			r.Post("/posts", srv.createPost)
			r.Put("/profile", srv.setupProfile)
			r.Get("/notifications", srv.listNotifications)
			r.Get("/claims/{id}", srv.getClaim)

			r.Group(func(r chi.Router) {
				r.Use(limiter.Handler)

				r.Post("/claims", srv.createClaim)
				r.Post("/claims/{id}/confirm", srv.confirmPickup)
				r.Post("/claims/{id}/cancel", srv.cancelClaim)
				r.Post("/claims/{id}/rating", srv.rateClaim)
			})
		})
	})
}
