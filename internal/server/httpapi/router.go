// Package httpapi is the REST surface of the server. Routes are registered
// on a plain http.ServeMux using method patterns; cross-cutting behavior
// (request logging, token auth, per-IP rate limiting) is composed per route.
package httpapi

import (
	"net/http"

	"github.com/mpetrovs/newsbrief/internal/logging"
	"github.com/mpetrovs/newsbrief/internal/server/config"
	"github.com/mpetrovs/newsbrief/internal/server/services"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux *http.ServeMux

	logger      logging.Logger
	users       *services.UserService
	newsletters *services.NewsletterService
	avatars     *services.AvatarService

	secret    []byte
	authLimit Middleware
}

func NewRouter(
	cfg *config.Config,
	logger logging.Logger,
	users *services.UserService,
	newsletters *services.NewsletterService,
	avatars *services.AvatarService,
) *Router {
	return &Router{
		Mux:         http.NewServeMux(),
		logger:      logger,
		users:       users,
		newsletters: newsletters,
		avatars:     avatars,
		secret:      []byte(cfg.SecretKey),
		authLimit:   rateLimitByIP(cfg.AuthRequestsPerMinute, cfg.AuthRateBurst),
	}
}

// Handler returns the mux wrapped with the middleware applied to every route.
func (r *Router) Handler() http.Handler {
	return chain(r.Mux, loggingMiddleware(r.logger))
}

// limited guards credential-guessing surfaces with the per-IP budget.
func (r *Router) limited(h http.HandlerFunc) http.Handler {
	return chain(h, r.authLimit)
}

// protected requires a valid access token.
func (r *Router) protected(h http.HandlerFunc) http.Handler {
	return chain(h, authMiddleware(r.secret))
}

func (r *Router) ApplyRoutes() {
	r.Mux.Handle("POST /api/users/signup", r.limited(r.handleSignup))
	r.Mux.Handle("POST /api/users/verify", r.limited(r.handleVerifySignup))
	r.Mux.Handle("POST /api/users/login", r.limited(r.handleLogin))
	r.Mux.Handle("POST /api/users/forgot-password", r.limited(r.handleForgotPassword))
	r.Mux.Handle("POST /api/users/verify-reset-otp", r.limited(r.handleVerifyResetOTP))
	r.Mux.Handle("POST /api/users/reset-password", r.limited(r.handleResetPassword))

	r.Mux.Handle("GET /api/users/me", r.protected(r.handleMe))
	r.Mux.Handle("PUT /api/users/update", r.protected(r.handleUpdateProfile))
	r.Mux.Handle("DELETE /api/users/delete", r.protected(r.handleDeleteAccount))
	r.Mux.Handle("POST /api/users/avatar-upload-url", r.protected(r.handleAvatarUploadURL))

	r.Mux.HandleFunc("GET /api/newsletters", r.handleNewsletters)
}
