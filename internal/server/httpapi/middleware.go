package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/mpetrovs/newsbrief/internal/common"
	"github.com/mpetrovs/newsbrief/internal/logging"
	"github.com/mpetrovs/newsbrief/internal/server/auth"
)

// Middleware wraps an http.Handler.
type Middleware func(http.Handler) http.Handler

// chain applies middlewares right to left, so the first listed runs first.
func chain(h http.Handler, mws ...Middleware) http.Handler {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return h
}

type ctxKey string

const ctxKeyUserID ctxKey = "user_id"

// userIDFromContext returns the authenticated user ID, if any.
func userIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(ctxKeyUserID).(string)
	return id, ok
}

// statusRecorder captures the response code for the request log.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// loggingMiddleware logs one line per request.
func loggingMiddleware(logger logging.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(rec, r)

			logger.Info(r.Context(), "request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", rec.status,
				"duration", time.Since(start).String(),
			)
		})
	}
}

// authMiddleware validates the access token header and stores the user ID in
// the request context. Missing, malformed, and expired tokens are all a 401.
func authMiddleware(secret []byte) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := r.Header.Get(common.AccessTokenHeaderName)
			if token == "" {
				writeError(w, http.StatusUnauthorized, "No token, authorization denied")
				return
			}

			userID, err := auth.GetUserIDFromToken(token, secret)
			if err != nil {
				writeError(w, http.StatusUnauthorized, "Token is not valid")
				return
			}

			ctx := context.WithValue(r.Context(), ctxKeyUserID, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
