// Package api is the REST client for the newsbrief backend. Each call is a
// single attempt with no retries; a failure stands until the user resubmits.
package api

import (
	"context"

	"github.com/mpetrovs/newsbrief/internal/client/models"
)

// LoginResult is the success payload of /api/users/login.
type LoginResult struct {
	User  *models.User `json:"user"`
	Token string       `json:"token"`
}

// Client defines the backend surface consumed by the screens.
//
// Methods returning a string return the server's "msg" field. Authenticated
// calls take the access token explicitly; the client holds no session state
// of its own.
type Client interface {
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	Signup(ctx context.Context, name, email, password string) (string, error)
	VerifySignupOTP(ctx context.Context, email, otp string) (string, error)
	ForgotPassword(ctx context.Context, email string) (string, error)
	VerifyResetOTP(ctx context.Context, email, otp string) (string, error)
	ResetPassword(ctx context.Context, email, password string) (string, error)

	CurrentUser(ctx context.Context, token string) (*models.User, error)
	UpdateProfile(ctx context.Context, token, name string) (*models.User, error)
	DeleteAccount(ctx context.Context, token string) (string, error)
	AvatarUploadURL(ctx context.Context, token string) (uploadURL, publicURL string, err error)

	Newsletters(ctx context.Context) ([]models.Newsletter, error)
}
