// Package pending tracks the email address of an in-progress signup. The
// value is written when the signup form is submitted and consumed exactly
// once by a successful OTP verification; it survives process restarts but not
// a wipe of the local database.
package pending

import (
	"context"

	"github.com/mpetrovs/newsbrief/internal/client/repositories/metadata"
)

const signupEmailKey = "signup_email"

type SignupStore struct {
	repo metadata.Repository
}

func NewSignupStore(repo metadata.Repository) *SignupStore {
	return &SignupStore{repo: repo}
}

// Set records the email of the signup awaiting verification.
func (s *SignupStore) Set(ctx context.Context, email string) error {
	return s.repo.Set(ctx, signupEmailKey, []byte(email))
}

// Get returns the pending email, or "" when no signup is in progress.
func (s *SignupStore) Get(ctx context.Context) (string, error) {
	v, err := s.repo.Get(ctx, signupEmailKey)
	if err != nil {
		return "", err
	}
	return string(v), nil
}

// Clear removes the pending email. Called after a successful verification so
// a second attempt fails the precondition check.
func (s *SignupStore) Clear(ctx context.Context) error {
	return s.repo.Delete(ctx, signupEmailKey)
}
