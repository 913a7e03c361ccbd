// Package session holds the in-memory record of the currently authenticated
// user and their access token.
//
// The store lives for the lifetime of the process and starts empty. User and
// token are always set and cleared together; no observer can ever see one
// without the other. The store is written only from the client's interactive
// goroutine, so it carries no locking.
package session

import "github.com/mpetrovs/newsbrief/internal/client/models"

// Navigator is the slice of the navigation controller the session store
// needs: logout resets the stack so that back-navigation cannot reach
// authenticated screens.
type Navigator interface {
	Reset(name string)
}

// Store owns the session state. Screens receive it by injection rather than
// reaching for a global.
type Store struct {
	nav       Navigator
	authRoute string

	user  *models.User
	token string
}

// New returns an empty store. authRoute names the screen the navigation
// stack collapses to on logout.
func New(nav Navigator, authRoute string) *Store {
	return &Store{nav: nav, authRoute: authRoute}
}

// Login overwrites both fields unconditionally. Calling it twice with the
// same arguments is indistinguishable from calling it once.
func (s *Store) Login(user *models.User, token string) {
	s.user = user
	s.token = token
}

// Logout clears both fields and resets the navigation stack to the auth
// screen, discarding all back-history.
func (s *Store) Logout() {
	s.user = nil
	s.token = ""
	if s.nav != nil {
		s.nav.Reset(s.authRoute)
	}
}

// User returns the cached user record, or nil when logged out.
func (s *Store) User() *models.User {
	return s.user
}

// Token returns the access token, or "" when logged out.
func (s *Store) Token() string {
	return s.token
}

// LoggedIn reports whether a session is active.
func (s *Store) LoggedIn() bool {
	return s.token != ""
}

// SetUser refreshes the cached user record without touching the token.
// It is a no-op when logged out, preserving the both-or-neither invariant.
func (s *Store) SetUser(user *models.User) {
	if s.token == "" {
		return
	}
	s.user = user
}
