package models

import "time"

// User is an account record. PasswordHash is a bcrypt hash and never leaves
// the server.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Avatar       string
	Bio          string
	Verified     bool
	CreatedAt    time.Time
}
