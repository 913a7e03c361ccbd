package models

import "time"

// Newsletter is one item of the home feed.
type Newsletter struct {
	ID          string
	Subject     string
	Description string
	ImageURL    string
	CreatedAt   time.Time
}
