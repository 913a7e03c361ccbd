// Package models defines the client-side views of server-owned records.
// The client holds cached copies fetched on demand; nothing here is kept in
// sync with the server automatically.
package models

// User is the profile record as served by /api/users/me. ID is the server's
// identifier; Avatar and Bio may be empty.
type User struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Avatar string `json:"avatar,omitempty"`
	Bio    string `json:"bio,omitempty"`
}

// Newsletter is a single feed item from /api/newsletters. The "_id" key is
// fixed by the backend wire contract.
type Newsletter struct {
	ID          string `json:"_id"`
	Subject     string `json:"subject"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
}

// FallbackNewsletterImageURL substitutes for items published without artwork.
const FallbackNewsletterImageURL = "https://source.unsplash.com/featured/?building"

// Image returns the newsletter artwork URL, falling back to a stock image
// when the item carries none.
func (n Newsletter) Image() string {
	if n.ImageURL == "" {
		return FallbackNewsletterImageURL
	}
	return n.ImageURL
}
