package httpapi

import (
	"net/http"

	"github.com/mpetrovs/newsbrief/internal/server/models"
)

// newsletterDTO matches the feed shape clients expect, including the
// Mongo-style "_id" key kept for compatibility.
type newsletterDTO struct {
	ID          string `json:"_id"`
	Subject     string `json:"subject"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl,omitempty"`
}

func toNewsletterDTOs(items []models.Newsletter) []newsletterDTO {
	out := make([]newsletterDTO, 0, len(items))
	for _, n := range items {
		out = append(out, newsletterDTO{
			ID:          n.ID,
			Subject:     n.Subject,
			Description: n.Description,
			ImageURL:    n.ImageURL,
		})
	}
	return out
}

func (rt *Router) handleNewsletters(w http.ResponseWriter, r *http.Request) {
	items, err := rt.newsletters.List(r.Context())
	if err != nil {
		rt.logger.Error(r.Context(), "list newsletters", "error", err)
		writeError(w, http.StatusInternalServerError, "Server error")
		return
	}

	writeJSON(w, http.StatusOK, toNewsletterDTOs(items))
}
