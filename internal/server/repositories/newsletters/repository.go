package newsletters

import (
	"context"

	"github.com/mpetrovs/newsbrief/internal/server/models"
)

type Repository interface {
	// List returns the feed, newest first.
	List(ctx context.Context) ([]models.Newsletter, error)
}
