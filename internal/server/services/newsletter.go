package services

import (
	"context"
	"database/sql"

	"github.com/mpetrovs/newsbrief/internal/server/models"
	"github.com/mpetrovs/newsbrief/internal/server/repositories/repomanager"
)

// NewsletterService serves the home feed.
type NewsletterService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewNewsletterService(db *sql.DB, m repomanager.RepositoryManager) *NewsletterService {
	return &NewsletterService{db: db, repomanager: m}
}

func (s *NewsletterService) List(ctx context.Context) ([]models.Newsletter, error) {
	return s.repomanager.Newsletters(s.db).List(ctx)
}
