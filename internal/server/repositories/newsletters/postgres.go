package newsletters

import (
	"context"
	"fmt"

	"github.com/mpetrovs/newsbrief/internal/dbx"
	"github.com/mpetrovs/newsbrief/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List(ctx context.Context) ([]models.Newsletter, error) {
	query :=
		`SELECT id, subject, description, image_url, created_at FROM newsletters
		 ORDER BY created_at DESC
		 `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []models.Newsletter
	for rows.Next() {
		var n models.Newsletter
		if err := rows.Scan(&n.ID, &n.Subject, &n.Description, &n.ImageURL, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}
