package users

import (
	"context"

	"github.com/mpetrovs/newsbrief/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	UpdateName(ctx context.Context, id, name string) (*models.User, error)
	UpdatePassword(ctx context.Context, id, passwordHash string) error
	UpdateAvatar(ctx context.Context, id, avatar string) error
	MarkVerified(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}
