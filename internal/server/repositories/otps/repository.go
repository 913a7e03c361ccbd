package otps

import (
	"context"

	"github.com/mpetrovs/newsbrief/internal/server/models"
)

type Repository interface {
	// Create replaces any earlier code the user holds for the same purpose.
	Create(ctx context.Context, otp *models.OTP) (*models.OTP, error)
	GetActive(ctx context.Context, userID string, purpose models.OTPPurpose) (*models.OTP, error)
	MarkVerified(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}
