package otps

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mpetrovs/newsbrief/internal/common"
	"github.com/mpetrovs/newsbrief/internal/dbx"
	"github.com/mpetrovs/newsbrief/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, otp *models.OTP) (*models.OTP, error) {

	del :=
		`DELETE FROM otps
		 WHERE user_id = $1 AND purpose = $2
		 `

	if _, err := r.db.ExecContext(ctx, del, otp.UserID, otp.Purpose); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	query :=
		`INSERT INTO otps (user_id, code, purpose, expires_at)
         VALUES ($1, $2, $3, $4)
		 RETURNING id
		 `

	err := r.db.QueryRowContext(ctx, query,
		otp.UserID, otp.Code, otp.Purpose, otp.ExpiresAt).Scan(&otp.ID)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return otp, nil
}

func (r *PostgresRepository) GetActive(ctx context.Context, userID string, purpose models.OTPPurpose) (*models.OTP, error) {
	query :=
		`SELECT id, user_id, code, purpose, verified, expires_at, created_at FROM otps
		 WHERE user_id = $1 AND purpose = $2
		 ORDER BY created_at DESC
		 LIMIT 1
		 `

	otp := &models.OTP{}
	err := r.db.QueryRowContext(ctx, query, userID, purpose).Scan(
		&otp.ID, &otp.UserID, &otp.Code, &otp.Purpose, &otp.Verified, &otp.ExpiresAt, &otp.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return otp, nil
}

func (r *PostgresRepository) MarkVerified(ctx context.Context, id string) error {
	query :=
		`UPDATE otps SET verified = TRUE
		 WHERE id = $1
		 `

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	query :=
		`DELETE FROM otps
		 WHERE id = $1
		 `

	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
