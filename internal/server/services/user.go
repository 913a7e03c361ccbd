package services

import (
	"context"
	"crypto/subtle"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/mpetrovs/newsbrief/internal/common"
	"github.com/mpetrovs/newsbrief/internal/dbx"
	"github.com/mpetrovs/newsbrief/internal/server/auth"
	"github.com/mpetrovs/newsbrief/internal/server/config"
	"github.com/mpetrovs/newsbrief/internal/server/mail"
	"github.com/mpetrovs/newsbrief/internal/server/models"
	"github.com/mpetrovs/newsbrief/internal/server/repositories/repomanager"
)

// UserService implements the account lifecycle: signup with email
// verification, login, the two-step password reset, and profile management.
type UserService struct {
	db                          *sql.DB
	repomanager                 repomanager.RepositoryManager
	mail                        mail.Sender
	jwtSecret                   []byte
	accessTokenValidityDuration time.Duration
	otpValidityDuration         time.Duration
}

func NewUserService(db *sql.DB, m repomanager.RepositoryManager, sender mail.Sender, cfg *config.Config) *UserService {
	return &UserService{
		db:                          db,
		repomanager:                 m,
		mail:                        sender,
		jwtSecret:                   []byte(cfg.SecretKey),
		accessTokenValidityDuration: cfg.AccessTokenValidityDuration,
		otpValidityDuration:         cfg.OTPValidityDuration,
	}
}

// generateOTP is a seam so tests can pin the issued code.
var generateOTP = common.GenerateOTP

func (s *UserService) issueOTP(ctx context.Context, tx dbx.DBTX, userID string, purpose models.OTPPurpose) (*models.OTP, error) {
	code, err := generateOTP()
	if err != nil {
		return nil, fmt.Errorf("error generating otp: %w", err)
	}

	otp := &models.OTP{
		UserID:    userID,
		Code:      code,
		Purpose:   purpose,
		ExpiresAt: time.Now().Add(s.otpValidityDuration),
	}

	return s.repomanager.OTPs(tx).Create(ctx, otp)
}

// SignUp creates an unverified account and emails a signup code. An address
// that already belongs to an account fails with ErrorAlreadyExists.
func (s *UserService) SignUp(ctx context.Context, name, email, password string) error {

	userRepo := s.repomanager.Users(s.db)

	_, err := userRepo.GetByEmail(ctx, email)
	if err == nil {
		return common.ErrorAlreadyExists
	}
	if !errors.Is(err, common.ErrorNotFound) {
		return fmt.Errorf("error checking email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("error hashing password: %w", err)
	}

	var otp *models.OTP
	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		user, err := s.repomanager.Users(tx).Create(ctx, &models.User{
			Name:         name,
			Email:        email,
			PasswordHash: string(hash),
		})
		if err != nil {
			return fmt.Errorf("error creating user: %w", err)
		}

		otp, err = s.issueOTP(ctx, tx, user.ID, models.OTPPurposeSignup)
		return err
	})
	if err != nil {
		return err
	}

	return s.mail.SendOTP(ctx, email, otp.Code, "Verify your newsbrief account")
}

// VerifySignup checks the signup code and activates the account. The code is
// consumed whether or not it had already expired.
func (s *UserService) VerifySignup(ctx context.Context, email, code string) error {

	user, err := s.repomanager.Users(s.db).GetByEmail(ctx, email)
	if err != nil {
		return err
	}

	otp, err := s.repomanager.OTPs(s.db).GetActive(ctx, user.ID, models.OTPPurposeSignup)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrOTPInvalid
		}
		return err
	}

	if otp.Expired(time.Now()) {
		_ = s.repomanager.OTPs(s.db).Delete(ctx, otp.ID)
		return common.ErrOTPExpired
	}
	if subtle.ConstantTimeCompare([]byte(otp.Code), []byte(code)) != 1 {
		return common.ErrOTPInvalid
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.repomanager.Users(tx).MarkVerified(ctx, user.ID); err != nil {
			return err
		}
		return s.repomanager.OTPs(tx).Delete(ctx, otp.ID)
	})
}

// Login verifies the credentials and mints an access token. Unknown
// addresses, wrong passwords, and unverified accounts all fail with
// ErrorUnauthorized so responses do not reveal which one it was.
func (s *UserService) Login(ctx context.Context, email, password string) (*models.User, string, error) {

	user, err := s.repomanager.Users(s.db).GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, "", common.ErrorUnauthorized
		}
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", common.ErrorUnauthorized
	}
	if !user.Verified {
		return nil, "", common.ErrorUnauthorized
	}

	token, err := auth.GenerateToken(user.ID, s.jwtSecret, s.accessTokenValidityDuration)
	if err != nil {
		return nil, "", fmt.Errorf("error generating token: %w", err)
	}

	return user, token, nil
}

// ForgotPassword issues a reset code for an existing account.
func (s *UserService) ForgotPassword(ctx context.Context, email string) error {

	user, err := s.repomanager.Users(s.db).GetByEmail(ctx, email)
	if err != nil {
		return err
	}

	otp, err := s.issueOTP(ctx, s.db, user.ID, models.OTPPurposeReset)
	if err != nil {
		return err
	}

	return s.mail.SendOTP(ctx, email, otp.Code, "Your newsbrief password reset code")
}

// VerifyResetOTP checks the reset code and marks it verified, unlocking
// ResetPassword for that user.
func (s *UserService) VerifyResetOTP(ctx context.Context, email, code string) error {

	user, err := s.repomanager.Users(s.db).GetByEmail(ctx, email)
	if err != nil {
		return err
	}

	otpRepo := s.repomanager.OTPs(s.db)
	otp, err := otpRepo.GetActive(ctx, user.ID, models.OTPPurposeReset)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrOTPInvalid
		}
		return err
	}

	if otp.Expired(time.Now()) {
		_ = otpRepo.Delete(ctx, otp.ID)
		return common.ErrOTPExpired
	}
	if subtle.ConstantTimeCompare([]byte(otp.Code), []byte(code)) != 1 {
		return common.ErrOTPInvalid
	}

	return otpRepo.MarkVerified(ctx, otp.ID)
}

// ResetPassword sets a new password. It requires a reset code that passed
// VerifyResetOTP and has not expired; the code is consumed on success.
func (s *UserService) ResetPassword(ctx context.Context, email, password string) error {

	user, err := s.repomanager.Users(s.db).GetByEmail(ctx, email)
	if err != nil {
		return err
	}

	otp, err := s.repomanager.OTPs(s.db).GetActive(ctx, user.ID, models.OTPPurposeReset)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrOTPInvalid
		}
		return err
	}

	if !otp.Verified {
		return common.ErrOTPInvalid
	}
	if otp.Expired(time.Now()) {
		_ = s.repomanager.OTPs(s.db).Delete(ctx, otp.ID)
		return common.ErrOTPExpired
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("error hashing password: %w", err)
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.repomanager.Users(tx).UpdatePassword(ctx, user.ID, string(hash)); err != nil {
			return err
		}
		return s.repomanager.OTPs(tx).Delete(ctx, otp.ID)
	})
}

// Me returns the account record for the authenticated user.
func (s *UserService) Me(ctx context.Context, userID string) (*models.User, error) {
	return s.repomanager.Users(s.db).GetByID(ctx, userID)
}

// UpdateName changes the display name and returns the updated record.
func (s *UserService) UpdateName(ctx context.Context, userID, name string) (*models.User, error) {
	return s.repomanager.Users(s.db).UpdateName(ctx, userID, name)
}

// SetAvatar stores the public URL of an uploaded avatar.
func (s *UserService) SetAvatar(ctx context.Context, userID, url string) error {
	return s.repomanager.Users(s.db).UpdateAvatar(ctx, userID, url)
}

// DeleteAccount removes the account and, via cascade, its codes.
func (s *UserService) DeleteAccount(ctx context.Context, userID string) error {
	return s.repomanager.Users(s.db).Delete(ctx, userID)
}
