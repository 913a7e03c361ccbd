package models

import "time"

// OTPPurpose distinguishes the two verification flows sharing the otps table.
type OTPPurpose string

const (
	OTPPurposeSignup OTPPurpose = "signup"
	OTPPurposeReset  OTPPurpose = "reset"
)

// OTP is a one-time code issued to a user. Verified marks a reset code that
// passed the verification step and may now authorize a password change.
type OTP struct {
	ID        string
	UserID    string
	Code      string
	Purpose   OTPPurpose
	Verified  bool
	ExpiresAt time.Time
	CreatedAt time.Time
}

// Expired reports whether the code is past its validity window.
func (o *OTP) Expired(now time.Time) bool {
	return now.After(o.ExpiresAt)
}
