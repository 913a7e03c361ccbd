package cli

import (
	"context"
	"fmt"

	"github.com/mpetrovs/newsbrief/internal/client/api"
	"github.com/mpetrovs/newsbrief/internal/common"
)

func isNumeric(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}

// runVerifyOTP drives the signup verification screen. The entered code is
// kept across failed attempts so the user can retry.
func (a *App) runVerifyOTP(ctx context.Context) error {
	fmt.Fprintln(a.out, "Verify OTP: enter the code sent to your email")

	for {
		line, err := a.readCommand("verify-otp (code or 'back')")
		if err != nil {
			return err
		}
		cmd, _ := splitCommand(line)

		switch cmd {
		case "":
			continue
		case "back":
			a.nav.GoBack()
			return nil
		case "exit", "quit":
			return errQuit
		default:
			if a.submitSignupOTP(ctx, cmd) {
				return nil
			}
		}
	}
}

// submitSignupOTP performs the verification attempt. The pending-email
// precondition is checked first, then the local format rules; only then does
// a request go out. A successful verification consumes the pending email, so
// a second attempt without a fresh signup fails the precondition check.
func (a *App) submitSignupOTP(ctx context.Context, otp string) bool {
	email, err := a.pending.Get(ctx)
	if err != nil {
		a.logger.Error(ctx, "reading pending signup email", "error", err)
		a.alert("Error", "Email not found. Please sign up again.")
		return false
	}
	if email == "" {
		a.alert("Error", "Email not found. Please sign up again.")
		return false
	}

	if len(otp) != common.OTPLength || !isNumeric(otp) {
		a.alert("Error", "Please enter a valid 6-digit OTP.")
		return false
	}

	msg, err := a.api.VerifySignupOTP(ctx, email, otp)
	if err != nil {
		a.alert("Verification Failed", api.MessageOr(err, "Invalid OTP"))
		return false
	}

	if err := a.pending.Clear(ctx); err != nil {
		a.logger.Error(ctx, "clearing pending signup email", "error", err)
	}

	a.alert("Success", msg)
	// Replace, not push: the verification screen must not be reachable via
	// back navigation afterwards.
	a.nav.Replace(RouteAuth, nil)
	return true
}
