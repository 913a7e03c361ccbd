package cli

import (
	"context"

	"github.com/mpetrovs/newsbrief/internal/client/api"
	"github.com/mpetrovs/newsbrief/internal/client/nav"
	"github.com/mpetrovs/newsbrief/internal/common"
)

// resetStep is the reset flow's state. The flow is a two-state machine:
// verification must succeed before a new password may be set, and nothing
// about it is persisted; leaving the screen abandons the flow.
type resetStep int

const (
	stepVerifyOTP resetStep = iota
	stepSetPassword
)

type resetFlow struct {
	email string
	step  resetStep
}

// advance moves verify_otp -> set_password. It is the only legal transition.
func (f *resetFlow) advance() {
	if f.step == stepVerifyOTP {
		f.step = stepSetPassword
	}
}

// runResetPassword drives the two-step reset screen. A "back" escape is
// available from either state and returns to the login screen with no server
// notification.
func (a *App) runResetPassword(ctx context.Context, params nav.Params) error {
	flow := &resetFlow{email: params["email"], step: stepVerifyOTP}

	for {
		switch flow.step {
		case stepVerifyOTP:
			line, err := a.readCommand("reset-password: enter the 6-digit OTP (or 'back')")
			if err != nil {
				return err
			}
			cmd, _ := splitCommand(line)
			switch cmd {
			case "":
				continue
			case "back":
				a.nav.Reset(RouteAuth)
				return nil
			case "exit", "quit":
				return errQuit
			}
			a.submitResetOTP(ctx, flow, cmd)

		case stepSetPassword:
			line, err := a.readCommand("reset-password: press Enter to set a new password (or 'back')")
			if err != nil {
				return err
			}
			cmd, _ := splitCommand(line)
			switch cmd {
			case "back":
				a.nav.Reset(RouteAuth)
				return nil
			case "exit", "quit":
				return errQuit
			}

			password, err := getPassword("New Password", a.out)
			if err != nil {
				return errQuit
			}
			confirm, err := getPassword("Confirm New Password", a.out)
			if err != nil {
				return errQuit
			}

			if a.submitNewPassword(ctx, flow, password, confirm) {
				return nil
			}
		}
	}
}

// submitResetOTP guards the first transition: only a successful server-side
// verification advances the flow; any failure leaves it in verify_otp.
func (a *App) submitResetOTP(ctx context.Context, flow *resetFlow, otp string) {
	if flow.step != stepVerifyOTP {
		return
	}

	if len(otp) != common.OTPLength {
		a.alert("Error", "Please enter a valid 6-digit OTP")
		return
	}

	msg, err := a.api.VerifyResetOTP(ctx, flow.email, otp)
	if err != nil {
		a.alert("Error", api.MessageOr(err, "Failed to verify OTP"))
		return
	}

	a.alert("Success", msg)
	flow.advance()
}

// submitNewPassword guards the terminal transition: both fields non-empty,
// equal, and at least 6 characters. On success the user lands back on the
// authentication screen with all flow history discarded.
func (a *App) submitNewPassword(ctx context.Context, flow *resetFlow, password, confirm string) bool {
	if flow.step != stepSetPassword {
		return false
	}

	if password == "" || confirm == "" {
		a.alert("Error", "Please fill in all fields")
		return false
	}
	if password != confirm {
		a.alert("Error", "Passwords do not match")
		return false
	}
	if len(password) < 6 {
		a.alert("Error", "Password must be at least 6 characters")
		return false
	}

	msg, err := a.api.ResetPassword(ctx, flow.email, password)
	if err != nil {
		a.alert("Error", api.MessageOr(err, "Failed to reset password"))
		return false
	}

	a.alert("Success", msg)
	a.nav.Reset(RouteAuth)
	return true
}
