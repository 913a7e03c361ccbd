package cli

import (
	"context"
	"fmt"

	"github.com/mpetrovs/newsbrief/internal/client/api"
	"github.com/mpetrovs/newsbrief/internal/client/nav"
)

// runForgotPassword asks for the account email and requests a reset code.
// On success the email travels forward to the reset screen as a parameter.
func (a *App) runForgotPassword(ctx context.Context) error {
	fmt.Fprintln(a.out, "Forgot Password: enter your email address to receive a password reset OTP")

	for {
		line, err := a.readCommand("forgot-password (email or 'back')")
		if err != nil {
			return err
		}
		cmd, _ := splitCommand(line)

		switch cmd {
		case "back":
			a.nav.GoBack()
			return nil
		case "exit", "quit":
			return errQuit
		case "":
			a.alert("Error", "Please enter your email address")
			continue
		}

		email := cmd
		msg, err := a.api.ForgotPassword(ctx, email)
		if err != nil {
			a.alert("Error", api.MessageOr(err, "Failed to send OTP"))
			continue
		}

		a.alert("Success", msg)
		a.nav.Push(RouteResetPassword, nav.Params{"email": email})
		return nil
	}
}
