package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/mpetrovs/newsbrief/internal/client/api"
)

type authMode string

const (
	modeLogin  authMode = "login"
	modeSignup authMode = "signup"
)

// authForm is the screen's local state. Switching between login and signup
// modes does not clear entered values, and the two visibility toggles are
// tracked independently.
type authForm struct {
	mode authMode

	name            string
	email           string
	password        string
	confirmPassword string
	acceptTerms     bool

	showPassword        bool
	showConfirmPassword bool
}

func masked(pw string, show bool) string {
	if show {
		return pw
	}
	return strings.Repeat("*", len(pw))
}

func (f *authForm) render(w io.Writer) {
	if f.mode == modeSignup {
		fmt.Fprintf(w, "  name:     %s\n", f.name)
	}
	fmt.Fprintf(w, "  email:    %s\n", f.email)
	fmt.Fprintf(w, "  password: %s\n", masked(f.password, f.showPassword))
	if f.mode == modeSignup {
		fmt.Fprintf(w, "  confirm:  %s\n", masked(f.confirmPassword, f.showConfirmPassword))
		fmt.Fprintf(w, "  terms accepted: %v\n", f.acceptTerms)
	}
}

// splitCommand separates the first token from the rest of the line.
func splitCommand(line string) (string, string) {
	parts := strings.SplitN(strings.TrimSpace(line), " ", 2)
	cmd := parts[0]
	rest := ""
	if len(parts) > 1 {
		rest = strings.TrimSpace(parts[1])
	}
	return cmd, rest
}

// runAuth drives the combined login/signup screen.
func (a *App) runAuth(ctx context.Context) error {
	form := &authForm{mode: modeLogin}

	for {
		line, err := a.readCommand(fmt.Sprintf("auth (%s)", form.mode))
		if err != nil {
			return err
		}
		cmd, rest := splitCommand(line)

		switch cmd {
		case "":
			continue

		case "help":
			fmt.Fprintln(a.out, "Commands: login, signup, name <v>, email <v>, password, confirm, terms, show, showconfirm, view, submit, forgot, exit")

		case "login":
			form.mode = modeLogin
		case "signup":
			form.mode = modeSignup

		case "name":
			form.name = rest
		case "email":
			form.email = rest

		case "password":
			pw, err := getPassword("Password", a.out)
			if err != nil {
				return errQuit
			}
			form.password = pw
		case "confirm":
			pw, err := getPassword("Confirm password", a.out)
			if err != nil {
				return errQuit
			}
			form.confirmPassword = pw

		case "terms":
			form.acceptTerms = !form.acceptTerms
			fmt.Fprintf(a.out, "terms accepted: %v\n", form.acceptTerms)

		case "show":
			form.showPassword = !form.showPassword
			form.render(a.out)
		case "showconfirm":
			form.showConfirmPassword = !form.showConfirmPassword
			form.render(a.out)

		case "view":
			form.render(a.out)

		case "forgot":
			a.nav.Push(RouteForgotPassword, nil)
			return nil

		case "submit":
			var navigated bool
			if form.mode == modeLogin {
				navigated = a.submitLogin(ctx, form)
			} else {
				navigated = a.submitSignup(ctx, form)
			}
			if navigated {
				return nil
			}

		case "exit", "quit":
			return errQuit

		default:
			fmt.Fprintln(a.out, "Unknown command:", cmd)
		}
	}
}

// submitLogin sends the credentials and, on success, populates the session
// and moves to the home screen. Failures leave every field as typed.
func (a *App) submitLogin(ctx context.Context, form *authForm) bool {
	res, err := a.api.Login(ctx, form.email, form.password)
	if err != nil {
		a.alert("Login Failed", api.MessageOr(err, "Invalid credentials"))
		return false
	}

	a.session.Login(res.User, res.Token)
	a.alert("Login Successful", "You have logged in successfully!")
	a.nav.Push(RouteHome, nil)
	return true
}

// submitSignup validates locally before contacting the server: a confirm
// mismatch or unaccepted terms fails fast with no network call.
func (a *App) submitSignup(ctx context.Context, form *authForm) bool {
	if form.password != form.confirmPassword {
		a.alert("Error", "Passwords do not match")
		return false
	}
	if !form.acceptTerms {
		a.alert("Error", "You must agree to the Terms of Service")
		return false
	}

	msg, err := a.api.Signup(ctx, form.name, form.email, form.password)
	if err != nil {
		a.alert("Error", api.MessageOr(err, "Signup failed"))
		return false
	}

	if err := a.pending.Set(ctx, form.email); err != nil {
		a.logger.Error(ctx, "saving pending signup email", "error", err)
	}

	a.alert("Success", msg)
	a.nav.Push(RouteVerifyOTP, nil)
	return true
}
