package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/mpetrovs/newsbrief/internal/client/api"
	"github.com/mpetrovs/newsbrief/internal/client/models"
	"github.com/mpetrovs/newsbrief/internal/netx"
)

// profileView is the screen's local state: a cached copy of the server
// record plus the edit-mode name field.
type profileView struct {
	user    *models.User
	editing bool
	newName string
}

func (p *profileView) render(a *App) {
	if p.user == nil {
		fmt.Fprintln(a.out, "Profile unavailable.")
		return
	}
	fmt.Fprintf(a.out, "\nProfile\n  name:  %s\n  email: %s\n", p.user.Name, p.user.Email)
	if p.user.Avatar != "" {
		fmt.Fprintf(a.out, "  avatar: %s\n", p.user.Avatar)
	}
	if p.user.Bio != "" {
		fmt.Fprintf(a.out, "  bio: %s\n", p.user.Bio)
	}
	if p.editing {
		fmt.Fprintf(a.out, "  [editing] new name: %s\n", p.newName)
	}
}

// runProfile drives the profile screen: fetch on mount, edit-name toggle,
// confirmed account deletion, and logout.
func (a *App) runProfile(ctx context.Context) error {
	view := &profileView{}

	if a.session.LoggedIn() {
		if u, err := a.api.CurrentUser(ctx, a.session.Token()); err == nil {
			a.session.SetUser(u)
			view.user = u
			view.newName = u.Name
		} else {
			a.logger.Error(ctx, "fetching user details", "error", err)
		}
	}
	view.render(a)

	for {
		line, err := a.readCommand("profile")
		if err != nil {
			return err
		}
		cmd, rest := splitCommand(line)

		switch cmd {
		case "":
			continue

		case "help":
			fmt.Fprintln(a.out, "Commands: edit, name <v>, cancel, avatar <path>, delete, settings, logout, back, exit")

		case "view":
			view.render(a)

		// A single control doubling as "enter edit mode" and "submit".
		case "edit":
			if !view.editing {
				if view.user != nil {
					view.newName = view.user.Name
				}
				view.editing = true
				fmt.Fprintln(a.out, "Editing name. Use 'name <value>' then 'edit' to save, or 'cancel'.")
				continue
			}
			a.submitNameUpdate(ctx, view)

		case "name":
			if !view.editing {
				fmt.Fprintln(a.out, "Not editing. Use 'edit' first.")
				continue
			}
			view.newName = rest

		case "cancel":
			if view.user != nil {
				view.newName = view.user.Name
			}
			view.editing = false

		case "avatar":
			a.submitAvatar(ctx, view, rest)

		case "delete":
			done, err := a.confirmAndDelete(ctx)
			if err != nil {
				return err
			}
			if done {
				return nil
			}

		case "settings":
			if a.config.SettingsWired {
				fmt.Fprintln(a.out, "Account settings: use 'edit' to change your name, 'avatar <path>' to change your picture, 'delete' to remove the account.")
				continue
			}
			a.alert("Settings", "Settings functionality will be implemented in a future update.")

		case "logout":
			// No confirmation prompt on logout.
			a.session.Logout()
			return nil

		case "back":
			a.nav.GoBack()
			return nil

		case "exit", "quit":
			return errQuit

		default:
			fmt.Fprintln(a.out, "Unknown command:", cmd)
		}
	}
}

// submitNameUpdate submits the edited name. Success overwrites the cached
// name and leaves edit mode; failure keeps the typed value and stays in edit
// mode. An empty trimmed name fails locally with no network call.
func (a *App) submitNameUpdate(ctx context.Context, view *profileView) {
	if strings.TrimSpace(view.newName) == "" {
		a.alert("Error", "Name cannot be empty")
		return
	}

	u, err := a.api.UpdateProfile(ctx, a.session.Token(), view.newName)
	if err != nil {
		a.alert("Error", api.MessageOr(err, "Failed to update profile. Please try again."))
		return
	}

	view.user = u
	view.newName = u.Name
	view.editing = false
	a.session.SetUser(u)
	a.alert("Success", "Profile updated successfully")
}

// confirmAndDelete runs the destructive-confirm prompt and, when confirmed,
// the delete call. A 401 response is handled identically to success: the
// session ends and navigation collapses to the auth screen.
func (a *App) confirmAndDelete(ctx context.Context) (bool, error) {
	line, err := a.readCommand("Are you sure you want to delete your account? This action cannot be undone. (type 'delete' to confirm, anything else to cancel)")
	if err != nil {
		return false, err
	}
	confirm, _ := splitCommand(line)
	if confirm != "delete" {
		fmt.Fprintln(a.out, "Cancelled.")
		return false, nil
	}

	msg, err := a.api.DeleteAccount(ctx, a.session.Token())
	if err != nil {
		if api.IsUnauthorized(err) {
			a.alert("Session Expired", "Please log in again.")
			a.session.Logout()
			return true, nil
		}
		a.alert("Error", api.MessageOr(err, "Failed to delete account. Please try again."))
		return false, nil
	}

	a.alert("Success", msg)
	a.session.Logout()
	return true, nil
}

// submitAvatar uploads a local image through a presigned URL issued by the
// server and refreshes the cached profile.
func (a *App) submitAvatar(ctx context.Context, view *profileView, path string) {
	if path == "" {
		fmt.Fprintln(a.out, "Usage: avatar <path>")
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		a.alert("Error", fmt.Sprintf("Cannot read %s", path))
		return
	}

	uploadURL, publicURL, err := a.api.AvatarUploadURL(ctx, a.session.Token())
	if err != nil {
		a.alert("Error", api.MessageOr(err, "Failed to prepare avatar upload"))
		return
	}

	if err := netx.UploadToPresignedURL(ctx, nil, uploadURL, data, "image/jpeg"); err != nil {
		a.alert("Error", "Failed to upload avatar. Please try again.")
		return
	}

	if view.user != nil {
		view.user.Avatar = publicURL
	}
	a.alert("Success", "Avatar updated")
}
