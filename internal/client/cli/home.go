package cli

import (
	"context"
	"fmt"
	"time"
)

// greetingForHour mirrors the home screen's time-of-day greeting.
func greetingForHour(hour int) string {
	switch {
	case hour < 12:
		return "Good Morning"
	case hour < 18:
		return "Good Afternoon"
	default:
		return "Good Evening"
	}
}

// renderHome prints the feed. Weather and newsletter fetches degrade
// silently: a failure shows a placeholder or an empty list, never an error
// prompt.
func (a *App) renderHome(ctx context.Context) {
	name := "User"
	if a.session.LoggedIn() {
		if u, err := a.api.CurrentUser(ctx, a.session.Token()); err == nil {
			a.session.SetUser(u)
			name = u.Name
		} else {
			a.logger.Error(ctx, "fetching user details", "error", err)
		}
	}
	fmt.Fprintf(a.out, "\n%s, %s\n", greetingForHour(time.Now().Hour()), name)

	if a.weather != nil {
		if rep, err := a.weather.Current(ctx); err == nil {
			fmt.Fprintf(a.out, "Weather: %.1f°C, %s\n", rep.Temp, rep.Condition)
		} else {
			a.logger.Error(ctx, "fetching weather", "error", err)
			fmt.Fprintln(a.out, "Weather: cannot get weather data")
		}
	}

	newsletters, err := a.api.Newsletters(ctx)
	if err != nil {
		a.logger.Error(ctx, "fetching newsletters", "error", err)
	}
	if len(newsletters) == 0 {
		fmt.Fprintln(a.out, "No newsletters right now.")
		return
	}
	fmt.Fprintln(a.out, "\nNewsletters:")
	for _, n := range newsletters {
		fmt.Fprintf(a.out, "  * %s: %s\n    %s\n", n.Subject, n.Description, n.Image())
	}
}

// runHome shows the feed and dispatches home-tab commands.
func (a *App) runHome(ctx context.Context) error {
	a.renderHome(ctx)

	for {
		line, err := a.readCommand("home")
		if err != nil {
			return err
		}
		cmd, _ := splitCommand(line)

		switch cmd {
		case "":
			continue
		case "help":
			fmt.Fprintln(a.out, "Commands: refresh, profile, logout, exit")
		case "refresh":
			a.renderHome(ctx)
		case "profile":
			a.nav.Push(RouteProfile, nil)
			return nil
		case "logout":
			a.session.Logout()
			return nil
		case "exit", "quit":
			return errQuit
		default:
			fmt.Fprintln(a.out, "Unknown command:", cmd)
		}
	}
}
