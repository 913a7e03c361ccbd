package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mpetrovs/newsbrief/internal/client/api"
	"github.com/mpetrovs/newsbrief/internal/client/config"
	"github.com/mpetrovs/newsbrief/internal/client/nav"
	"github.com/mpetrovs/newsbrief/internal/client/pending"
	"github.com/mpetrovs/newsbrief/internal/client/repositories/metadata"
	"github.com/mpetrovs/newsbrief/internal/client/session"
	"github.com/mpetrovs/newsbrief/internal/client/storage"
	"github.com/mpetrovs/newsbrief/internal/client/weather"
	"github.com/mpetrovs/newsbrief/internal/logging"
)

// Route names for the navigation stack.
const (
	RouteAuth           = "auth"
	RouteVerifyOTP      = "verify-otp"
	RouteForgotPassword = "forgot-password"
	RouteResetPassword  = "reset-password"
	RouteHome           = "home"
	RouteProfile        = "profile"
)

// errQuit signals that the user asked to leave the program.
var errQuit = errors.New("quit")

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
)

// App wires the screens to their collaborators. The session store and
// navigation controller are separate objects composed here: logout on the
// store triggers the stack reset, but neither knows the other's internals.
type App struct {
	config  *config.Config
	logger  logging.Logger
	api     api.Client
	session *session.Store
	nav     *nav.Controller
	pending *pending.SignupStore
	weather *weather.Client

	reader *bufio.Reader
	out    io.Writer
}

func NewApp(c *config.Config) (*App, error) {
	ctx := context.Background()

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	db, err := storage.InitDatabase(ctx, c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("local store init: %w", err)
	}

	n := nav.NewController()

	a := &App{
		config:  c,
		logger:  logger,
		api:     api.NewHTTPClient(c.ServerBaseURL, c.RequestTimeout),
		session: session.New(n, RouteAuth),
		nav:     n,
		pending: pending.NewSignupStore(metadata.NewSQLiteRepository(db)),
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
	}
	if c.WeatherAPIKey != "" {
		a.weather = weather.NewClient(c.WeatherAPIKey, c.WeatherCity, c.RequestTimeout)
	}
	return a, nil
}

// Run drives the screen loop until the user exits. The stack starts with the
// authentication screen as its only entry.
func (a *App) Run(ctx context.Context) error {
	fmt.Fprintln(a.out, "Welcome to newsbrief (type 'help' on any screen for commands)")
	a.nav.Reset(RouteAuth)

	for {
		route, ok := a.nav.Current()
		if !ok {
			return nil
		}

		var err error
		switch route.Name {
		case RouteAuth:
			err = a.runAuth(ctx)
		case RouteVerifyOTP:
			err = a.runVerifyOTP(ctx)
		case RouteForgotPassword:
			err = a.runForgotPassword(ctx)
		case RouteResetPassword:
			err = a.runResetPassword(ctx, route.Params)
		case RouteHome:
			err = a.runHome(ctx)
		case RouteProfile:
			err = a.runProfile(ctx)
		default:
			err = fmt.Errorf("unknown route %q", route.Name)
		}

		if errors.Is(err, errQuit) {
			fmt.Fprintln(a.out, "Bye!")
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// alert surfaces an error or notice as a blocking prompt requiring
// acknowledgment, the terminal analogue of a modal dialog.
func (a *App) alert(title, msg string) {
	fmt.Fprintf(a.out, "\n[%s] %s\n", title, msg)
	fmt.Fprint(a.out, "(press Enter to continue) ")
	_, _ = a.reader.ReadString('\n')
}

// readCommand reads one line of input; EOF is treated as a quit request so
// scripted sessions terminate cleanly.
func (a *App) readCommand(prompt string) (string, error) {
	line, err := getSimpleText(a.reader, prompt, a.out)
	if err != nil {
		return "", errQuit
	}
	return line, nil
}
