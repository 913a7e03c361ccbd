package cli

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/mpetrovs/newsbrief/internal/client/api"
	"github.com/mpetrovs/newsbrief/internal/client/config"
	"github.com/mpetrovs/newsbrief/internal/client/models"
	"github.com/mpetrovs/newsbrief/internal/client/nav"
	"github.com/mpetrovs/newsbrief/internal/client/pending"
	"github.com/mpetrovs/newsbrief/internal/client/session"
	"github.com/mpetrovs/newsbrief/internal/logging"
)

// ------------ helpers ------------

func readerFromLines(lines ...string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(strings.Join(lines, "\n") + "\n"))
}

// stubPasswords replaces the password prompt with a queue of canned values
// and restores the real prompt on cleanup.
func stubPasswords(t *testing.T, passwords ...string) {
	t.Helper()
	orig := getPassword
	queue := passwords
	getPassword = func(prompt string, w io.Writer) (string, error) {
		if len(queue) == 0 {
			return "", io.EOF
		}
		pw := queue[0]
		queue = queue[1:]
		return pw, nil
	}
	t.Cleanup(func() { getPassword = orig })
}

// memRepo is an in-memory metadata.Repository for the pending-signup store.
type memRepo struct {
	data map[string][]byte
}

func newMemRepo() *memRepo { return &memRepo{data: map[string][]byte{}} }

func (m *memRepo) Get(ctx context.Context, key string) ([]byte, error)        { return m.data[key], nil }
func (m *memRepo) Set(ctx context.Context, key string, value []byte) error    { m.data[key] = value; return nil }
func (m *memRepo) Delete(ctx context.Context, key string) error               { delete(m.data, key); return nil }
func (m *memRepo) Clear(ctx context.Context) error                            { m.data = map[string][]byte{}; return nil }

// fakeAPI implements api.Client and records every call so tests can assert
// that local validation failures never reach the network.
type fakeAPI struct {
	loginRes   *api.LoginResult
	loginErr   error
	loginCalls int
	lastLogin  [2]string // email, password

	signupMsg   string
	signupErr   error
	signupCalls int
	lastSignup  [3]string // name, email, password

	verifyMsg   string
	verifyErrs  []error
	verifyCalls int
	lastVerify  [2]string // email, otp

	forgotMsg   string
	forgotErr   error
	forgotCalls int

	verifyResetMsg   string
	verifyResetErrs  []error
	verifyResetCalls int

	resetMsg   string
	resetErr   error
	resetCalls int
	lastReset  [2]string // email, password

	currentUser *models.User
	currentErr  error

	updateUser  *models.User
	updateErr   error
	updateCalls int
	lastUpdate  string

	deleteMsg   string
	deleteErr   error
	deleteCalls int

	newsletters []models.Newsletter
}

func popErr(errs *[]error) error {
	if len(*errs) == 0 {
		return nil
	}
	err := (*errs)[0]
	*errs = (*errs)[1:]
	return err
}

func (f *fakeAPI) Login(ctx context.Context, email, password string) (*api.LoginResult, error) {
	f.loginCalls++
	f.lastLogin = [2]string{email, password}
	return f.loginRes, f.loginErr
}
func (f *fakeAPI) Signup(ctx context.Context, name, email, password string) (string, error) {
	f.signupCalls++
	f.lastSignup = [3]string{name, email, password}
	return f.signupMsg, f.signupErr
}
func (f *fakeAPI) VerifySignupOTP(ctx context.Context, email, otp string) (string, error) {
	f.verifyCalls++
	f.lastVerify = [2]string{email, otp}
	return f.verifyMsg, popErr(&f.verifyErrs)
}
func (f *fakeAPI) ForgotPassword(ctx context.Context, email string) (string, error) {
	f.forgotCalls++
	return f.forgotMsg, f.forgotErr
}
func (f *fakeAPI) VerifyResetOTP(ctx context.Context, email, otp string) (string, error) {
	f.verifyResetCalls++
	return f.verifyResetMsg, popErr(&f.verifyResetErrs)
}
func (f *fakeAPI) ResetPassword(ctx context.Context, email, password string) (string, error) {
	f.resetCalls++
	f.lastReset = [2]string{email, password}
	return f.resetMsg, f.resetErr
}
func (f *fakeAPI) CurrentUser(ctx context.Context, token string) (*models.User, error) {
	return f.currentUser, f.currentErr
}
func (f *fakeAPI) UpdateProfile(ctx context.Context, token, name string) (*models.User, error) {
	f.updateCalls++
	f.lastUpdate = name
	return f.updateUser, f.updateErr
}
func (f *fakeAPI) DeleteAccount(ctx context.Context, token string) (string, error) {
	f.deleteCalls++
	return f.deleteMsg, f.deleteErr
}
func (f *fakeAPI) AvatarUploadURL(ctx context.Context, token string) (string, string, error) {
	return "", "", nil
}
func (f *fakeAPI) Newsletters(ctx context.Context) ([]models.Newsletter, error) {
	return f.newsletters, nil
}

// newTestApp assembles an App with a scripted reader, captured output, and
// the given fake backend.
func newTestApp(fake api.Client, lines ...string) (*App, *bytes.Buffer) {
	n := nav.NewController()
	out := &bytes.Buffer{}
	cfg := &config.Config{}
	cfg.LoadDefaults()

	return &App{
		config:  cfg,
		logger:  logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		api:     fake,
		session: session.New(n, RouteAuth),
		nav:     n,
		pending: pending.NewSignupStore(newMemRepo()),
		reader:  readerFromLines(lines...),
		out:     out,
	}, out
}

func TestRun_ExitImmediately(t *testing.T) {
	a, _ := newTestApp(&fakeAPI{}, "exit")
	if err := a.Run(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRun_StartsOnAuthScreen(t *testing.T) {
	a, out := newTestApp(&fakeAPI{}, "exit")
	a.nav.Reset(RouteHome)

	if err := a.Run(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out.String(), "login") {
		t.Fatalf("expected the auth screen to render, got:\n%s", out.String())
	}
}
