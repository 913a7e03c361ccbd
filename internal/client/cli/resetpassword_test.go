package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpetrovs/newsbrief/internal/client/api"
	"github.com/mpetrovs/newsbrief/internal/client/nav"
)

func resetParams() nav.Params { return nav.Params{"email": "a@b.com"} }

// pushResetPassword builds the stack the way the forgot-password flow does.
func pushResetPassword(a *App) {
	a.nav.Reset(RouteAuth)
	a.nav.Push(RouteForgotPassword, nil)
	a.nav.Push(RouteResetPassword, resetParams())
}

func TestResetPassword_FullFlow(t *testing.T) {
	fake := &fakeAPI{
		verifyResetMsg: "OTP verified",
		resetMsg:       "Password reset successfully",
	}
	stubPasswords(t, "newpass1", "newpass1")

	a, out := newTestApp(fake,
		"123456",
		"", // acknowledge OTP verification
		"", // proceed to the password prompts
		"", // acknowledge the final success alert
	)
	pushResetPassword(a)

	err := a.runResetPassword(context.Background(), resetParams())
	require.NoError(t, err)

	assert.Equal(t, 1, fake.verifyResetCalls)
	assert.Equal(t, 1, fake.resetCalls)
	assert.Equal(t, [2]string{"a@b.com", "newpass1"}, fake.lastReset)
	assert.Contains(t, out.String(), "Password reset successfully")

	// The whole flow collapses back to a lone auth screen.
	assert.Equal(t, 1, a.nav.Depth())
	route, ok := a.nav.Current()
	require.True(t, ok)
	assert.Equal(t, RouteAuth, route.Name)
}

func TestResetPassword_ShortOTPIsLocal(t *testing.T) {
	fake := &fakeAPI{}
	a, out := newTestApp(fake,
		"123",
		"",
		"back",
	)
	pushResetPassword(a)

	err := a.runResetPassword(context.Background(), resetParams())
	require.NoError(t, err)

	assert.Contains(t, out.String(), "Please enter a valid 6-digit OTP")
	assert.Zero(t, fake.verifyResetCalls)
}

func TestResetPassword_FailedVerifyStaysOnFirstStep(t *testing.T) {
	fake := &fakeAPI{
		verifyResetErrs: []error{&api.Error{StatusCode: 400, Message: "Invalid or expired OTP"}},
		verifyResetMsg:  "OTP verified",
		resetMsg:        "Password reset successfully",
	}
	stubPasswords(t, "newpass1", "newpass1")

	a, out := newTestApp(fake,
		"111111",
		"", // acknowledge the failure; still on the OTP step
		"123456",
		"",
		"",
		"",
	)
	pushResetPassword(a)

	err := a.runResetPassword(context.Background(), resetParams())
	require.NoError(t, err)

	assert.Contains(t, out.String(), "Invalid or expired OTP")
	assert.Equal(t, 2, fake.verifyResetCalls)
	assert.Equal(t, 1, fake.resetCalls)
}

func TestResetPassword_PasswordRulesAreLocal(t *testing.T) {
	fake := &fakeAPI{verifyResetMsg: "OTP verified"}
	stubPasswords(t,
		"abcdef1", "different", // mismatch
		"abc", "abc", // too short
	)

	a, out := newTestApp(fake,
		"123456",
		"", // acknowledge OTP verification
		"", // first password attempt
		"", // acknowledge mismatch
		"", // second password attempt
		"", // acknowledge short-password error
		"back",
	)
	pushResetPassword(a)

	err := a.runResetPassword(context.Background(), resetParams())
	require.NoError(t, err)

	assert.Contains(t, out.String(), "Passwords do not match")
	assert.Contains(t, out.String(), "Password must be at least 6 characters")
	assert.Zero(t, fake.resetCalls)
}

func TestResetPassword_BackReturnsToAuth(t *testing.T) {
	a, _ := newTestApp(&fakeAPI{}, "back")
	pushResetPassword(a)

	err := a.runResetPassword(context.Background(), resetParams())
	require.NoError(t, err)

	assert.Equal(t, 1, a.nav.Depth())
	route, ok := a.nav.Current()
	require.True(t, ok)
	assert.Equal(t, RouteAuth, route.Name)
}
