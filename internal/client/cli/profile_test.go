package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpetrovs/newsbrief/internal/client/api"
	"github.com/mpetrovs/newsbrief/internal/client/models"
)

func loginAndOpenProfile(a *App, fake *fakeAPI) {
	u := &models.User{ID: "1", Name: "A", Email: "a@b.com"}
	fake.currentUser = u
	a.session.Login(u, "tok")
	a.nav.Reset(RouteAuth)
	a.nav.Push(RouteHome, nil)
	a.nav.Push(RouteProfile, nil)
}

func TestProfile_DeleteConfirmedSuccess(t *testing.T) {
	fake := &fakeAPI{deleteMsg: "Account deleted"}
	a, out := newTestApp(fake,
		"delete",
		"delete", // confirmation prompt
		"",       // acknowledge the alert
	)
	loginAndOpenProfile(a, fake)

	err := a.runProfile(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, fake.deleteCalls)
	assert.Contains(t, out.String(), "Account deleted")
	assert.False(t, a.session.LoggedIn())
	assert.Empty(t, a.session.Token())

	assert.Equal(t, 1, a.nav.Depth())
	route, ok := a.nav.Current()
	require.True(t, ok)
	assert.Equal(t, RouteAuth, route.Name)
}

func TestProfile_DeleteExpiredSessionBehavesLikeSuccess(t *testing.T) {
	fake := &fakeAPI{deleteErr: &api.Error{StatusCode: 401, Message: "Invalid token"}}
	a, out := newTestApp(fake,
		"delete",
		"delete",
		"",
	)
	loginAndOpenProfile(a, fake)

	err := a.runProfile(context.Background())
	require.NoError(t, err)

	assert.Contains(t, out.String(), "Please log in again.")
	assert.False(t, a.session.LoggedIn())

	assert.Equal(t, 1, a.nav.Depth())
	route, ok := a.nav.Current()
	require.True(t, ok)
	assert.Equal(t, RouteAuth, route.Name)
}

func TestProfile_DeleteOtherFailureKeepsSession(t *testing.T) {
	fake := &fakeAPI{deleteErr: &api.Error{StatusCode: 500, Message: "boom"}}
	a, out := newTestApp(fake,
		"delete",
		"delete",
		"",
		"back",
	)
	loginAndOpenProfile(a, fake)

	err := a.runProfile(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, fake.deleteCalls)
	assert.Contains(t, out.String(), "boom")
	assert.True(t, a.session.LoggedIn(), "a failed delete keeps the session")
}

func TestProfile_DeleteCancelled(t *testing.T) {
	fake := &fakeAPI{}
	a, out := newTestApp(fake,
		"delete",
		"no",
		"back",
	)
	loginAndOpenProfile(a, fake)

	err := a.runProfile(context.Background())
	require.NoError(t, err)

	assert.Zero(t, fake.deleteCalls)
	assert.Contains(t, out.String(), "Cancelled.")
	assert.True(t, a.session.LoggedIn())
}

func TestProfile_EditName(t *testing.T) {
	fake := &fakeAPI{updateUser: &models.User{ID: "1", Name: "Bob", Email: "a@b.com"}}
	a, _ := newTestApp(fake,
		"edit",
		"name Bob",
		"edit", // submit
		"",     // acknowledge the success alert
		"logout",
	)
	loginAndOpenProfile(a, fake)

	err := a.runProfile(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, fake.updateCalls)
	assert.Equal(t, "Bob", fake.lastUpdate)
}

func TestProfile_EditEmptyNameIsLocal(t *testing.T) {
	fake := &fakeAPI{}
	a, out := newTestApp(fake,
		"edit",
		"name",
		"edit",
		"",
		"logout",
	)
	loginAndOpenProfile(a, fake)

	err := a.runProfile(context.Background())
	require.NoError(t, err)

	assert.Contains(t, out.String(), "Name cannot be empty")
	assert.Zero(t, fake.updateCalls)
}

func TestProfile_EditFailureKeepsTypedValue(t *testing.T) {
	fake := &fakeAPI{updateErr: &api.Error{StatusCode: 500, Message: "boom"}}
	a, out := newTestApp(fake,
		"edit",
		"name Bob",
		"edit",
		"", // acknowledge the failure
		"view",
		"logout",
	)
	loginAndOpenProfile(a, fake)

	err := a.runProfile(context.Background())
	require.NoError(t, err)

	assert.Contains(t, out.String(), "[editing] new name: Bob")
	assert.Equal(t, "A", a.session.User().Name)
}

func TestProfile_CancelRevertsWithoutNetwork(t *testing.T) {
	fake := &fakeAPI{}
	a, out := newTestApp(fake,
		"edit",
		"name Bob",
		"cancel",
		"view",
		"logout",
	)
	loginAndOpenProfile(a, fake)

	err := a.runProfile(context.Background())
	require.NoError(t, err)

	assert.Zero(t, fake.updateCalls)
	assert.NotContains(t, out.String(), "[editing] new name: Bob")
}

func TestProfile_SettingsPlaceholder(t *testing.T) {
	fake := &fakeAPI{}
	a, out := newTestApp(fake,
		"settings",
		"", // acknowledge the placeholder alert
		"logout",
	)
	loginAndOpenProfile(a, fake)

	err := a.runProfile(context.Background())
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Settings functionality will be implemented in a future update.")
}

func TestProfile_SettingsWired(t *testing.T) {
	fake := &fakeAPI{}
	a, out := newTestApp(fake,
		"settings",
		"logout",
	)
	a.config.SettingsWired = true
	loginAndOpenProfile(a, fake)

	err := a.runProfile(context.Background())
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Account settings:")
}

func TestProfile_LogoutNeedsNoConfirmation(t *testing.T) {
	fake := &fakeAPI{}
	a, _ := newTestApp(fake, "logout")
	loginAndOpenProfile(a, fake)

	err := a.runProfile(context.Background())
	require.NoError(t, err)

	assert.False(t, a.session.LoggedIn())
	assert.Equal(t, 1, a.nav.Depth())
	route, ok := a.nav.Current()
	require.True(t, ok)
	assert.Equal(t, RouteAuth, route.Name)
}
