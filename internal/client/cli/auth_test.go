package cli

import (
	"bufio"
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/taskdeck/taskdeck/internal/client/api"
	"github.com/taskdeck/taskdeck/internal/client/models"
	"github.com/taskdeck/taskdeck/internal/client/nav"
	"github.com/taskdeck/taskdeck/internal/client/session"
	"github.com/taskdeck/taskdeck/internal/logging"
)

func testLogger() logging.Logger {
	return logging.NewDefault(io.Discard, slog.LevelError)
}

func stubInputs(t *testing.T, answers []string, password string) func() {
	t.Helper()
	origST, origGP := getSimpleText, getPassword
	i := 0
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		if i >= len(answers) {
			return "", nil
		}
		answer := answers[i]
		i++
		return answer, nil
	}
	getPassword = func(_ io.Writer, _ string) (string, error) { return password, nil }
	return func() {
		getSimpleText = origST
		getPassword = origGP
	}
}

type fakeAuthService struct {
	store *session.Store

	loginUser, loginPass string
	loginToken           string
	loginErr             error

	regReq models.UserRegister
	regErr error

	logoutCalled bool
	pingErr      error
}

func (f *fakeAuthService) Register(_ context.Context, req models.UserRegister) (*models.User, error) {
	f.regReq = req
	if f.regErr != nil {
		return nil, f.regErr
	}
	return &models.User{Username: req.Username}, nil
}

func (f *fakeAuthService) Login(ctx context.Context, username, password string) (*models.TokenResponse, error) {
	f.loginUser, f.loginPass = username, password
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	f.store.Set(ctx, session.Session{Token: f.loginToken, User: &models.User{Username: username}})
	return &models.TokenResponse{AccessToken: f.loginToken, TokenType: "bearer"}, nil
}

func (f *fakeAuthService) FetchCurrentUser(context.Context) (*models.User, error) {
	return f.store.Get().User, nil
}

func (f *fakeAuthService) Logout(ctx context.Context) {
	f.logoutCalled = true
	f.store.Clear(ctx)
}

func (f *fakeAuthService) UpdateProfile(_ context.Context, upd models.ProfileUpdate) (*models.User, error) {
	return &models.User{}, nil
}

func (f *fakeAuthService) ChangePassword(context.Context, string) error { return nil }

func (f *fakeAuthService) UploadProfilePicture(_ context.Context, _ string, _ []byte) (*models.User, error) {
	return &models.User{}, nil
}

func (f *fakeAuthService) DeleteProfilePicture(context.Context) (*models.User, error) {
	return &models.User{}, nil
}

func (f *fakeAuthService) Ping(context.Context) error { return f.pingErr }

func newTestApp(t *testing.T) (*App, *fakeAuthService) {
	t.Helper()
	store := session.NewStore(context.Background(), nil, testLogger())
	f := &fakeAuthService{store: store, loginToken: "tok123"}
	app := &App{
		sessions:  store,
		navigator: nav.NewNavigator(store, testLogger()),
		auth:      f,
		log:       testLogger(),
	}
	return app, f
}

func TestRegister_Success(t *testing.T) {
	app, f := newTestApp(t)

	restore := stubInputs(t, []string{"bob", "bob@example.org", "Bob B"}, "secret")
	defer restore()

	if err := app.Register(context.Background()); err != nil {
		t.Fatalf("Register err: %v", err)
	}
	if f.regReq.Username != "bob" || f.regReq.Email != "bob@example.org" {
		t.Fatalf("Register request mismatch: %+v", f.regReq)
	}
	if f.regReq.Password != "secret" {
		t.Fatalf("Register pass mismatch: %q", f.regReq.Password)
	}
	if app.isLoggedIn() {
		t.Fatalf("registration must not log the user in")
	}
}

func TestLogin_LandsOnDashboard(t *testing.T) {
	app, f := newTestApp(t)

	restore := stubInputs(t, []string{"alice"}, "pw")
	defer restore()

	if err := app.Login(context.Background()); err != nil {
		t.Fatalf("Login err: %v", err)
	}
	if f.loginUser != "alice" || f.loginPass != "pw" {
		t.Fatalf("credentials mismatch: %q %q", f.loginUser, f.loginPass)
	}
	if got := app.navigator.Current(); got != nav.RouteDashboard {
		t.Fatalf("expected dashboard after login, got %q", got)
	}
}

func TestLogin_RestoresRequestedScreen(t *testing.T) {
	app, _ := newTestApp(t)

	// A denied settings attempt records where the user wanted to go.
	if got := app.navigator.Go(nav.RouteSettings); got != nav.RouteLogin {
		t.Fatalf("expected bounce to login, got %q", got)
	}

	restore := stubInputs(t, []string{"alice"}, "pw")
	defer restore()

	if err := app.Login(context.Background()); err != nil {
		t.Fatalf("Login err: %v", err)
	}
	if got := app.navigator.Current(); got != nav.RouteSettings {
		t.Fatalf("expected settings after login, got %q", got)
	}
}

func TestLogin_InvalidCredentialsStaysOnLogin(t *testing.T) {
	app, f := newTestApp(t)
	f.loginErr = api.ErrInvalidCredentials

	restore := stubInputs(t, []string{"alice"}, "nope")
	defer restore()

	if err := app.Login(context.Background()); err == nil {
		t.Fatalf("want error for bad credentials")
	}
	if app.isLoggedIn() {
		t.Fatalf("must not be logged in")
	}
	if got := app.navigator.Current(); got != nav.RouteLogin {
		t.Fatalf("expected to stay on login, got %q", got)
	}
}

func TestLogout_ClearsSessionAndReturnsToLogin(t *testing.T) {
	app, f := newTestApp(t)
	app.sessions.Set(context.Background(), session.Session{Token: "tok", User: &models.User{Username: "alice"}})
	app.navigator.Go(nav.RouteDashboard)

	app.Logout(context.Background())

	if !f.logoutCalled {
		t.Fatalf("auth service Logout not called")
	}
	if app.isLoggedIn() {
		t.Fatalf("session not cleared")
	}
	if got := app.navigator.Current(); got != nav.RouteLogin {
		t.Fatalf("expected login screen, got %q", got)
	}

	// Repeated logout is harmless.
	app.Logout(context.Background())
}
