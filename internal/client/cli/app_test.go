package cli

import (
	"context"
	"testing"

	"github.com/taskdeck/taskdeck/internal/client/models"
	"github.com/taskdeck/taskdeck/internal/client/nav"
	"github.com/taskdeck/taskdeck/internal/client/session"
)

func TestIsLoggedIn(t *testing.T) {
	app, _ := newTestApp(t)
	if app.isLoggedIn() {
		t.Fatalf("expected isLoggedIn() == false with empty session")
	}

	app.sessions.SetToken(context.Background(), "tok")
	if !app.isLoggedIn() {
		t.Fatalf("expected isLoggedIn() == true with a token")
	}
}

func TestSetMode(t *testing.T) {
	app, _ := newTestApp(t)
	app.Mode = ModeOnline

	app.setMode(ModeOffline)
	if app.Mode != ModeOffline {
		t.Fatalf("expected mode %q, got %q", ModeOffline, app.Mode)
	}

	app.setMode(ModeOffline)
	if app.Mode != ModeOffline {
		t.Fatalf("expected mode to remain %q, got %q", ModeOffline, app.Mode)
	}
}

func TestGetStatus(t *testing.T) {
	app, _ := newTestApp(t)
	app.Mode = ModeOnline

	if got := app.getStatus(); got != "(online)" {
		t.Fatalf("status mismatch: %q", got)
	}

	app.sessions.Set(context.Background(), session.Session{Token: "tok", User: &models.User{Username: "alice"}})
	if got := app.getStatus(); got != "(alice online)" {
		t.Fatalf("status mismatch: %q", got)
	}
}

func TestEnter_DeniedRemembersScreen(t *testing.T) {
	app, _ := newTestApp(t)

	if app.enter(nav.RouteDashboard) {
		t.Fatalf("anonymous user must not enter the dashboard")
	}
	if got := app.navigator.ConsumeReturnTo(); got != nav.RouteDashboard {
		t.Fatalf("expected dashboard recorded, got %q", got)
	}
}

func TestEnter_LoggedInSkipsLoginScreen(t *testing.T) {
	app, _ := newTestApp(t)
	app.sessions.SetToken(context.Background(), "tok")

	if app.enter(nav.RouteLogin) {
		t.Fatalf("logged-in user must not enter the login screen")
	}
	if got := app.navigator.Current(); got != nav.RouteDashboard {
		t.Fatalf("expected bounce to dashboard, got %q", got)
	}
}
