// Package nav is the client's screen router. Every navigation attempt is
// gated by two admission guards evaluated synchronously against the
// session store: authenticated-only screens bounce anonymous users to the
// login screen (remembering where they wanted to go), and anonymous-only
// screens bounce logged-in users to the dashboard.
package nav

import (
	"context"
	"sync"

	"github.com/taskdeck/taskdeck/internal/logging"
)

// Route identifies a screen.
type Route string

const (
	RouteLogin     Route = "login"
	RouteRegister  Route = "register"
	RouteDashboard Route = "dashboard"
	RouteSettings  Route = "settings"
)

// RequiresAuth reports whether the route is inside the authenticated area.
func (r Route) RequiresAuth() bool {
	return r == RouteDashboard || r == RouteSettings
}

// AnonymousOnly reports whether the route belongs to the anonymous area
// (login/registration screens a logged-in user should not reach).
func (r Route) AnonymousOnly() bool {
	return r == RouteLogin || r == RouteRegister
}

// tokenSource is the slice of the session store the guards need: token
// presence, taken at face value, is all that gates navigation.
type tokenSource interface {
	Token() string
}

// Navigator tracks the current screen and applies the admission guards.
type Navigator struct {
	mu       sync.Mutex
	sessions tokenSource
	current  Route
	returnTo Route
	log      logging.Logger
}

// NewNavigator starts on the login screen; the first Go decides where the
// user actually lands.
func NewNavigator(sessions tokenSource, log logging.Logger) *Navigator {
	return &Navigator{sessions: sessions, current: RouteLogin, log: log}
}

// Current returns the screen currently shown.
func (n *Navigator) Current() Route {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.current
}

// Go attempts to navigate to route and returns the screen actually landed
// on. A denied authenticated-area attempt records the requested route so
// it can be restored after a successful login. Guards are pure functions
// of current session state; no network calls are made here.
func (n *Navigator) Go(route Route) Route {
	n.mu.Lock()
	defer n.mu.Unlock()

	authenticated := n.sessions.Token() != ""

	switch {
	case route.RequiresAuth() && !authenticated:
		n.returnTo = route
		n.current = RouteLogin
		n.log.Debug(context.Background(), "navigation denied, login required", "requested", string(route))
	case route.AnonymousOnly() && authenticated:
		n.current = RouteDashboard
		n.log.Debug(context.Background(), "navigation denied, already logged in", "requested", string(route))
	default:
		n.current = route
	}

	return n.current
}

// RedirectToLogin forces the login screen without recording a return
// route. The request augmenter calls this after an authentication
// failure; by then the session is already cleared, so the anonymous guard
// admits it. Repeated calls are no-ops.
func (n *Navigator) RedirectToLogin() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.current = RouteLogin
	n.returnTo = ""
}

// ConsumeReturnTo returns the route recorded by a denied navigation (or
// the dashboard when none was recorded) and forgets it.
func (n *Navigator) ConsumeReturnTo() Route {
	n.mu.Lock()
	defer n.mu.Unlock()

	route := n.returnTo
	n.returnTo = ""
	if route == "" {
		return RouteDashboard
	}
	return route
}
