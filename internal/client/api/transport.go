package api

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/taskdeck/taskdeck/internal/client/session"
	"github.com/taskdeck/taskdeck/internal/logging"
)

const requestIDHeader = "X-Request-Id"

// BearerTransport augments every outbound request: when the session store
// holds a token it is attached as a bearer credential, and each request is
// tagged with a request id for log correlation. Anonymous calls (login,
// register) pass through untouched since they precede token existence.
//
// When a response comes back 401 the transport unconditionally clears the
// session store and redirects navigation to the login screen, then hands
// the response back unchanged so the caller still sees the failure. This
// is the only place session invalidation happens besides explicit logout;
// redundant clears on repeated 401s are harmless no-ops.
type BearerTransport struct {
	base     http.RoundTripper
	sessions *session.Store
	redirect func()
	log      logging.Logger
}

func NewBearerTransport(base http.RoundTripper, sessions *session.Store, redirect func(), log logging.Logger) *BearerTransport {
	if base == nil {
		base = http.DefaultTransport
	}
	return &BearerTransport{base: base, sessions: sessions, redirect: redirect, log: log}
}

func (t *BearerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())

	if token := t.sessions.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if req.Header.Get(requestIDHeader) == "" {
		req.Header.Set(requestIDHeader, uuid.NewString())
	}

	resp, err := t.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode == http.StatusUnauthorized {
		t.log.Warn(req.Context(), "authentication failure, clearing session",
			"method", req.Method, "path", req.URL.Path)
		t.sessions.Clear(req.Context())
		if t.redirect != nil {
			t.redirect()
		}
	}

	return resp, nil
}
