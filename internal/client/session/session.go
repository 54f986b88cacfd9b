// Package session holds the client's authenticated session: the bearer
// token and the current user, observable by any number of subscribers and
// persisted across restarts in the local state database.
package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/taskdeck/taskdeck/internal/client/models"
)

// Session is the current authenticated identity. The zero value means
// "not logged in". A non-empty Token with a nil User is a transient state:
// the login round-trip succeeded but the user record has not been fetched
// yet (or its fetch failed and will be retried).
type Session struct {
	User  *models.User
	Token string
}

// Authenticated reports whether a bearer token is present. Token presence,
// not server-side validity, is what gates navigation; validity is enforced
// by the backend on the next actual request.
func (s Session) Authenticated() bool {
	return s.Token != ""
}

// Empty reports whether the session carries neither token nor user.
func (s Session) Empty() bool {
	return s.Token == "" && s.User == nil
}

// Expiry returns the token's exp claim, when the token is a JWT carrying
// one. The claim is read without signature verification: the client treats
// the token as opaque and only uses this for display purposes.
func (s Session) Expiry() (time.Time, bool) {
	if s.Token == "" {
		return time.Time{}, false
	}

	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(s.Token, claims); err != nil {
		return time.Time{}, false
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}
