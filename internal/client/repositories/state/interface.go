// Package state is the client's durable key/value store, the moral
// equivalent of browser localStorage. The session layer keeps the access
// token and the cached user record here under fixed keys.
package state

import "context"

// Well-known keys.
const (
	KeyAccessToken = "access_token"
	KeyCurrentUser = "current_user"
)

type Repository interface {
	// Get returns the value for key, or nil if the key is absent.
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
