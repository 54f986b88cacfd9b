package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"sync"

	"github.com/taskdeck/taskdeck/internal/client/models"
	"github.com/taskdeck/taskdeck/internal/client/repositories/state"
	"github.com/taskdeck/taskdeck/internal/dbx"
	"github.com/taskdeck/taskdeck/internal/logging"
)

// Store is the single authoritative holder of the current Session.
//
// All mutation goes through Set/Clear (or the SetToken/SetUser
// conveniences, which route through Set). Subscribers are notified
// synchronously, in registration order, with updates delivered in the
// order mutations are applied. Every mutation is mirrored to the state
// database; persistence failures are logged and never block the in-memory
// session, which stays authoritative.
type Store struct {
	mu      sync.Mutex
	current Session
	subs    []subscriber
	nextID  int

	db  *sql.DB
	log logging.Logger
}

type subscriber struct {
	id int
	fn func(Session)
}

// NewStore builds a Store, restoring any previously persisted session from
// db. A malformed persisted user record is discarded silently (logged, not
// surfaced): a corrupt cache must never block application start. db may be
// nil, in which case the session is memory-only.
func NewStore(ctx context.Context, db *sql.DB, log logging.Logger) *Store {
	s := &Store{db: db, log: log}
	s.restore(ctx)
	return s
}

func (s *Store) repo() state.Repository {
	return state.NewSQLiteRepository(s.db)
}

func (s *Store) restore(ctx context.Context) {
	if s.db == nil {
		return
	}
	repo := s.repo()

	token, err := repo.Get(ctx, state.KeyAccessToken)
	if err != nil {
		s.log.Warn(ctx, "cannot read persisted token, starting empty", "err", err)
		return
	}

	var user *models.User
	raw, err := repo.Get(ctx, state.KeyCurrentUser)
	if err != nil {
		s.log.Warn(ctx, "cannot read persisted user, starting without one", "err", err)
	} else if len(raw) > 0 {
		user = &models.User{}
		if err := json.Unmarshal(raw, user); err != nil {
			s.log.Warn(ctx, "persisted user record is malformed, discarding", "err", err)
			user = nil
			_ = repo.Delete(ctx, state.KeyCurrentUser)
		}
	}

	s.current = Session{Token: string(token), User: user}
}

// Get returns a snapshot of the current session. Never blocks on I/O.
func (s *Store) Get() Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Token returns the current bearer token, or "" when not logged in.
func (s *Store) Token() string {
	return s.Get().Token
}

// Subscribe registers fn, invokes it immediately with the current value,
// and returns an unsubscribe function. Subsequent changes are delivered
// synchronously from the mutating call, in registration order.
func (s *Store) Subscribe(fn func(Session)) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs = append(s.subs, subscriber{id: id, fn: fn})
	current := s.current
	s.mu.Unlock()

	fn(current)

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, sub := range s.subs {
			if sub.id == id {
				s.subs = append(s.subs[:i], s.subs[i+1:]...)
				return
			}
		}
	}
}

// Set replaces the session, persists it (or clears persisted state when
// sess is empty) and notifies all current subscribers.
func (s *Store) Set(ctx context.Context, sess Session) {
	s.mu.Lock()
	s.current = sess
	subs := make([]subscriber, len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()

	s.persist(ctx, sess)

	for _, sub := range subs {
		sub.fn(sess)
	}
}

// SetToken replaces the token, keeping the current user.
func (s *Store) SetToken(ctx context.Context, token string) {
	cur := s.Get()
	cur.Token = token
	s.Set(ctx, cur)
}

// SetUser replaces the user, keeping the current token.
func (s *Store) SetUser(ctx context.Context, user *models.User) {
	cur := s.Get()
	cur.User = user
	s.Set(ctx, cur)
}

// Clear resets the session to empty and removes the persisted token and
// user together. Safe to call repeatedly.
func (s *Store) Clear(ctx context.Context) {
	s.Set(ctx, Session{})
}

func (s *Store) persist(ctx context.Context, sess Session) {
	if s.db == nil {
		return
	}

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := state.NewSQLiteRepository(tx)

		if sess.Token == "" {
			if err := repo.Delete(ctx, state.KeyAccessToken); err != nil {
				return err
			}
		} else if err := repo.Set(ctx, state.KeyAccessToken, []byte(sess.Token)); err != nil {
			return err
		}

		if sess.User == nil {
			return repo.Delete(ctx, state.KeyCurrentUser)
		}
		raw, err := json.Marshal(sess.User)
		if err != nil {
			return err
		}
		return repo.Set(ctx, state.KeyCurrentUser, raw)
	})
	if err != nil {
		s.log.Warn(ctx, "cannot persist session", "err", err)
	}
}
