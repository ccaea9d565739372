package session

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"

	interrors "github.com/hemoglobin-nil/hemoglobin-go/internal/errors"
	"github.com/hemoglobin-nil/hemoglobin-go/users"
)

// Store is the in-memory authority over the current session. Mutations
// update memory first and then write through to Storage on a best-effort
// basis: a lagging or failed durable write never hides the in-memory
// state from subsequent reads. Callers that need a strict durability
// guarantee (e.g. right after login) call Save explicitly.
//
// Store is an explicit, injectable object rather than a package-level
// singleton so tests can construct a fresh one each run. It is safe for
// concurrent use.
type Store struct {
	mu      sync.RWMutex
	session Session
	storage Storage
}

// Open rehydrates a Store from storage. A corrupt or unreadable persisted
// blob is treated as an absent session rather than an error; the app must
// start either way.
func Open(ctx context.Context, storage Storage) *Store {
	st := &Store{storage: storage}
	loaded, err := storage.Load(ctx)
	if err != nil {
		log.Debug().Err(err).Msg("session: discarding unreadable persisted session")
		return st
	}
	if loaded != nil {
		st.session = *loaded
	}
	return st
}

// SetToken replaces the stored token. Setting the current value again is
// a no-op and does not trigger a persistence write.
func (st *Store) SetToken(token string) {
	st.mu.Lock()
	if st.session.Token == token {
		st.mu.Unlock()
		return
	}
	st.session.Token = token
	snapshot := st.session
	st.mu.Unlock()
	st.persist(snapshot)
}

// SetUser replaces the cached profile snapshot. Passing an equal snapshot
// does not trigger a persistence write.
func (st *Store) SetUser(user *users.User) {
	st.mu.Lock()
	if sameUser(st.session.User, user) {
		st.mu.Unlock()
		return
	}
	st.session.User = user
	snapshot := st.session
	st.mu.Unlock()
	st.persist(snapshot)
}

// Token returns the current bearer token, or "" when logged out. It also
// satisfies the client's TokenSource so the HTTP layer reads the live
// value immediately before each dispatch.
func (st *Store) Token() string {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.session.Token
}

// User returns the cached profile snapshot, which may be nil even while a
// token is present.
func (st *Store) User() *users.User {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.session.User
}

// Session returns a copy of the current state.
func (st *Store) Session() Session {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.session
}

// Role decodes the current token on demand. See DecodeRole for the
// fail-closed contract.
func (st *Store) Role() (Role, bool) {
	return DecodeRole(st.Token())
}

// Logout clears the in-memory state first, so any subsequent read sees an
// empty session even while the storage clear is still in flight. Storage
// failures are logged, not surfaced: the user is logged out regardless.
func (st *Store) Logout(ctx context.Context) {
	st.mu.Lock()
	st.session = Session{}
	st.mu.Unlock()

	if err := st.storage.Clear(ctx); err != nil {
		log.Err(err).Msg("session: failed to clear persisted session")
	}
}

// Save writes the current state through to storage and reports the
// outcome. Routine mutations already write through on a best-effort
// basis; Save is for the moments where durability must be confirmed.
func (st *Store) Save(ctx context.Context) error {
	snapshot := st.Session()
	if err := st.storage.Save(ctx, &snapshot); err != nil {
		return interrors.Wrapf(err, "session save")
	}
	return nil
}

func (st *Store) persist(snapshot Session) {
	if err := st.storage.Save(context.Background(), &snapshot); err != nil {
		log.Err(err).Msg("session: failed to persist session")
	}
}

func sameUser(a, b *users.User) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
