package session

import "context"

// Storage persists the session across process restarts. Implementations
// store the serialized {token, user} pair under a single namespaced key
// (a file on disk, keychain entry, etc.).
type Storage interface {
	// Load returns the persisted session, or an empty session when nothing
	// has been persisted yet. An error indicates an unreadable blob.
	Load(ctx context.Context) (*Session, error)

	// Save replaces the persisted session.
	Save(ctx context.Context, s *Session) error

	// Clear removes the persisted session. Clearing an already-empty
	// storage is not an error.
	Clear(ctx context.Context) error
}
