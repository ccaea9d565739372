package storefakes

import (
	"context"
	"sync"

	"github.com/pkg/errors"

	"github.com/hemoglobin-nil/hemoglobin-go/session"
)

var _ session.Storage = (*FakeStorage)(nil)

// FakeStorage is an in-memory session.Storage that counts operations so
// tests can assert write-avoidance and clear behavior.
type FakeStorage struct {
	lock sync.Mutex

	Persisted *session.Session
	LoadErr   error

	SaveCalls  int
	ClearCalls int
}

func New() *FakeStorage {
	return &FakeStorage{}
}

func (f *FakeStorage) Load(ctx context.Context) (*session.Session, error) {
	f.lock.Lock()
	defer f.lock.Unlock()

	if f.LoadErr != nil {
		return nil, errors.Wrap(f.LoadErr, "fake load")
	}
	if f.Persisted == nil {
		return &session.Session{}, nil
	}
	cp := *f.Persisted
	return &cp, nil
}

func (f *FakeStorage) Save(ctx context.Context, s *session.Session) error {
	f.lock.Lock()
	defer f.lock.Unlock()

	f.SaveCalls++
	cp := *s
	f.Persisted = &cp
	return nil
}

func (f *FakeStorage) Clear(ctx context.Context) error {
	f.lock.Lock()
	defer f.lock.Unlock()

	f.ClearCalls++
	f.Persisted = nil
	return nil
}
