// Package storefile persists the session as a single JSON file, the
// device-local equivalent of a namespaced key in mobile storage.
package storefile

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/hemoglobin-nil/hemoglobin-go/session"
)

var _ session.Storage = (*Storage)(nil)

type Storage struct {
	path string
}

func New(path string) *Storage {
	return &Storage{path: path}
}

func (fs *Storage) Load(ctx context.Context) (*session.Session, error) {
	data, err := os.ReadFile(fs.path)
	if os.IsNotExist(err) {
		return &session.Session{}, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "read session file")
	}

	var s session.Session
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, errors.Wrap(err, "decode session file")
	}
	return &s, nil
}

func (fs *Storage) Save(ctx context.Context, s *session.Session) error {
	if err := os.MkdirAll(filepath.Dir(fs.path), 0o700); err != nil {
		return errors.Wrap(err, "create session dir")
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encode session")
	}

	// Write-then-rename so a crash mid-write can't leave a truncated blob.
	tmp := fs.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return errors.Wrap(err, "write session file")
	}
	if err := os.Rename(tmp, fs.path); err != nil {
		return errors.Wrap(err, "replace session file")
	}
	return nil
}

func (fs *Storage) Clear(ctx context.Context) error {
	err := os.Remove(fs.path)
	if err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "remove session file")
	}
	return nil
}
