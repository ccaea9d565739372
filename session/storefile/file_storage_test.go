package storefile_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hemoglobin-nil/hemoglobin-go/session"
	"github.com/hemoglobin-nil/hemoglobin-go/session/storefile"
	"github.com/hemoglobin-nil/hemoglobin-go/users"
)

func tempPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "session.json")
}

func TestRoundTrip(t *testing.T) {
	path := tempPath(t)
	ctx := context.Background()

	original := &session.Session{
		Token: "abc",
		User:  &users.User{ID: "42", FullName: "Rahim", BloodGroup: "B+"},
	}
	require.NoError(t, storefile.New(path).Save(ctx, original))

	// Simulated process restart: a fresh Storage over the same path.
	loaded, err := storefile.New(path).Load(ctx)
	require.NoError(t, err)
	require.Equal(t, original, loaded)
}

func TestLoadMissingFileIsEmptySession(t *testing.T) {
	loaded, err := storefile.New(tempPath(t)).Load(context.Background())
	require.NoError(t, err)
	require.Equal(t, &session.Session{}, loaded)
}

func TestCorruptFileDoesNotCrashStoreOpen(t *testing.T) {
	path := tempPath(t)
	require.NoError(t, os.WriteFile(path, []byte("{{{not json"), 0o600))

	storage := storefile.New(path)
	_, err := storage.Load(context.Background())
	require.Error(t, err)

	// The store swallows the corrupt blob and starts unauthenticated.
	store := session.Open(context.Background(), storage)
	require.Empty(t, store.Token())
	require.Nil(t, store.User())
}

func TestClear(t *testing.T) {
	path := tempPath(t)
	ctx := context.Background()
	storage := storefile.New(path)

	require.NoError(t, storage.Save(ctx, &session.Session{Token: "abc"}))
	require.NoError(t, storage.Clear(ctx))

	loaded, err := storage.Load(ctx)
	require.NoError(t, err)
	require.Empty(t, loaded.Token)

	// Clearing an already-empty storage is not an error.
	require.NoError(t, storage.Clear(ctx))
}
