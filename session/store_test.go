package session_test

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/hemoglobin-nil/hemoglobin-go/session"
	"github.com/hemoglobin-nil/hemoglobin-go/session/storefakes"
	"github.com/hemoglobin-nil/hemoglobin-go/users"
)

func openEmptyStore(t *testing.T) *session.Store {
	t.Helper()
	return session.Open(context.Background(), storefakes.New())
}

func TestSetTokenAvoidsRedundantWrites(t *testing.T) {
	fake := storefakes.New()
	store := session.Open(context.Background(), fake)

	store.SetToken("abc")
	require.Equal(t, 1, fake.SaveCalls)

	// Same value again: no redundant persistence write.
	store.SetToken("abc")
	require.Equal(t, 1, fake.SaveCalls)

	store.SetToken("def")
	require.Equal(t, 2, fake.SaveCalls)
	require.Equal(t, "def", store.Token())
}

func TestSetUserAvoidsRedundantWrites(t *testing.T) {
	fake := storefakes.New()
	store := session.Open(context.Background(), fake)

	store.SetUser(&users.User{ID: "1", FullName: "Rahim"})
	require.Equal(t, 1, fake.SaveCalls)

	// Equal snapshot through a different pointer still counts as a no-op.
	store.SetUser(&users.User{ID: "1", FullName: "Rahim"})
	require.Equal(t, 1, fake.SaveCalls)

	store.SetUser(&users.User{ID: "1", FullName: "Karim"})
	require.Equal(t, 2, fake.SaveCalls)
}

func TestTokenAndUserIndependentlyNullable(t *testing.T) {
	store := openEmptyStore(t)

	store.SetToken("abc")
	require.True(t, store.Session().IsAuthenticated())
	require.Nil(t, store.User())

	// Role decisions never assume the snapshot is populated.
	_, ok := store.Role()
	require.False(t, ok) // "abc" is not a decodable token
}

func TestLogoutClearsMemoryAndStorage(t *testing.T) {
	fake := storefakes.New()
	store := session.Open(context.Background(), fake)

	store.SetToken(validToken(t))
	store.SetUser(&users.User{ID: "42"})
	_, ok := store.Role()
	require.True(t, ok)

	store.Logout(context.Background())

	_, ok = store.Role()
	require.False(t, ok)
	require.Empty(t, store.Token())
	require.Nil(t, store.User())
	require.Equal(t, 1, fake.ClearCalls)
	require.Nil(t, fake.Persisted)
}

func TestOpenRehydratesPersistedSession(t *testing.T) {
	fake := storefakes.New()
	fake.Persisted = &session.Session{
		Token: "abc",
		User:  &users.User{ID: "1", FullName: "Rahim", BloodGroup: "O+"},
	}

	store := session.Open(context.Background(), fake)
	require.Equal(t, "abc", store.Token())
	require.NotNil(t, store.User())
	require.Equal(t, "O+", store.User().BloodGroup)
}

func TestOpenTreatsCorruptBlobAsAbsentSession(t *testing.T) {
	fake := storefakes.New()
	fake.LoadErr = errors.New("unreadable blob")

	store := session.Open(context.Background(), fake)
	require.Empty(t, store.Token())
	require.Nil(t, store.User())
	require.False(t, store.Session().IsAuthenticated())
}

func TestExplicitSave(t *testing.T) {
	fake := storefakes.New()
	store := session.Open(context.Background(), fake)

	store.SetToken("abc")
	saves := fake.SaveCalls

	require.NoError(t, store.Save(context.Background()))
	require.Equal(t, saves+1, fake.SaveCalls)
	require.Equal(t, "abc", fake.Persisted.Token)
}

func validToken(t *testing.T) string {
	t.Helper()
	return mintToken(t, map[string]interface{}{"UserType": "Donor", "UserId": "42"})
}
