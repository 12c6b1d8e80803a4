package client

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurrentUser(t *testing.T) {
	t.Run("decodes the stored user", func(t *testing.T) {
		session := NewMemorySession()
		session.SetItem(SessionKeyUser, `{"type":"Employee","email":"a@a","status":"connected"}`)

		user, err := CurrentUser(session)
		require.NoError(t, err)
		assert.Equal(t, UserTypeEmployee, user.Type)
		assert.Equal(t, "a@a", user.Email)
	})

	t.Run("fails on an empty session", func(t *testing.T) {
		_, err := CurrentUser(NewMemorySession())
		assert.Error(t, err)
	})

	t.Run("fails on a corrupted record", func(t *testing.T) {
		session := NewMemorySession()
		session.SetItem(SessionKeyUser, "{not json")

		_, err := CurrentUser(session)
		assert.Error(t, err)
	})
}

func TestMemorySessionClear(t *testing.T) {
	session := NewMemorySession()
	session.SetItem(SessionKeyJWT, "token")
	session.Clear()
	assert.Empty(t, session.GetItem(SessionKeyJWT))
}

func TestFileSessionRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "billed", "session.json")

	first, err := NewFileSession(path)
	require.NoError(t, err)
	first.SetItem(SessionKeyJWT, "token-1234")
	first.SetItem(SessionKeyUser, `{"type":"Employee","email":"a@a"}`)
	require.NoError(t, first.Save())

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	second, err := NewFileSession(path)
	require.NoError(t, err)
	assert.Equal(t, "token-1234", second.GetItem(SessionKeyJWT))

	user, err := CurrentUser(second)
	require.NoError(t, err)
	assert.Equal(t, "a@a", user.Email)
}

func TestFileSessionMissingFileStartsEmpty(t *testing.T) {
	session, err := NewFileSession(filepath.Join(t.TempDir(), "absent.json"))
	require.NoError(t, err)
	assert.Empty(t, session.GetItem(SessionKeyJWT))
}

func TestFileSessionRejectsCorruptedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte("{broken"), 0600))

	_, err := NewFileSession(path)
	assert.Error(t, err)
}
