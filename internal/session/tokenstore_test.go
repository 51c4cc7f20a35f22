package session

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileTokenStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "token")
	s := NewFileTokenStore(path)

	require.NoError(t, s.Save("tok-123"))

	token, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, "tok-123", token)
}

func TestFileTokenStore_LoadMissingFile(t *testing.T) {
	s := NewFileTokenStore(filepath.Join(t.TempDir(), "absent"))

	token, err := s.Load()

	require.NoError(t, err)
	assert.Empty(t, token)
}

func TestFileTokenStore_Clear(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token")
	s := NewFileTokenStore(path)

	require.NoError(t, s.Save("tok-123"))
	require.NoError(t, s.Clear())

	token, err := s.Load()
	require.NoError(t, err)
	assert.Empty(t, token)

	// Clearing twice is fine.
	require.NoError(t, s.Clear())
}

func TestFileTokenStore_SaveOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token")
	s := NewFileTokenStore(path)

	require.NoError(t, s.Save("first"))
	require.NoError(t, s.Save("second"))

	token, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, "second", token)
}
