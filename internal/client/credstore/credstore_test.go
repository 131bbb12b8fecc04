package credstore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStore_LoadMissingFile(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "nested", "credential"))

	tok, err := s.Load()
	require.NoError(t, err)
	require.Empty(t, tok)
}

func TestStore_SaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "taskman", "credential")
	s := New(path)

	require.NoError(t, s.Save("tok-123"))

	tok, err := s.Load()
	require.NoError(t, err)
	require.Equal(t, "tok-123", tok)

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestStore_SaveOverwrites(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "credential"))

	require.NoError(t, s.Save("first"))
	require.NoError(t, s.Save("second"))

	tok, err := s.Load()
	require.NoError(t, err)
	require.Equal(t, "second", tok)
}

func TestStore_Clear(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "credential"))
	require.NoError(t, s.Save("tok"))

	require.NoError(t, s.Clear())

	tok, err := s.Load()
	require.NoError(t, err)
	require.Empty(t, tok)

	require.NoError(t, s.Clear(), "clearing twice is fine")
}
