// Package credstore persists the bearer credential between client runs as a
// plain file under the user's config directory.
package credstore

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

const (
	dirName  = "taskman"
	fileName = "credential"
)

// Store reads and writes the credential file at a fixed path.
type Store struct {
	path string
}

func New(path string) *Store {
	return &Store{path: path}
}

// DefaultPath places the credential under the OS config directory, falling
// back to the working directory when none is defined.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(".", dirName, fileName)
	}
	return filepath.Join(dir, dirName, fileName)
}

// Load returns the stored credential, or "" when none has been saved.
func (s *Store) Load() (string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

// Save writes the credential, creating the directory if needed. The file is
// readable by the owner only.
func (s *Store) Save(token string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(s.path, []byte(token), 0o600)
}

// Clear removes the credential file. Clearing an already-empty store is not
// an error.
func (s *Store) Clear() error {
	err := os.Remove(s.path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
