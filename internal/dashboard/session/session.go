// Package session persists the admin bearer token between dashboard runs,
// standing in for the browser's local storage. The token lives in a single
// file under a fixed key-like name; clearing the session removes it.
package session

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

const tokenFile = "fleet_admin_token"

type Store struct {
	dir string
}

// New returns a store rooted at dir. An empty dir falls back to the user's
// config directory.
func New(dir string) (*Store, error) {
	if dir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return nil, err
		}
		dir = filepath.Join(base, "fleet-admin")
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, err
	}
	return &Store{dir: dir}, nil
}

// Token returns the stored token, or "" when no session exists.
func (s *Store) Token() string {
	data, err := os.ReadFile(s.path())
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

func (s *Store) Save(token string) error {
	return os.WriteFile(s.path(), []byte(token), 0o600)
}

// Clear removes the stored session. Clearing an absent session is not an
// error.
func (s *Store) Clear() error {
	if err := os.Remove(s.path()); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

func (s *Store) path() string {
	return filepath.Join(s.dir, tokenFile)
}
