// Package session persists the client session (bearer token, cached
// role, cached avatar path) across runs, the way the browser original
// kept three localStorage entries. Backed by a small SQLite key/value
// table under the user's home directory.
package session

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/Hugo-git31/site-hugo-adopte-un-dev/internal/board"
)

// Storage keys, kept identical to the browser original.
const (
	KeyToken  = "jb_token"
	KeyAvatar = "jb_avatar"
	KeyRole   = "jb_role"
)

// Store is the persistent client-side key/value store. Only one active
// instance touches it per run, so no locking discipline beyond SQLite's
// single writer is needed.
type Store struct {
	db *sql.DB
}

// DefaultPath returns the session database location under the user's
// home directory.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("session: home dir: %w", err)
	}
	return filepath.Join(home, ".adopte-un-dev", "session.db"), nil
}

// Open opens (or creates) the session database at path. An empty path
// selects DefaultPath.
func Open(path string) (*Store, error) {
	if path == "" {
		var err error
		if path, err = DefaultPath(); err != nil {
			return nil, err
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("session: mkdir: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("session: open db: %w", err)
	}
	db.SetMaxOpenConns(1) // SQLite: single writer
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS kv (
		key        TEXT PRIMARY KEY,
		value      TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("session: init schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Get returns the stored value for key, or "" when absent.
func (s *Store) Get(key string) string {
	var value string
	err := s.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) || err != nil {
		return ""
	}
	return value
}

// Set stores value under key, replacing any previous value.
func (s *Store) Set(key, value string) error {
	now := time.Now().UTC().Format(time.RFC3339)
	_, err := s.db.Exec(
		`INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, now,
	)
	if err != nil {
		return fmt.Errorf("session: set %s: %w", key, err)
	}
	return nil
}

// Delete removes key. Missing keys are not an error.
func (s *Store) Delete(key string) error {
	if _, err := s.db.Exec(`DELETE FROM kv WHERE key = ?`, key); err != nil {
		return fmt.Errorf("session: delete %s: %w", key, err)
	}
	return nil
}

// Token returns the stored bearer token, "" when logged out.
// Implements api.TokenSource.
func (s *Store) Token() string { return s.Get(KeyToken) }

// SetToken stores the bearer token.
func (s *Store) SetToken(token string) error { return s.Set(KeyToken, token) }

// Role returns the cached account role.
func (s *Store) Role() board.Role { return board.ParseRole(s.Get(KeyRole)) }

// SetRole caches the account role alongside the token.
func (s *Store) SetRole(role board.Role) error {
	if role == board.RoleUnknown {
		return s.Delete(KeyRole)
	}
	return s.Set(KeyRole, string(role))
}

// AvatarPath returns the cached avatar path, "" when none.
func (s *Store) AvatarPath() string { return s.Get(KeyAvatar) }

// SetAvatarPath caches the normalized avatar path.
func (s *Store) SetAvatarPath(path string) error { return s.Set(KeyAvatar, path) }

// Clear wipes the whole session: token, role, avatar. Used on logout.
func (s *Store) Clear() error {
	for _, key := range []string{KeyToken, KeyRole, KeyAvatar} {
		if err := s.Delete(key); err != nil {
			return err
		}
	}
	return nil
}
