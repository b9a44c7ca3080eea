package supabase

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/and161185/moment-keeper/internal/model"
)

// sessionFile is the on-disk form of a session.
type sessionFile struct {
	UserID       string    `json:"user_id"`
	Email        string    `json:"email"`
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	ExpiresAt    time.Time `json:"expires_at"`
}

// FileStore persists one session as session.json inside Dir.
type FileStore struct {
	Dir string
}

// Path returns the session file location.
func (s FileStore) Path() string { return filepath.Join(s.Dir, "session.json") }

// Save writes sess with owner-only permissions.
func (s FileStore) Save(sess model.Session) error {
	if err := os.MkdirAll(s.Dir, 0o700); err != nil {
		return err
	}
	b, err := json.MarshalIndent(sessionFile{
		UserID:       sess.User.ID.String(),
		Email:        sess.User.Email,
		AccessToken:  sess.AccessToken,
		RefreshToken: sess.RefreshToken,
		ExpiresAt:    sess.ExpiresAt,
	}, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.Path(), b, 0o600)
}

// Load returns the stored session, or nil when none was saved.
func (s FileStore) Load() (*model.Session, error) {
	b, err := os.ReadFile(s.Path())
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var sf sessionFile
	if err := json.Unmarshal(b, &sf); err != nil {
		return nil, fmt.Errorf("session file: %w", err)
	}
	id, err := uuid.FromString(sf.UserID)
	if err != nil {
		return nil, fmt.Errorf("session file user id: %w", err)
	}
	return &model.Session{
		User:         model.Identity{ID: id, Email: sf.Email},
		AccessToken:  sf.AccessToken,
		RefreshToken: sf.RefreshToken,
		ExpiresAt:    sf.ExpiresAt,
	}, nil
}

// Clear removes the session file. A missing file is not an error.
func (s FileStore) Clear() error {
	err := os.Remove(s.Path())
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}
