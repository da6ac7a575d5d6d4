// Package session persists the single authenticated session between runs.
package session

import (
	"encoding/json"
	"os"
	"strings"

	"workable/internal/config"
	"workable/internal/service"
)

// Store reads and writes the persisted session record: a token file and a
// serialized identity under the config directory. Absence of either file
// means "no session".
type Store struct {
	dir          string
	tokenPath    string
	identityPath string
}

// NewStore creates a Store over the config directory.
func NewStore(cfg *config.Config) *Store {
	return &Store{
		dir:          cfg.Dir,
		tokenPath:    cfg.TokenPath(),
		identityPath: cfg.IdentityPath(),
	}
}

// Load reads the persisted session. The second return is false when no
// session exists. A corrupt identity record is treated as absent and the
// persisted record is cleared so the next Load starts clean.
func (s *Store) Load() (service.Session, bool) {
	tokenData, err := os.ReadFile(s.tokenPath)
	if err != nil {
		return service.Session{}, false
	}
	token := strings.TrimSpace(string(tokenData))
	if token == "" {
		return service.Session{}, false
	}

	identityData, err := os.ReadFile(s.identityPath)
	if err != nil {
		return service.Session{}, false
	}

	var identity service.Identity
	if err := json.Unmarshal(identityData, &identity); err != nil || identity.ID == "" {
		s.Clear()
		return service.Session{}, false
	}

	return service.Session{Identity: identity, Token: token}, true
}

// Save overwrites the persisted session. Files are written with mode 0600.
func (s *Store) Save(sess service.Session) error {
	if err := os.MkdirAll(s.dir, 0700); err != nil {
		return err
	}
	identityData, err := json.MarshalIndent(sess.Identity, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(s.tokenPath, []byte(sess.Token), 0600); err != nil {
		return err
	}
	return os.WriteFile(s.identityPath, identityData, 0600)
}

// Clear removes the persisted session unconditionally.
func (s *Store) Clear() {
	os.Remove(s.tokenPath)
	os.Remove(s.identityPath)
}
