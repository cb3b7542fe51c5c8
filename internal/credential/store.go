// Package credential persists the single bearer credential for the scout CLI.
// At most one credential exists at a time; it survives process restarts and
// is destroyed by logout or by the gateway when the service rejects it.
package credential

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
)

const storeFile = "credentials.json"

// stored is the on-disk shape. Kept minimal on purpose: the service owns
// expiry, the client only holds the opaque token.
type stored struct {
	AccessToken string `json:"access_token"`
}

// Store is a single-slot credential register backed by a JSON file under the
// scout config directory. Last write wins; readers see the most recent value.
type Store struct {
	mu   sync.Mutex
	path string
	tok  string
}

// NewStore creates a store rooted at dir (typically ~/.scout) and loads any
// credential persisted by a previous run. A missing or unreadable file is not
// an error; it just means no credential is held.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, err
	}
	s := &Store{path: filepath.Join(dir, storeFile)}
	s.load()
	return s, nil
}

// DefaultDir returns the per-user scout directory.
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".scout"), nil
}

func (s *Store) load() {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return
	}
	var st stored
	if err := json.Unmarshal(data, &st); err != nil {
		return
	}
	s.tok = st.AccessToken
}

// Set stores a credential and persists it.
func (s *Store) Set(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tok = token
	data, err := json.MarshalIndent(stored{AccessToken: token}, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o600)
}

// Token returns the stored credential, and whether one is held.
func (s *Store) Token() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tok, s.tok != ""
}

// Clear removes the credential from memory and disk.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tok = ""
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
