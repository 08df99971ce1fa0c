package credentialstore

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/FrumiousOwl/Teses-front-sub000/providers"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

type storedCredential struct {
	Credential string `json:"credential"`
}

// FileCredentialStore keeps the one credential key in a JSON file under the
// user config dir, standing in for the browser key/value storage of the
// packaged build.
type FileCredentialStore struct {
	mu   sync.Mutex
	path string
}

func NewFileCredentialStore(path string) providers.CredentialStore {
	return &FileCredentialStore{path: path}
}

// Get returns the stored credential, or "" when the file is missing or
// unreadable. Read failures are treated as "not logged in", never raised.
func (s *FileCredentialStore) Get() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		return ""
	}
	var sc storedCredential
	if err := jsoniter.Unmarshal(data, &sc); err != nil {
		return ""
	}
	return sc.Credential
}

func (s *FileCredentialStore) Set(raw string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return errors.Wrap(err, "failed to create credential dir")
	}
	data, err := jsoniter.Marshal(storedCredential{Credential: raw})
	if err != nil {
		return errors.Wrap(err, "failed to serialize credential")
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return errors.Wrap(err, "failed to write credential file")
	}
	return nil
}

func (s *FileCredentialStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "failed to remove credential file")
	}
	return nil
}
