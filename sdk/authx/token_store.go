package authx

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/pkg/errors"
)

const (
	accessTokenFile = "access_token"
	userCacheFile   = "user.json"
)

// TokenStore persists an access token and a cached User between operations.
// The cached user is best-effort: it only has meaning alongside a stored
// token, and a corrupt cache reads as absent rather than erroring. No
// implementation enforces token expiry; that is advisory metadata only.
type TokenStore interface {
	// SaveToken stores the access token.
	SaveToken(token string) error
	// Token returns the stored access token, or "" if there is none.
	Token() string
	// ClearToken removes the stored access token. Removing an already absent
	// token is not an error.
	ClearToken() error
	// SaveUser caches the given User.
	SaveUser(user *User) error
	// User returns the cached User, or nil if there is none or the cache
	// cannot be read.
	User() *User
	// ClearUser removes the cached User. Removing an already absent cache is
	// not an error.
	ClearUser() error
}

// memoryTokenStore keeps the token and user in process memory only. This is
// the default for embedded SDK use and for tests.
type memoryTokenStore struct {
	mu    sync.RWMutex
	token string
	user  []byte
}

// NewMemoryTokenStore returns a TokenStore scoped to the current process.
func NewMemoryTokenStore() TokenStore {
	return &memoryTokenStore{}
}

func (m *memoryTokenStore) SaveToken(token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = token
	return nil
}

func (m *memoryTokenStore) Token() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.token
}

func (m *memoryTokenStore) ClearToken() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = ""
	return nil
}

func (m *memoryTokenStore) SaveUser(user *User) error {
	userBytes, err := json.Marshal(user)
	if err != nil {
		return errors.Wrap(err, "error marshaling user")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.user = userBytes
	return nil
}

func (m *memoryTokenStore) User() *User {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if len(m.user) == 0 {
		return nil
	}
	user := &User{}
	if err := json.Unmarshal(m.user, user); err != nil {
		return nil
	}
	return user
}

func (m *memoryTokenStore) ClearUser() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.user = nil
	return nil
}

// fileTokenStore persists the token and cached user as files under a
// directory, typically ~/.metricsimple. The token file is written 0600 since
// it holds a credential.
type fileTokenStore struct {
	dir string
}

// NewFileTokenStore returns a TokenStore backed by files under the given
// directory. The directory is created on first write.
func NewFileTokenStore(dir string) TokenStore {
	return &fileTokenStore{dir: dir}
}

func (f *fileTokenStore) SaveToken(token string) error {
	if err := f.ensureDir(); err != nil {
		return err
	}
	tokenPath := filepath.Join(f.dir, accessTokenFile)
	if err :=
		os.WriteFile(tokenPath, []byte(token), 0600); err != nil {
		return errors.Wrapf(err, "error writing to %s", tokenPath)
	}
	return nil
}

func (f *fileTokenStore) Token() string {
	tokenBytes, err := os.ReadFile(filepath.Join(f.dir, accessTokenFile))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(tokenBytes))
}

func (f *fileTokenStore) ClearToken() error {
	return f.remove(accessTokenFile)
}

func (f *fileTokenStore) SaveUser(user *User) error {
	if err := f.ensureDir(); err != nil {
		return err
	}
	userBytes, err := json.Marshal(user)
	if err != nil {
		return errors.Wrap(err, "error marshaling user")
	}
	userPath := filepath.Join(f.dir, userCacheFile)
	if err := os.WriteFile(userPath, userBytes, 0600); err != nil {
		return errors.Wrapf(err, "error writing to %s", userPath)
	}
	return nil
}

func (f *fileTokenStore) User() *User {
	userBytes, err := os.ReadFile(filepath.Join(f.dir, userCacheFile))
	if err != nil {
		return nil
	}
	user := &User{}
	if err := json.Unmarshal(userBytes, user); err != nil {
		// A corrupt cache is treated as an absent one.
		return nil
	}
	return user
}

func (f *fileTokenStore) ClearUser() error {
	return f.remove(userCacheFile)
}

func (f *fileTokenStore) ensureDir() error {
	if err := os.MkdirAll(f.dir, 0755); err != nil {
		return errors.Wrapf(err, "error creating %s", f.dir)
	}
	return nil
}

func (f *fileTokenStore) remove(name string) error {
	path := filepath.Join(f.dir, name)
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return errors.Wrapf(err, "error removing %s", path)
	}
	return nil
}
