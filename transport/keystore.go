package transport

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/anytype-sdk/anytype-go/errs"
)

// KeyStore is the abstract "load/store a bearer token" capability the
// core requires. Real backends (OS keychain, encrypted file, ...) are
// external collaborators outside this module's scope; this package
// provides only the interface and a minimal file-based default so the
// CLI has something to run against out of the box.
type KeyStore interface {
	// Load returns the current bearer token. It returns
	// *errs.Error{Kind: NoKeyStore} if no token has been stored.
	Load(ctx context.Context) (string, error)
	// Store persists token as the current bearer token, replacing any
	// previous value.
	Store(ctx context.Context, token string) error
	// Clear removes any stored token (logout).
	Clear(ctx context.Context) error
}

// FileKeyStore is a minimal KeyStore backed by a single file, guarded by
// an interior mutex so concurrent token reads are atomic snapshots and
// writes are serialized, matching a single-owner-per-process model.
// It stores the token in plain text; callers that need
// encryption at rest should supply their own KeyStore implementation.
type FileKeyStore struct {
	mu   sync.Mutex
	path string
}

// NewFileKeyStore returns a FileKeyStore backed by path.
func NewFileKeyStore(path string) *FileKeyStore {
	return &FileKeyStore{path: path}
}

func (f *FileKeyStore) Load(ctx context.Context) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", errs.New(errs.KindNoKeyStore, "no token stored at "+f.path)
		}
		return "", errs.Wrap(errs.KindKeyStore, "read keystore file", err)
	}
	token := strings.TrimSpace(string(data))
	if token == "" {
		return "", errs.New(errs.KindNoKeyStore, "empty token at "+f.path)
	}
	return token, nil
}

func (f *FileKeyStore) Store(ctx context.Context, token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(f.path), 0o700); err != nil {
		return errs.Wrap(errs.KindKeyStore, "create keystore directory", err)
	}
	if err := os.WriteFile(f.path, []byte(token), 0o600); err != nil {
		return errs.Wrap(errs.KindKeyStore, "write keystore file", err)
	}
	return nil
}

func (f *FileKeyStore) Clear(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := os.Remove(f.path); err != nil && !os.IsNotExist(err) {
		return errs.Wrap(errs.KindKeyStore, "remove keystore file", err)
	}
	return nil
}

// MemoryKeyStore is an in-memory KeyStore used by tests and by examples
// that do not want to touch the filesystem.
type MemoryKeyStore struct {
	mu    sync.Mutex
	token string
	set   bool
}

func NewMemoryKeyStore() *MemoryKeyStore { return &MemoryKeyStore{} }

func (m *MemoryKeyStore) Load(ctx context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.set {
		return "", errs.New(errs.KindNoKeyStore, "no token stored")
	}
	return m.token, nil
}

func (m *MemoryKeyStore) Store(ctx context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = token
	m.set = true
	return nil
}

func (m *MemoryKeyStore) Clear(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = ""
	m.set = false
	return nil
}
