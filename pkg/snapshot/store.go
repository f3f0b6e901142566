package snapshot

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/vango-dev/pact/internal/config"
	"github.com/vango-dev/pact/internal/errors"
)

// Store persists snapshot bytes under a key.
type Store interface {
	Put(ctx context.Context, key string, data []byte) error
}

// FileStore writes snapshots into a directory.
type FileStore struct {
	dir string
}

// NewFileStore creates dir if needed and returns a store writing into it.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, errors.New("E110").WithDetail(dir).Wrap(err)
	}
	return &FileStore{dir: dir}, nil
}

// Put writes data to dir/key. Keys must not escape the directory.
func (s *FileStore) Put(ctx context.Context, key string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	clean := filepath.Clean(filepath.FromSlash(key))
	if clean == "." || filepath.IsAbs(clean) || strings.HasPrefix(clean, "..") {
		return errors.New("E110").WithDetailf("invalid key %q", key)
	}

	path := filepath.Join(s.dir, clean)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.New("E110").Wrap(err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.New("E110").Wrap(err)
	}
	return nil
}

// Dir returns the store directory.
func (s *FileStore) Dir() string {
	return s.dir
}

// MemoryStore keeps snapshots in memory.
type MemoryStore struct {
	mu      sync.RWMutex
	objects map[string][]byte
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{objects: make(map[string][]byte)}
}

// Put stores a copy of data.
func (s *MemoryStore) Put(_ context.Context, key string, data []byte) error {
	buf := make([]byte, len(data))
	copy(buf, data)

	s.mu.Lock()
	s.objects[key] = buf
	s.mu.Unlock()
	return nil
}

// Get returns the data stored under key.
func (s *MemoryStore) Get(key string) ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, ok := s.objects[key]
	return data, ok
}

// Keys returns every stored key in sorted order.
func (s *MemoryStore) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	keys := make([]string, 0, len(s.objects))
	for k := range s.objects {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// FromConfig returns the store selected by cfg: S3 when a bucket is set,
// a directory when dir is set, and nil when neither is.
func FromConfig(cfg config.SnapshotsConfig) (Store, error) {
	switch {
	case cfg.Bucket != "":
		return NewS3Store(NewS3Client(cfg), cfg.Bucket, cfg.Prefix), nil
	case cfg.Dir != "":
		return NewFileStore(cfg.Dir)
	default:
		return nil, nil
	}
}
