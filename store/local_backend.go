package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// LocalBackend keeps one JSON file per entity key under a data directory.
// It is synchronous, device-scoped and has no network dependency; state
// survives process restarts the way browser-local storage survives reloads.
type LocalBackend struct {
	mu  sync.Mutex
	dir string
}

func NewLocalBackend(dir string) (*LocalBackend, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data dir: %w", err)
	}
	return &LocalBackend{dir: dir}, nil
}

func (b *LocalBackend) path(key EntityKey) string {
	return filepath.Join(b.dir, string(key)+".json")
}

func (b *LocalBackend) Load(key EntityKey, out any) (bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	data, err := os.ReadFile(b.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read %s: %w", key, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return false, fmt.Errorf("failed to decode %s: %w", key, err)
	}
	return true, nil
}

func (b *LocalBackend) Save(key EntityKey, value any) <-chan error {
	b.mu.Lock()
	defer b.mu.Unlock()

	data, err := json.Marshal(value)
	if err != nil {
		return resolved(fmt.Errorf("failed to encode %s: %w", key, err))
	}

	// Write-then-rename so a crash mid-write never corrupts the entity file.
	tmp := b.path(key) + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return resolved(fmt.Errorf("failed to write %s: %w", key, err))
	}
	return resolved(os.Rename(tmp, b.path(key)))
}

// SetIdentity is a no-op: local state is scoped to the device, not an account.
func (b *LocalBackend) SetIdentity(string) {}
