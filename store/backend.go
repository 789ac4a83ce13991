package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// StorageKey names the persisted blob.
const StorageKey = "wealth-guard-storage"

// Backend persists the serialized snapshot. Load returns nil data when nothing was saved yet.
type Backend interface {
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, data []byte) error
}

// FileBackend stores the blob in a single JSON file inside Dir.
type FileBackend struct {
	Dir string
}

// Path returns the path of the storage file.
func (b FileBackend) Path() string { return filepath.Join(b.Dir, StorageKey+".json") }

func (b FileBackend) Load(ctx context.Context) ([]byte, error) {
	data, err := os.ReadFile(b.Path())
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not read storage file %q: %w", b.Path(), err)
	}
	return data, nil
}

// Save writes data to a temporary file first and renames it over the storage file, so that
// a crash never leaves a truncated file behind.
func (b FileBackend) Save(ctx context.Context, data []byte) error {
	if err := os.MkdirAll(b.Dir, 0755); err != nil {
		return fmt.Errorf("could not create storage directory %q: %w", b.Dir, err)
	}
	tmp, err := os.CreateTemp(b.Dir, StorageKey+"-*.tmp")
	if err != nil {
		return fmt.Errorf("could not create temporary storage file: %w", err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("could not write storage file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("could not write storage file: %w", err)
	}
	if err := os.Rename(tmp.Name(), b.Path()); err != nil {
		return fmt.Errorf("could not replace storage file %q: %w", b.Path(), err)
	}
	return nil
}

// MemoryBackend keeps the blob in memory.
type MemoryBackend struct {
	mu   sync.Mutex
	data []byte
}

func (b *MemoryBackend) Load(ctx context.Context) ([]byte, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.data, nil
}

func (b *MemoryBackend) Save(ctx context.Context, data []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.data = append([]byte(nil), data...)
	return nil
}
