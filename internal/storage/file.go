package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/natefinch/atomic"
)

// emptySnapshot seeds collection files on first access.
var emptySnapshot = []byte("{}")

// FileBackend keeps each collection in <dir>/<name>.json.
// The directory and an empty snapshot file are created on first access, so
// Load never reports ErrSnapshotNotFound.
type FileBackend struct {
	dir string
}

func NewFileBackend(dir string) *FileBackend {
	return &FileBackend{dir: dir}
}

func (b *FileBackend) path(name string) string {
	return filepath.Join(b.dir, name+".json")
}

func (b *FileBackend) ensure(name string) error {
	if err := os.MkdirAll(b.dir, 0o755); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}
	path := b.path(name)
	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("stat %s: %w", path, err)
	}
	if err := atomic.WriteFile(path, bytes.NewReader(emptySnapshot)); err != nil {
		return fmt.Errorf("seed %s: %w", path, err)
	}
	return nil
}

func (b *FileBackend) Load(_ context.Context, name string) ([]byte, error) {
	if err := b.ensure(name); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(b.path(name))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	return data, nil
}

// Save writes the snapshot to a temporary file and renames it into place.
func (b *FileBackend) Save(_ context.Context, name string, data []byte) error {
	if err := os.MkdirAll(b.dir, 0o755); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}
	if err := atomic.WriteFile(b.path(name), bytes.NewReader(data)); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}

func (b *FileBackend) Close() error {
	return nil
}
