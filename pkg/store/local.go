package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/haivivi/dynbuf/pkg/buf"
)

// Local implements FileStore on the local filesystem, rooted at a
// directory. Saves are atomic: the buffer is written to a temporary file
// in the target directory and renamed into place, so a crash mid-write
// never leaves a truncated object behind.
type Local struct {
	root string
}

// NewLocal creates a Local store rooted at dir, creating the directory
// (with parents) if needed.
func NewLocal(dir string) (*Local, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, err
	}
	return &Local{root: abs}, nil
}

// resolve maps a storage path to an absolute filesystem path. Paths that
// would escape the store root are rejected.
func (l *Local) resolve(path string) (string, error) {
	clean := filepath.Clean(filepath.FromSlash(path))
	if filepath.IsAbs(clean) || clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("store: path %q escapes store root", path)
	}
	return filepath.Join(l.root, clean), nil
}

// Load reads the named file into a new buffer.
func (l *Local) Load(_ context.Context, path string) (*buf.Buffer, error) {
	full, err := l.resolve(path)
	if err != nil {
		return nil, err
	}
	return buf.ReadFile(full)
}

// Save writes the buffer to the named file, creating parent directories
// as needed. The write goes through a temporary file and a rename so the
// destination is replaced atomically.
func (l *Local) Save(_ context.Context, path string, b *buf.Buffer) error {
	full, err := l.resolve(path)
	if err != nil {
		return err
	}
	dir := filepath.Dir(full)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".dynbuf-*")
	if err != nil {
		return err
	}
	if _, err := b.WriteTo(tmp); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), full)
}

// Delete removes the named file. Deleting a missing file is not an error.
func (l *Local) Delete(_ context.Context, path string) error {
	full, err := l.resolve(path)
	if err != nil {
		return err
	}
	if err := os.Remove(full); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

// Exists reports whether the named file exists.
func (l *Local) Exists(_ context.Context, path string) (bool, error) {
	full, err := l.resolve(path)
	if err != nil {
		return false, err
	}
	_, err = os.Stat(full)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, fs.ErrNotExist):
		return false, nil
	default:
		return false, err
	}
}

var _ FileStore = (*Local)(nil)
