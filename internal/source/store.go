// Package source reads guard modules and writes generated artifacts through a
// go-billy filesystem.
package source

import (
	"fmt"
	"os"
	"path"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"

	"guardgen/internal/guarderr"
)

// Module is the raw text of a guard-definition file.
type Module struct {
	Path string
	Text []byte
}

// Store performs the two I/O operations of a generator run.
type Store struct {
	fs billy.Filesystem
}

// NewStore wraps an existing go-billy filesystem.
func NewStore(fsys billy.Filesystem) *Store {
	return &Store{fs: fsys}
}

// NewOSStore creates a store rooted at dir on the host filesystem.
func NewOSStore(dir string) *Store {
	return &Store{fs: osfs.New(dir)}
}

// NewInMemoryStore creates a store backed by memory.
func NewInMemoryStore() *Store {
	return &Store{fs: memfs.New()}
}

// Load reads the module at p.
func (s *Store) Load(p string) (*Module, error) {
	text, err := util.ReadFile(s.fs, p)
	if err != nil {
		return nil, &guarderr.IOError{Op: "read", Path: p, Err: err}
	}
	return &Module{Path: p, Text: text}, nil
}

// WriteAtomic replaces the file at p with data. The data is written to a temporary
// file next to p and renamed over it, so readers never observe a partial file.
func (s *Store) WriteAtomic(p string, data []byte) error {
	if err := s.writeAtomic(p, data); err != nil {
		return &guarderr.IOError{Op: "write", Path: p, Err: err}
	}
	return nil
}

func (s *Store) writeAtomic(p string, data []byte) error {
	dir := path.Dir(p)
	if err := s.fs.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("mkdirall %q: %w", dir, err)
	}

	tmp, err := s.fs.TempFile(dir, ".guardgen-")
	if err != nil {
		return fmt.Errorf("tempfile in %q: %w", dir, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = s.fs.Remove(tmpName)
		return fmt.Errorf("write %q: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		_ = s.fs.Remove(tmpName)
		return fmt.Errorf("close %q: %w", tmpName, err)
	}
	if chmod, ok := s.fs.(billy.Change); ok {
		// TempFile creates files with mode 0600.
		_ = chmod.Chmod(tmpName, 0o644)
	}
	if err := s.fs.Rename(tmpName, p); err != nil {
		_ = s.fs.Remove(tmpName)
		return fmt.Errorf("rename %q: %w", tmpName, err)
	}
	return nil
}

// Exists reports whether p exists.
func (s *Store) Exists(p string) (bool, error) {
	_, err := s.fs.Stat(p)
	switch {
	case err == nil:
		return true, nil
	case os.IsNotExist(err):
		return false, nil
	default:
		return false, fmt.Errorf("stat %q: %w", p, err)
	}
}
