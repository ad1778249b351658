package persistence

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

var (
	// ErrNotFound indicates the document file does not exist yet.
	ErrNotFound = errors.New("document not found")
	// ErrCorrupt indicates the document file exists but cannot be parsed.
	ErrCorrupt = errors.New("document corrupt")
)

// FileStore loads and saves whole JSON documents under a data directory.
// Each named document maps to one file; saves rewrite the full document
// through a temp file and rename so a crash mid-write cannot corrupt it.
type FileStore struct {
	dir    string
	logger *zap.Logger
}

// NewFileStore prepares the data directory and returns a store.
func NewFileStore(dir string, logger *zap.Logger) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &FileStore{dir: dir, logger: logger}, nil
}

// Path returns the on-disk location of a named document.
func (s *FileStore) Path(name string) string {
	return filepath.Join(s.dir, name)
}

// Load reads the named document into out. A missing file yields ErrNotFound,
// an unparseable one ErrCorrupt; callers decide whether to reinitialize.
func (s *FileStore) Load(name string, out any) error {
	data, err := os.ReadFile(s.Path(name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return ErrNotFound
		}
		return fmt.Errorf("read %s: %w", name, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrCorrupt, name, err)
	}
	return nil
}

// Save serializes the document and atomically replaces the file.
func (s *FileStore) Save(name string, doc any) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}

	tmp, err := os.CreateTemp(s.dir, "."+name+".*")
	if err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("write %s: %w", name, err)
	}
	if err := os.Rename(tmpName, s.Path(name)); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace %s: %w", name, err)
	}
	return nil
}

// Ping verifies the data directory is still accessible.
func (s *FileStore) Ping() error {
	info, err := os.Stat(s.dir)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", s.dir)
	}
	return nil
}
