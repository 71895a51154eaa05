package content

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/ziadkadry99/menubot/internal/logging"
)

// FallbackTitle is the title of the tree served when the content file is
// missing or corrupt.
const FallbackTitle = "Данные для кнопок для телеграмм бота Верхневолжского ГАУ"

// Store reads and writes the content file. Loads are cached and reused
// until the file's size or modification time changes, or Save is called.
type Store struct {
	path string
	log  *logging.Logger

	mu      sync.RWMutex
	cached  *Tree
	modTime time.Time
	size    int64
}

// NewStore creates a Store for the content file at path. log may be nil.
func NewStore(path string, log *logging.Logger) *Store {
	if log == nil {
		log = logging.Nop()
	}
	return &Store{path: path, log: log}
}

// Path returns the content file path.
func (s *Store) Path() string { return s.path }

// Load returns the current tree. Any read or parse failure is logged and
// yields an empty tree; Load never fails. Callers must treat the returned
// tree as read-only.
func (s *Store) Load() *Tree {
	info, err := os.Stat(s.path)
	if err != nil {
		s.log.Error("loading bot data", "path", s.path, "error", err)
		return EmptyTree(FallbackTitle)
	}

	s.mu.RLock()
	if s.cached != nil && info.ModTime().Equal(s.modTime) && info.Size() == s.size {
		t := s.cached
		s.mu.RUnlock()
		return t
	}
	s.mu.RUnlock()

	b, err := os.ReadFile(s.path)
	if err != nil {
		s.log.Error("loading bot data", "path", s.path, "error", err)
		return EmptyTree(FallbackTitle)
	}
	t, err := Decode(b)
	if err != nil {
		s.log.Error("parsing bot data", "path", s.path, "error", err)
		return EmptyTree(FallbackTitle)
	}

	s.mu.Lock()
	s.cached = t
	s.modTime = info.ModTime()
	s.size = info.Size()
	s.mu.Unlock()
	return t
}

// Tree implements the router's content source.
func (s *Store) Tree(_ context.Context) *Tree { return s.Load() }

// Save replaces the content file with t. The document is written to a
// temporary file in the same directory and renamed into place, so readers
// see either the old or the new file. On error the old file is untouched.
func (s *Store) Save(t *Tree) error {
	b, err := Encode(t)
	if err != nil {
		s.log.Error("saving bot data", "path", s.path, "error", err)
		return fmt.Errorf("encoding content: %w", err)
	}
	if err := writeAtomic(s.path, b); err != nil {
		s.log.Error("saving bot data", "path", s.path, "error", err)
		return err
	}

	s.mu.Lock()
	s.cached = nil
	s.mu.Unlock()
	return nil
}

func writeAtomic(dest string, b []byte) error {
	dir := filepath.Dir(dest)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating content directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmp.Name()
	_ = os.Chmod(tmpPath, 0o644)

	if _, err := tmp.Write(b); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpPath, dest); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("replacing %s: %w", dest, err)
	}
	return nil
}
