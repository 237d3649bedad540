package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"

	"bookshelf/internal/library"
	"bookshelf/internal/logging"
)

// Store reads and writes the library document at a fixed path.
type Store struct {
	path   string
	logger *slog.Logger
	lock   *flock.Flock
}

// New creates a store for the document at path.
func New(path string, logger *slog.Logger) *Store {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Store{
		path:   path,
		logger: logging.WithComponent(logger, "store"),
		lock:   flock.New(path + ".lock"),
	}
}

// Path returns the document location.
func (s *Store) Path() string {
	return s.path
}

// Load reads the full document. A missing file yields an empty collection
// with no error; read and parse failures are returned for the caller to
// degrade from.
func (s *Store) Load() ([]library.Book, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.logger.Debug("no library document, starting empty", logging.String("path", s.path))
			return nil, nil
		}
		return nil, fmt.Errorf("read library: %w", err)
	}
	if len(data) == 0 {
		return nil, nil
	}

	var books []library.Book
	if err := json.Unmarshal(data, &books); err != nil {
		return nil, fmt.Errorf("parse library: %w", err)
	}

	s.logger.Debug("library loaded",
		logging.Int("book_count", len(books)),
		logging.String("path", s.path))
	return books, nil
}

// Save overwrites the document with the full record sequence, atomically via
// temp file and rename.
func (s *Store) Save(books []library.Book) error {
	if books == nil {
		books = []library.Book{}
	}
	data, err := json.MarshalIndent(books, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal library: %w", err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create library directory: %w", err)
	}

	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath) // cleanup on failure
		return fmt.Errorf("rename temp file: %w", err)
	}

	s.logger.Debug("library saved",
		logging.Int("book_count", len(books)),
		logging.String("path", s.path))
	return nil
}

// TryLock attempts to take the advisory sidecar lock. It reports false when
// another process already holds it; callers warn and proceed.
func (s *Store) TryLock() (bool, error) {
	ok, err := s.lock.TryLock()
	if err != nil {
		return false, fmt.Errorf("acquire library lock: %w", err)
	}
	return ok, nil
}

// Unlock releases the advisory lock and removes the sidecar file.
func (s *Store) Unlock() {
	if err := s.lock.Unlock(); err != nil {
		s.logger.Warn("release library lock", logging.Error(err))
		return
	}
	_ = os.Remove(s.lock.Path())
}
