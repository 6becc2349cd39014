package catalog

import (
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
)

// ErrNotLoaded is returned when the store is asked for a catalog before
// any successful load.
var ErrNotLoaded = errors.New("rule catalog not loaded")

// Store caches a loaded catalog with a load-once, serve-many lifecycle.
// The file is read on the first Load; every later access serves the
// cached pointer. Reload re-reads the file and swaps the pointer
// atomically, so concurrent readers always see a complete catalog.
type Store struct {
	path   string
	logger *slog.Logger

	loadOnce sync.Once
	loadErr  error
	current  atomic.Pointer[Catalog]
}

// NewStore creates a store for the catalog at path.
func NewStore(path string, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{path: path, logger: logger}
}

// Path returns the catalog file path the store reads from.
func (s *Store) Path() string {
	return s.path
}

// Load reads and validates the catalog file on first call and caches the
// result. Subsequent calls return the cached catalog without touching the
// file. A failed first load is sticky until Reload succeeds.
func (s *Store) Load() (*Catalog, error) {
	s.loadOnce.Do(func() {
		cat, err := LoadFromFile(s.path)
		if err != nil {
			s.loadErr = err
			return
		}
		s.current.Store(cat)
		s.logger.Debug("rule catalog loaded", slog.String("path", s.path))
	})
	if cat := s.current.Load(); cat != nil {
		return cat, nil
	}
	return nil, s.loadErr
}

// Catalog returns the cached catalog, or ErrNotLoaded before the first
// successful Load or Reload.
func (s *Store) Catalog() (*Catalog, error) {
	if cat := s.current.Load(); cat != nil {
		return cat, nil
	}
	return nil, ErrNotLoaded
}

// Reload explicitly re-reads the catalog file and atomically swaps the
// cached reference. On failure the previous catalog stays in service.
func (s *Store) Reload() (*Catalog, error) {
	cat, err := LoadFromFile(s.path)
	if err != nil {
		s.logger.Warn("rule catalog reload failed, keeping previous",
			slog.String("path", s.path), slog.String("error", err.Error()))
		return nil, err
	}
	s.current.Store(cat)
	s.logger.Info("rule catalog reloaded", slog.String("path", s.path))
	return cat, nil
}

// Global store instance and initialization guard.
var (
	globalStore *Store
	globalOnce  sync.Once
)

// InitGlobal initializes the process-wide store. Safe for concurrent use
// but only the first call has any effect.
func InitGlobal(path string, logger *slog.Logger) *Store {
	globalOnce.Do(func() {
		globalStore = NewStore(path, logger)
	})
	return globalStore
}

// Global returns the process-wide store, or nil before InitGlobal.
func Global() *Store {
	return globalStore
}

// ResetGlobal resets the global store for testing purposes.
// This is NOT thread-safe and should only be used in tests.
func ResetGlobal() {
	globalOnce = sync.Once{}
	globalStore = nil
}
