// Package store persists entity collections in flat files. It is the only
// package that touches the filesystem: each store owns one file and one
// in-memory ordered collection, reloads the whole file on startup and
// rewrites the whole file on every mutation.
package store

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/librarium/librarium/internal/record"
)

// Store is a flat-file backed collection of one entity kind.
//
// Mutations are serialized by an internal mutex; the full-file rewrite is
// not safe under concurrent writers from multiple processes.
type Store[T any] struct {
	mu     sync.Mutex
	path   string
	codec  record.Codec[T]
	logger *slog.Logger
	seed   func() []T
	items  []T
}

// Option configures a Store.
type Option[T any] func(*Store[T])

// WithSeed installs a bootstrap hook: when Load finds the backing file newly
// created or empty, the seed entities are written out exactly once.
func WithSeed[T any](seed func() []T) Option[T] {
	return func(s *Store[T]) {
		s.seed = seed
	}
}

// New creates a store over the given file path. Call Load before use.
func New[T any](path string, codec record.Codec[T], logger *slog.Logger, opts ...Option[T]) *Store[T] {
	s := &Store[T]{
		path:   path,
		codec:  codec,
		logger: logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Path returns the backing file path.
func (s *Store[T]) Path() string {
	return s.path
}

// Load reads the backing file into memory. A missing file is created with
// just the header row. Decode failures are surfaced, not swallowed: a single
// malformed row fails the whole load.
func (s *Store[T]) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.Open(s.path)
	if os.IsNotExist(err) {
		s.logger.Info("creating store file", "path", s.path)
		if err := s.persist(nil); err != nil {
			return fmt.Errorf("create %s: %w", s.path, err)
		}
		return s.maybeSeed()
	}
	if err != nil {
		return fmt.Errorf("open %s: %w", s.path, err)
	}
	defer f.Close()

	items, err := record.ReadAll(f, s.codec)
	if err != nil {
		return fmt.Errorf("load %s: %w", s.path, err)
	}
	s.items = items

	if len(s.items) == 0 {
		return s.maybeSeed()
	}
	return nil
}

// maybeSeed writes the seed entities when the collection is empty.
// Caller holds the mutex.
func (s *Store[T]) maybeSeed() error {
	if s.seed == nil || len(s.items) > 0 {
		return nil
	}

	seeded := s.seed()
	if len(seeded) == 0 {
		return nil
	}

	if err := s.persist(seeded); err != nil {
		return fmt.Errorf("seed %s: %w", s.path, err)
	}
	s.items = seeded
	s.logger.Info("seeded store", "path", s.path, "records", len(seeded))
	return nil
}

// Items returns a snapshot copy of the collection.
func (s *Store[T]) Items() []T {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := make([]T, len(s.items))
	copy(snapshot, s.items)
	return snapshot
}

// Len returns the number of records.
func (s *Store[T]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// Replace swaps the whole collection and rewrites the backing file.
func (s *Store[T]) Replace(items []T) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.persist(items); err != nil {
		return err
	}
	s.items = items
	return nil
}

// Update applies a read-modify-write mutation under the store mutex and
// rewrites the backing file with the result. The in-memory collection is
// untouched when the rewrite fails.
func (s *Store[T]) Update(mutate func(items []T) []T) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	working := make([]T, len(s.items))
	copy(working, s.items)

	updated := mutate(working)
	if err := s.persist(updated); err != nil {
		return err
	}
	s.items = updated
	return nil
}

// persist rewrites the backing file: header plus all rows, written to a
// temp file in the same directory and renamed into place so a failed write
// never truncates the previous content. Caller holds the mutex.
func (s *Store[T]) persist(items []T) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := record.WriteAll(tmp, s.codec, items); err != nil {
		tmp.Close()
		return fmt.Errorf("write %s: %w", s.path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("replace %s: %w", s.path, err)
	}
	return nil
}
