package repository

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Codec translates between a record value and its single-line file form, and
// exposes the record's identity.
type Codec[T any] interface {
	Marshal(T) (string, error)
	Unmarshal(line string) (T, error)
	ID(T) string
}

// FileStore persists one homogeneous collection as a UTF-8 text file, one
// record per line. The backing format has no partial-update or locking
// primitive, so every mutation loads the whole collection, rewrites it in
// memory and persists it back while holding the store's write lock. Two
// concurrent mutations on the same store therefore always observe some serial
// order; stores for different collections never block each other.
//
// Context parameters exist for interface symmetry with other store
// implementations; file operations complete or fail immediately.
type FileStore[T any] struct {
	mu    sync.RWMutex
	path  string
	codec Codec[T]
}

// NewFileStore opens (or creates) the collection file at path. The parent
// directory is created when missing.
func NewFileStore[T any](path string, codec Codec[T]) (*FileStore[T], error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open collection %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("open collection %s: %w", path, err)
	}
	return &FileStore[T]{path: path, codec: codec}, nil
}

// Save appends item to the collection. It fails with ErrDuplicateKey when a
// record with the same id is already present.
func (s *FileStore[T]) Save(_ context.Context, item T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	items, err := s.load()
	if err != nil {
		return err
	}
	id := s.codec.ID(item)
	for _, existing := range items {
		if s.codec.ID(existing) == id {
			return fmt.Errorf("id %q: %w", id, ErrDuplicateKey)
		}
	}
	return s.persist(append(items, item))
}

// Update replaces the record sharing item's id, or fails with ErrNotFound.
func (s *FileStore[T]) Update(_ context.Context, item T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	items, err := s.load()
	if err != nil {
		return err
	}
	id := s.codec.ID(item)
	for i, existing := range items {
		if s.codec.ID(existing) == id {
			items[i] = item
			return s.persist(items)
		}
	}
	return fmt.Errorf("id %q: %w", id, ErrNotFound)
}

// Delete removes the record with the given id, or fails with ErrNotFound.
func (s *FileStore[T]) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	items, err := s.load()
	if err != nil {
		return err
	}
	for i, existing := range items {
		if s.codec.ID(existing) == id {
			return s.persist(append(items[:i], items[i+1:]...))
		}
	}
	return fmt.Errorf("id %q: %w", id, ErrNotFound)
}

// GetByID returns the record with the given id, or ErrNotFound.
func (s *FileStore[T]) GetByID(_ context.Context, id string) (T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var zero T
	items, err := s.load()
	if err != nil {
		return zero, err
	}
	for _, item := range items {
		if s.codec.ID(item) == id {
			return item, nil
		}
	}
	return zero, fmt.Errorf("id %q: %w", id, ErrNotFound)
}

// ListAll returns every record in file order.
func (s *FileStore[T]) ListAll(_ context.Context) ([]T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.load()
}

// Find returns the records matching pred, in file order. Secondary lookups
// are linear scans; collections stay small enough that an index would not pay
// for itself.
func (s *FileStore[T]) Find(_ context.Context, pred func(T) bool) ([]T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items, err := s.load()
	if err != nil {
		return nil, err
	}
	var out []T
	for _, item := range items {
		if pred(item) {
			out = append(out, item)
		}
	}
	return out, nil
}

// First returns the first record matching pred, or ErrNotFound.
func (s *FileStore[T]) First(ctx context.Context, pred func(T) bool) (T, error) {
	var zero T
	matches, err := s.Find(ctx, pred)
	if err != nil {
		return zero, err
	}
	if len(matches) == 0 {
		return zero, ErrNotFound
	}
	return matches[0], nil
}

// load reads and decodes the whole collection. Blank lines are skipped; a
// malformed line is reported as an error rather than silently dropped, since
// dropping it would rewrite the collection without that record on the next
// mutation.
func (s *FileStore[T]) load() ([]T, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read collection %s: %w", s.path, err)
	}
	var items []T
	for i, line := range strings.Split(string(data), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		item, err := s.codec.Unmarshal(line)
		if err != nil {
			return nil, fmt.Errorf("collection %s, line %d: %w", s.path, i+1, err)
		}
		items = append(items, item)
	}
	return items, nil
}

// persist writes the whole collection to a temporary file in the same
// directory and renames it over the old one, so a failed write never leaves a
// truncated collection behind.
func (s *FileStore[T]) persist(items []T) error {
	var b strings.Builder
	for _, item := range items {
		line, err := s.codec.Marshal(item)
		if err != nil {
			return fmt.Errorf("encode record for %s: %w", s.path, err)
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
	dir, base := filepath.Split(s.path)
	tmp, err := os.CreateTemp(dir, base+".tmp-*")
	if err != nil {
		return fmt.Errorf("write collection %s: %w", s.path, err)
	}
	if _, err := tmp.WriteString(b.String()); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write collection %s: %w", s.path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("write collection %s: %w", s.path, err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("write collection %s: %w", s.path, err)
	}
	return nil
}
