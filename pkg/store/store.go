package store

import (
	"log/slog"
	"slices"

	"github.com/aretw0/marginalia/pkg/core"
)

// IDFunc returns the identifier of an item.
type IDFunc[T any] func(item T) int

// WithIDFunc returns a copy of item whose identifier is id.
type WithIDFunc[T any] func(item T, id int) T

// Store is an insertion-ordered collection of T with sequential identifiers.
type Store[T any] struct {
	items  []T
	lastID int

	idOf   IDFunc[T]
	withID WithIDFunc[T]

	name   string
	logger *slog.Logger
}

// New creates an empty Store using idOf and withID to manipulate identifiers.
func New[T any](idOf IDFunc[T], withID WithIDFunc[T], opts ...Option) *Store[T] {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	return &Store[T]{
		idOf:   idOf,
		withID: withID,
		name:   o.name,
		logger: o.resolveLogger().With("entity", o.name),
	}
}

// Name returns the entity name of the store.
func (s *Store[T]) Name() string {
	return s.name
}

// Add assigns the next identifier to a copy of item, stores it and returns it.
// Any identifier already set on item is ignored.
func (s *Store[T]) Add(item T) T {
	s.lastID++
	stored := s.withID(item, s.lastID)
	s.items = append(s.items, stored)

	s.logger.Debug("item added", "id", s.lastID)
	return stored
}

// Edit replaces the stored item that has the same identifier as item.
// It returns false, leaving the store untouched, if there is no such item.
func (s *Store[T]) Edit(item T) bool {
	id := s.idOf(item)
	i := s.indexOf(id)
	if i < 0 {
		return false
	}

	s.items[i] = item
	s.logger.Debug("item replaced", "id", id)
	return true
}

// Delete removes the item with the given identifier.
// It reports whether an item was removed.
func (s *Store[T]) Delete(id int) bool {
	i := s.indexOf(id)
	if i < 0 {
		return false
	}

	s.items = slices.Delete(s.items, i, i+1)
	s.logger.Debug("item removed", "id", id)
	return true
}

// Get returns a snapshot of all items in insertion order.
func (s *Store[T]) Get() []T {
	return slices.Clone(s.items)
}

// GetByID returns the item with the given identifier.
// It fails with a *core.EntityError wrapping core.ErrNotFound when absent.
func (s *Store[T]) GetByID(id int) (T, error) {
	i := s.indexOf(id)
	if i < 0 {
		var zero T
		return zero, core.NewEntityError(s.name, "get", id, core.ErrNotFound)
	}
	return s.items[i], nil
}

// Clear empties the store and resets the identifier counter.
// Meant for tests and resets, not for the normal lifecycle.
func (s *Store[T]) Clear() {
	s.items = nil
	s.lastID = 0
	s.logger.Debug("store cleared")
}

// Len returns the number of stored items.
func (s *Store[T]) Len() int {
	return len(s.items)
}

// LastID returns the last identifier handed out, 0 if none.
func (s *Store[T]) LastID() int {
	return s.lastID
}

func (s *Store[T]) indexOf(id int) int {
	return slices.IndexFunc(s.items, func(item T) bool {
		return s.idOf(item) == id
	})
}
