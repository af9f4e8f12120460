package store

import (
	"github.com/aretw0/introspection"
)

// StoreState exposes internal state for observability.
type StoreState struct {
	Entity string `json:"entity" yaml:"entity"`
	Items  int    `json:"items" yaml:"items"`
	LastID int    `json:"last_id" yaml:"last_id"`
}

// State implements introspection.Introspectable.
func (s *Store[T]) State() any {
	return StoreState{
		Entity: s.name,
		Items:  len(s.items),
		LastID: s.lastID,
	}
}

// ComponentType implements introspection.Component.
func (s *Store[T]) ComponentType() string {
	return "store"
}

var _ introspection.Introspectable = (*Store[int])(nil)
var _ introspection.Component = (*Store[int])(nil)
