package notes

import (
	"github.com/aretw0/introspection"
	"github.com/aretw0/marginalia/pkg/store"
)

// CommentStoreState exposes the comment store for observability.
type CommentStoreState struct {
	Store   store.StoreState `json:"store" yaml:"store"`
	Active  int              `json:"active" yaml:"active"`
	Deleted int              `json:"deleted" yaml:"deleted"`
}

// NoteStoreState exposes the note store and its comments for observability.
type NoteStoreState struct {
	Notes    store.StoreState  `json:"notes" yaml:"notes"`
	Comments CommentStoreState `json:"comments" yaml:"comments"`
}

// State implements introspection.Introspectable.
func (s *CommentStore) State() any {
	st := CommentStoreState{
		Store: s.items.State().(store.StoreState),
	}
	for _, c := range s.items.Get() {
		if c.Active() {
			st.Active++
		} else {
			st.Deleted++
		}
	}
	return st
}

// ComponentType implements introspection.Component.
func (s *CommentStore) ComponentType() string {
	return "comment_store"
}

// State implements introspection.Introspectable.
func (s *NoteStore) State() any {
	return NoteStoreState{
		Notes:    s.items.State().(store.StoreState),
		Comments: s.comments.State().(CommentStoreState),
	}
}

// ComponentType implements introspection.Component.
func (s *NoteStore) ComponentType() string {
	return "note_store"
}

var _ introspection.Introspectable = (*CommentStore)(nil)
var _ introspection.Component = (*CommentStore)(nil)
var _ introspection.Introspectable = (*NoteStore)(nil)
var _ introspection.Component = (*NoteStore)(nil)
