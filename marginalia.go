package marginalia

import (
	"log/slog"

	"github.com/aretw0/marginalia/internal/platform"
	"github.com/aretw0/marginalia/pkg/core"
	"github.com/aretw0/marginalia/pkg/notes"
	"github.com/aretw0/marginalia/pkg/store"
)

// --- Types ---

// Note is a public alias for core.Note.
type Note = core.Note

// Comment is a public alias for core.Comment.
type Comment = core.Comment

// NoteStore is a public alias for the note store.
type NoteStore = notes.NoteStore

// CommentStore is a public alias for the comment store.
type CommentStore = notes.CommentStore

// Store is a public alias for the generic store.
type Store[T any] = store.Store[T]

// --- Errors ---

var (
	// ErrNotFound is returned when no entity has the requested ID.
	ErrNotFound = core.ErrNotFound
	// ErrAlreadyDeleted is returned when editing or deleting a soft-deleted comment.
	ErrAlreadyDeleted = core.ErrAlreadyDeleted
)

// --- Configuration ---

// Option defines a functional option for configuring marginalia.
type Option = platform.Option

// WithLogger sets the logger for the stores.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// --- Factory ---

// New creates an empty NoteStore together with the CommentStore it owns.
func New(opts ...Option) *notes.NoteStore {
	return platform.New(opts...)
}

// NewStore creates a generic store for any entity type with an integer ID.
func NewStore[T any](idOf store.IDFunc[T], withID store.WithIDFunc[T], opts ...store.Option) *store.Store[T] {
	return store.New(idOf, withID, opts...)
}

// --- Entities ---

// NewNote builds an unstored note dated now.
func NewNote(title, text string) Note {
	return core.NewNote(title, text)
}

// NewComment builds an unstored, active comment for noteID dated now.
func NewComment(noteID int, text string) Comment {
	return core.NewComment(noteID, text)
}
