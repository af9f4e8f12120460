package notes

import (
	"fmt"
	"log/slog"

	"github.com/aretw0/marginalia/pkg/core"
	"github.com/aretw0/marginalia/pkg/store"
	"github.com/bmatcuk/doublestar/v4"
)

const noteEntity = "note"

// NoteStore holds notes and owns the CommentStore for their comments.
type NoteStore struct {
	items    *store.Store[core.Note]
	comments *CommentStore
	logger   *slog.Logger
}

// NewNoteStore creates an empty NoteStore with its own, empty CommentStore.
func NewNoteStore(opts ...Option) *NoteStore {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	logger := o.resolveLogger()

	return &NoteStore{
		items: store.New(
			func(n core.Note) int { return n.ID },
			func(n core.Note, id int) core.Note {
				n.ID = id
				return n
			},
			store.WithName(noteEntity),
			store.WithLogger(logger),
		),
		comments: NewCommentStore(opts...),
		logger:   logger.With("entity", noteEntity),
	}
}

// Comments returns the CommentStore owned by s.
func (s *NoteStore) Comments() *CommentStore {
	return s.comments
}

// Add stores n under the next note ID and returns the stored note.
func (s *NoteStore) Add(n core.Note) core.Note {
	return s.items.Add(n)
}

// Edit replaces the note with the same ID as n. It returns false if there is none.
func (s *NoteStore) Edit(n core.Note) bool {
	return s.items.Edit(n)
}

// Delete removes the note with the given ID. Its comments are left in place.
func (s *NoteStore) Delete(id int) bool {
	if !s.items.Delete(id) {
		return false
	}
	if orphans := s.comments.countForNote(id); orphans > 0 {
		s.logger.Debug("note deleted with comments left behind", "id", id, "comments", orphans)
	}
	return true
}

// Get returns a snapshot of every note in insertion order.
func (s *NoteStore) Get() []core.Note {
	return s.items.Get()
}

// GetByID returns the note with the given ID or an error wrapping core.ErrNotFound.
func (s *NoteStore) GetByID(id int) (core.Note, error) {
	return s.items.GetByID(id)
}

// GetComments returns the active comments of the note noteID.
// It fails with core.ErrNotFound when the note does not exist.
func (s *NoteStore) GetComments(noteID int) ([]core.Comment, error) {
	if _, err := s.items.GetByID(noteID); err != nil {
		return nil, err
	}
	return s.comments.CommentsForNote(noteID), nil
}

// Find returns the notes whose title matches the doublestar pattern, in insertion order.
func (s *NoteStore) Find(pattern string) ([]core.Note, error) {
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("find notes %q: %w", pattern, doublestar.ErrBadPattern)
	}

	var out []core.Note
	for _, n := range s.items.Get() {
		ok, err := doublestar.Match(pattern, n.Title)
		if err != nil {
			return nil, fmt.Errorf("find notes %q: %w", pattern, err)
		}
		if ok {
			out = append(out, n)
		}
	}
	return out, nil
}

// Clear removes every note and every comment and resets both ID counters.
func (s *NoteStore) Clear() {
	s.items.Clear()
	s.comments.Clear()
}
