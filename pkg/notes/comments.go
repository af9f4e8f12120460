package notes

import (
	"log/slog"

	"github.com/aretw0/marginalia/pkg/core"
	"github.com/aretw0/marginalia/pkg/store"
)

const commentEntity = "comment"

// CommentStore holds comments and enforces their soft-delete lifecycle.
type CommentStore struct {
	items  *store.Store[core.Comment]
	logger *slog.Logger
}

// NewCommentStore creates an empty CommentStore.
func NewCommentStore(opts ...Option) *CommentStore {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	logger := o.resolveLogger()

	return &CommentStore{
		items: store.New(
			func(c core.Comment) int { return c.ID },
			func(c core.Comment, id int) core.Comment {
				c.ID = id
				return c
			},
			store.WithName(commentEntity),
			store.WithLogger(logger),
		),
		logger: logger.With("entity", commentEntity),
	}
}

// CreateComment stores c as a comment of noteID, whatever c.NoteID says.
// The note is not checked for existence.
func (s *CommentStore) CreateComment(noteID int, c core.Comment) core.Comment {
	c.NoteID = noteID
	return s.items.Add(c)
}

// Edit replaces the text of the stored comment with the same ID as c.
// The note ID and date of the stored comment are kept.
// It returns false if there is no such comment, and an error wrapping
// core.ErrAlreadyDeleted if the comment is soft-deleted.
func (s *CommentStore) Edit(c core.Comment) (bool, error) {
	existing, ok := s.lookup(c.ID)
	if !ok {
		return false, nil
	}

	next, err := transition(stateOf(existing), actionEdit)
	if err != nil {
		return false, core.NewEntityError(commentEntity, "edit", c.ID, err)
	}

	existing.Text = c.Text
	existing.Deleted = next == stateDeleted
	return s.items.Edit(existing), nil
}

// Delete soft-deletes the comment with the given ID.
// It returns false if there is no such comment, and an error wrapping
// core.ErrAlreadyDeleted if it is deleted already.
func (s *CommentStore) Delete(id int) (bool, error) {
	existing, ok := s.lookup(id)
	if !ok {
		return false, nil
	}

	next, err := transition(stateOf(existing), actionDelete)
	if err != nil {
		return false, core.NewEntityError(commentEntity, "delete", id, err)
	}

	existing.Deleted = next == stateDeleted
	s.logger.Debug("comment soft-deleted", "id", id, "note_id", existing.NoteID)
	return s.items.Edit(existing), nil
}

// RestoreComment brings a soft-deleted comment back.
// Restoring an active comment succeeds without changing anything.
// It returns false only if there is no such comment.
func (s *CommentStore) RestoreComment(id int) bool {
	existing, ok := s.lookup(id)
	if !ok {
		return false
	}

	from := stateOf(existing)
	next, _ := transition(from, actionRestore) // every state accepts restore
	if next == from {
		return true
	}

	existing.Deleted = next == stateDeleted
	s.logger.Debug("comment restored", "id", id, "note_id", existing.NoteID)
	return s.items.Edit(existing)
}

// CommentsForNote returns the active comments of noteID in insertion order.
func (s *CommentStore) CommentsForNote(noteID int) []core.Comment {
	var out []core.Comment
	for _, c := range s.items.Get() {
		if c.NoteID == noteID && c.Active() {
			out = append(out, c)
		}
	}
	return out
}

// Purge removes the comment with the given ID for good, deleted or not.
// It reports whether a comment was removed.
func (s *CommentStore) Purge(id int) bool {
	return s.items.Delete(id)
}

// Get returns a snapshot of every comment, deleted ones included.
func (s *CommentStore) Get() []core.Comment {
	return s.items.Get()
}

// GetByID returns the comment with the given ID, deleted or not.
func (s *CommentStore) GetByID(id int) (core.Comment, error) {
	return s.items.GetByID(id)
}

// Clear removes every comment and resets the ID counter.
func (s *CommentStore) Clear() {
	s.items.Clear()
}

func (s *CommentStore) lookup(id int) (core.Comment, bool) {
	c, err := s.items.GetByID(id)
	if err != nil {
		return core.Comment{}, false
	}
	return c, true
}

// countForNote counts every stored comment of noteID, deleted ones included.
func (s *CommentStore) countForNote(noteID int) int {
	n := 0
	for _, c := range s.items.Get() {
		if c.NoteID == noteID {
			n++
		}
	}
	return n
}
