// Package notes implements the note and comment stores on top of the generic store.
//
// A NoteStore exclusively owns one CommentStore. Calls flow from notes to
// comments only: the CommentStore has no reference back to its owner.
//
// Comments are soft-deleted. A deleted comment stays in storage but is hidden
// from per-note listings and refuses edits until it is restored. Deleting a note
// does not cascade: its comments stay in the CommentStore and become unreachable
// through GetComments, which fails with core.ErrNotFound once the note is gone.
package notes
