// Package core holds the entities of the domain and the errors shared by every store.
package core

import "time"

// now is the clock used by the entity constructors.
var now = time.Now

// Note is a titled piece of text. An ID of 0 means the note has not been stored yet.
// Notes are values: an edit replaces the stored note wholesale.
type Note struct {
	ID    int    `json:"id" yaml:"id"`
	Title string `json:"title" yaml:"title"`
	Text  string `json:"text" yaml:"text"`
	Date  int64  `json:"date" yaml:"date"` // Unix timestamp
}

// NewNote builds an unstored note dated now.
func NewNote(title, text string) Note {
	return Note{
		Title: title,
		Text:  text,
		Date:  now().Unix(),
	}
}

// Comment belongs to the note identified by NoteID.
// Deleted marks a soft-deleted comment that is kept in storage.
type Comment struct {
	ID      int    `json:"id" yaml:"id"`
	NoteID  int    `json:"note_id" yaml:"note_id"`
	Text    string `json:"text" yaml:"text"`
	Date    int64  `json:"date" yaml:"date"` // Unix timestamp
	Deleted bool   `json:"deleted" yaml:"deleted"`
}

// NewComment builds an unstored, active comment for noteID dated now.
func NewComment(noteID int, text string) Comment {
	return Comment{
		NoteID: noteID,
		Text:   text,
		Date:   now().Unix(),
	}
}

// Active reports whether the comment has not been soft-deleted.
func (c Comment) Active() bool {
	return !c.Deleted
}
