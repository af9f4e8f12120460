// Package marginalia is the Composition Root for the marginalia data layer.
//
// It wires the generic identity-assigning store (pkg/store) into the note and
// comment stores (pkg/notes) and exposes them behind functional options.
//
// Features:
//
//   - **Generic Store**: one implementation of sequential, never-reused IDs for any entity type.
//   - **Soft Delete**: comments are flagged, not removed, and can be restored.
//   - **Note Scoped Queries**: GetComments checks the note exists and hides deleted comments.
//   - **In Memory**: state lives as long as the store value does.
//
// Usage:
//
//	s := marginalia.New(marginalia.WithLogger(logger))
//
//	note := s.Add(marginalia.NewNote("Title", "Body"))
//	s.Comments().CreateComment(note.ID, marginalia.NewComment(note.ID, "First!"))
//
//	comments, err := s.GetComments(note.ID)
package marginalia
