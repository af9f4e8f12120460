package platform

import (
	"log/slog"

	"github.com/aretw0/marginalia/pkg/notes"
)

// New wires a NoteStore, and the CommentStore it owns, from the given options.
//
//	s := marginalia.New(marginalia.WithLogger(logger))
func New(opts ...Option) *notes.NoteStore {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	logger := o.logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	s := notes.NewNoteStore(notes.WithLogger(logger))
	logger.Debug("note store ready")
	return s
}
