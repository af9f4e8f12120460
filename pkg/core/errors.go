package core

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	// ErrNotFound is returned when no entity has the requested ID.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyDeleted is returned when an edit or delete targets a soft-deleted entity.
	ErrAlreadyDeleted = errors.New("already deleted")
)

// EntityError adds the entity kind, the operation and the ID to one of the common errors.
type EntityError struct {
	Entity string // e.g. "note", "comment"
	Op     string // e.g. "get", "edit", "delete"
	ID     int
	Err    error
}

// Error implements the error interface.
func (e *EntityError) Error() string {
	return fmt.Sprintf("%s %s %d: %v", e.Op, e.Entity, e.ID, e.Err)
}

// Unwrap exposes the underlying error to errors.Is and errors.As.
func (e *EntityError) Unwrap() error {
	return e.Err
}

// NewEntityError wraps err with the entity, operation and ID it relates to.
func NewEntityError(entity, op string, id int, err error) *EntityError {
	return &EntityError{
		Entity: entity,
		Op:     op,
		ID:     id,
		Err:    err,
	}
}

// IsNotFound reports whether err is, or wraps, ErrNotFound.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsAlreadyDeleted reports whether err is, or wraps, ErrAlreadyDeleted.
func IsAlreadyDeleted(err error) bool {
	return errors.Is(err, ErrAlreadyDeleted)
}
