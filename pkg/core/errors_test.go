package core_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/aretw0/marginalia/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntityError(t *testing.T) {
	err := core.NewEntityError("comment", "edit", 7, core.ErrAlreadyDeleted)

	assert.Equal(t, "edit comment 7: already deleted", err.Error())
	assert.True(t, core.IsAlreadyDeleted(err))
	assert.False(t, core.IsNotFound(err))

	wrapped := fmt.Errorf("console: %w", err)
	var target *core.EntityError
	require.True(t, errors.As(wrapped, &target))
	assert.Equal(t, 7, target.ID)
	assert.Equal(t, "comment", target.Entity)
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, core.IsNotFound(core.NewEntityError("note", "get", 1, core.ErrNotFound)))
	assert.False(t, core.IsNotFound(errors.New("not found")))
	assert.False(t, core.IsNotFound(nil))
}

func TestConstructors(t *testing.T) {
	n := core.NewNote("Title", "Text")
	assert.Zero(t, n.ID)
	assert.Positive(t, n.Date)

	c := core.NewComment(3, "hello")
	assert.Zero(t, c.ID)
	assert.Equal(t, 3, c.NoteID)
	assert.True(t, c.Active())

	c.Deleted = true
	assert.False(t, c.Active())
}
