package platform

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/aretw0/marginalia/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Defaults(t *testing.T) {
	s := New()
	require.NotNil(t, s)
	require.NotNil(t, s.Comments())

	n := s.Add(core.NewNote("t", "x"))
	assert.Equal(t, 1, n.ID)
}

func TestNew_WithLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	s := New(WithLogger(logger))
	s.Add(core.NewNote("t", "x"))

	assert.Contains(t, buf.String(), "note store ready")
	assert.Contains(t, buf.String(), "entity=note")
}
