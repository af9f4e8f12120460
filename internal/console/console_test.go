package console_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/aretw0/marginalia/internal/console"
	"github.com/aretw0/marginalia/pkg/core"
	"github.com/aretw0/marginalia/pkg/notes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupConsole(t *testing.T, opts ...console.Option) (*console.Console, *notes.NoteStore, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	s := notes.NewNoteStore()
	return console.New(s, &out, opts...), s, &out
}

func TestConsole_Script(t *testing.T) {
	c, s, out := setupConsole(t)

	script := `
# two notes, three comments
note add N1 | T1
note add N2 | T2
comment add 1 C1
comment add 1 C2 to delete
comment add 2 C3 on N2
comment delete 2
comment delete 2
comment edit 2 New Text
comments 1
`
	failed, err := c.Run(strings.NewReader(script))
	require.NoError(t, err)
	assert.Equal(t, 2, failed)

	text := out.String()
	assert.Contains(t, text, "title: N1")
	assert.Contains(t, text, "text: C2 to delete")
	assert.Contains(t, text, "error: delete comment 2: already deleted")
	assert.Contains(t, text, "error: edit comment 2: already deleted")

	got, err := s.GetComments(1)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "C1", got[0].Text)

	deleted, err := s.Comments().GetByID(2)
	require.NoError(t, err)
	assert.True(t, deleted.Deleted)
	assert.Equal(t, "C2 to delete", deleted.Text)
}

func TestConsole_NoteCommands(t *testing.T) {
	c, s, out := setupConsole(t)

	require.NoError(t, c.Exec("note add Groceries | milk,  eggs"))
	n, err := s.GetByID(1)
	require.NoError(t, err)
	assert.Equal(t, "Groceries", n.Title)
	assert.Equal(t, "milk,  eggs", n.Text)

	out.Reset()
	require.NoError(t, c.Exec("note edit 1 Shopping | bread"))
	assert.Equal(t, "ok: true\n", out.String())
	edited, err := s.GetByID(1)
	require.NoError(t, err)
	assert.Equal(t, "Shopping", edited.Title)
	assert.Equal(t, n.Date, edited.Date)

	out.Reset()
	require.NoError(t, c.Exec("note edit 9 Ghost | none"))
	assert.Equal(t, "ok: false\n", out.String())

	out.Reset()
	require.NoError(t, c.Exec("note delete 1"))
	assert.Equal(t, "ok: true\n", out.String())

	err = c.Exec("note get 1")
	assert.ErrorIs(t, err, core.ErrNotFound)

	err = c.Exec("comments 1")
	assert.ErrorIs(t, err, core.ErrNotFound)
}

func TestConsole_FindAndList(t *testing.T) {
	c, _, out := setupConsole(t, console.WithFormat(console.FormatJSON))

	require.NoError(t, c.Exec("note add go/errors | wrap them"))
	require.NoError(t, c.Exec("note add go/generics"))
	require.NoError(t, c.Exec("note add rust/traits"))

	out.Reset()
	require.NoError(t, c.Exec("note find go/*"))
	var found []core.Note
	require.NoError(t, json.Unmarshal(out.Bytes(), &found))
	require.Len(t, found, 2)
	assert.Equal(t, "go/errors", found[0].Title)
	assert.Equal(t, "wrap them", found[0].Text)
	assert.Equal(t, "", found[1].Text)

	out.Reset()
	require.NoError(t, c.Exec("note find nothing"))
	assert.Equal(t, "[]\n", out.String())

	assert.Error(t, c.Exec("note find ["))
}

func TestConsole_CommentLifecycle(t *testing.T) {
	c, s, out := setupConsole(t)
	require.NoError(t, c.Exec("note add N | T"))
	require.NoError(t, c.Exec("comment add 1 hello"))

	require.NoError(t, c.Exec("comment delete 1"))
	require.NoError(t, c.Exec("comment restore 1"))
	require.NoError(t, c.Exec("comment restore 1"))
	require.NoError(t, c.Exec("comment edit 1 hello again"))

	cm, err := s.Comments().GetByID(1)
	require.NoError(t, err)
	assert.Equal(t, "hello again", cm.Text)
	assert.False(t, cm.Deleted)

	out.Reset()
	require.NoError(t, c.Exec("comment purge 1"))
	assert.Equal(t, "ok: true\n", out.String())
	assert.Empty(t, s.Comments().Get())

	out.Reset()
	require.NoError(t, c.Exec("comment restore 1"))
	assert.Equal(t, "ok: false\n", out.String())
}

func TestConsole_TableFormat(t *testing.T) {
	c, _, out := setupConsole(t, console.WithFormat(console.FormatTable))
	require.NoError(t, c.Exec("note add First | body"))
	require.NoError(t, c.Exec("comment add 1 nice"))

	out.Reset()
	require.NoError(t, c.Exec("comment list"))
	text := out.String()
	assert.Contains(t, text, "DELETED")
	assert.Contains(t, text, "nice")

	// values without a table form fall back to YAML
	out.Reset()
	require.NoError(t, c.Exec("state"))
	assert.Contains(t, out.String(), "last_id: 1")
}

func TestConsole_StateAndClear(t *testing.T) {
	c, s, out := setupConsole(t)
	require.NoError(t, c.Exec("note add a"))
	require.NoError(t, c.Exec("comment add 1 x"))

	out.Reset()
	require.NoError(t, c.Exec("state"))
	assert.Contains(t, out.String(), "active: 1")

	require.NoError(t, c.Exec("clear"))
	assert.Empty(t, s.Get())
	assert.Empty(t, s.Comments().Get())
}

func TestConsole_Errors(t *testing.T) {
	c, _, _ := setupConsole(t)

	tests := []struct {
		line string
		want error
	}{
		{"frobnicate", console.ErrUnknownCommand},
		{"note", console.ErrUsage},
		{"note rename 1", console.ErrUnknownCommand},
		{"note add", console.ErrUsage},
		{"note get x", console.ErrUsage},
		{"comment", console.ErrUsage},
		{"comment add abc text", console.ErrUsage},
		{"comment delete", console.ErrUsage},
		{"comments", console.ErrUsage},
		{"note find", console.ErrUsage},
		{"comment get 5", core.ErrNotFound},
	}
	for _, tt := range tests {
		assert.ErrorIs(t, c.Exec(tt.line), tt.want, tt.line)
	}
}

func TestParseFormat(t *testing.T) {
	f, err := console.ParseFormat("JSON")
	require.NoError(t, err)
	assert.Equal(t, console.FormatJSON, f)

	f, err = console.ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, console.FormatYAML, f)

	_, err = console.ParseFormat("xml")
	assert.Error(t, err)
}
