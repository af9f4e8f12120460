package console

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/aretw0/marginalia/pkg/core"
	"github.com/jedib0t/go-pretty/v6/table"
	"gopkg.in/yaml.v3"
)

// Format selects how command results are written.
type Format string

const (
	FormatYAML  Format = "yaml"
	FormatJSON  Format = "json"
	FormatTable Format = "table"
)

// ParseFormat maps a flag value to a Format.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatYAML, FormatJSON, FormatTable:
		return f, nil
	case "":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unknown format %q (want yaml, json or table)", s)
	}
}

// result is written for commands that only report success.
type result struct {
	OK bool `json:"ok" yaml:"ok"`
}

func render(w io.Writer, f Format, v any) error {
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case FormatTable:
		if t, ok := asTable(v); ok {
			t.SetOutputMirror(w)
			t.Render()
			return nil
		}
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

// asTable builds a table for notes and comments. Other values have no table form.
func asTable(v any) (table.Writer, bool) {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)

	switch v := v.(type) {
	case core.Note:
		return asTable([]core.Note{v})
	case core.Comment:
		return asTable([]core.Comment{v})
	case []core.Note:
		t.AppendHeader(table.Row{"ID", "Title", "Text", "Date"})
		for _, n := range v {
			t.AppendRow(table.Row{n.ID, n.Title, n.Text, formatDate(n.Date)})
		}
	case []core.Comment:
		t.AppendHeader(table.Row{"ID", "Note", "Text", "Date", "Deleted"})
		for _, c := range v {
			t.AppendRow(table.Row{c.ID, c.NoteID, c.Text, formatDate(c.Date), c.Deleted})
		}
	default:
		return nil, false
	}
	return t, true
}

func formatDate(unix int64) string {
	return time.Unix(unix, 0).UTC().Format(time.DateTime)
}
