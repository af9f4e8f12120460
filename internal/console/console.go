// Package console interprets line-oriented commands against a NoteStore.
//
// Each line starts with a verb and its numeric arguments; whatever follows is
// free text. A `|` separates a note's title from its text:
//
//	note add Groceries | milk, eggs
//	comment add 1 and bread
//	comment delete 2
//	comments 1
//
// Blank lines and lines starting with '#' are skipped.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"unicode"

	"github.com/aretw0/marginalia/pkg/core"
	"github.com/aretw0/marginalia/pkg/notes"
)

var (
	// ErrUsage is returned for malformed commands.
	ErrUsage = errors.New("usage")
	// ErrUnknownCommand is returned for verbs the console does not know.
	ErrUnknownCommand = errors.New("unknown command")
)

// Console runs commands against one NoteStore and writes results to out.
type Console struct {
	store  *notes.NoteStore
	out    io.Writer
	format Format
	logger *slog.Logger
}

// Option defines a functional option for configuring a Console.
type Option func(*Console)

// WithFormat sets the output format. The default is FormatYAML.
func WithFormat(f Format) Option {
	return func(c *Console) {
		c.format = f
	}
}

// WithLogger sets the logger for the console.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Console) {
		c.logger = logger
	}
}

// New creates a Console over s writing to out.
func New(s *notes.NoteStore, out io.Writer, opts ...Option) *Console {
	c := &Console{
		store:  s,
		out:    out,
		format: FormatYAML,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = slog.New(slog.DiscardHandler)
	}
	return c
}

// Run executes every line read from r. Command failures are written to the
// output as "error: ..." lines and do not stop the run. It returns the number
// of failed commands and any read error.
func (c *Console) Run(r io.Reader) (int, error) {
	failed := 0
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if err := c.Exec(line); err != nil {
			failed++
			c.logger.Debug("command failed", "line", lineNo, "command", line, "error", err)
			fmt.Fprintf(c.out, "error: %v\n", err)
		}
	}
	if err := scanner.Err(); err != nil {
		return failed, fmt.Errorf("read commands: %w", err)
	}
	return failed, nil
}

// Exec executes a single command line.
func (c *Console) Exec(line string) error {
	args, rest := splitArgs(line, 1)
	if len(args) == 0 {
		return nil
	}

	switch args[0] {
	case "note":
		return c.note(rest)
	case "comment":
		return c.comment(rest)
	case "comments":
		id, err := parseID(rest, "comments <note-id>")
		if err != nil {
			return err
		}
		list, err := c.store.GetComments(id)
		if err != nil {
			return err
		}
		return c.print(nonNil(list))
	case "state":
		return c.print(c.store.State())
	case "clear":
		c.store.Clear()
		return c.print(result{OK: true})
	case "help":
		_, err := io.WriteString(c.out, helpText)
		return err
	default:
		return fmt.Errorf("%w: %q", ErrUnknownCommand, args[0])
	}
}

func (c *Console) note(line string) error {
	args, rest := splitArgs(line, 1)
	if len(args) == 0 {
		return fmt.Errorf("%w: note add|edit|delete|get|list|find", ErrUsage)
	}

	switch args[0] {
	case "add":
		title, text := splitTitle(rest)
		if title == "" {
			return fmt.Errorf("%w: note add <title> | <text>", ErrUsage)
		}
		return c.print(c.store.Add(core.NewNote(title, text)))
	case "edit":
		idArgs, body := splitArgs(rest, 1)
		id, err := parseID(strings.Join(idArgs, ""), "note edit <id> <title> | <text>")
		if err != nil {
			return err
		}
		title, text := splitTitle(body)
		n := core.NewNote(title, text)
		n.ID = id
		if existing, err := c.store.GetByID(id); err == nil {
			n.Date = existing.Date
		}
		return c.print(result{OK: c.store.Edit(n)})
	case "delete":
		id, err := parseID(rest, "note delete <id>")
		if err != nil {
			return err
		}
		return c.print(result{OK: c.store.Delete(id)})
	case "get":
		id, err := parseID(rest, "note get <id>")
		if err != nil {
			return err
		}
		n, err := c.store.GetByID(id)
		if err != nil {
			return err
		}
		return c.print(n)
	case "list":
		return c.print(nonNil(c.store.Get()))
	case "find":
		if rest == "" {
			return fmt.Errorf("%w: note find <glob>", ErrUsage)
		}
		found, err := c.store.Find(rest)
		if err != nil {
			return err
		}
		return c.print(nonNil(found))
	default:
		return fmt.Errorf("%w: note %q", ErrUnknownCommand, args[0])
	}
}

func (c *Console) comment(line string) error {
	comments := c.store.Comments()
	args, rest := splitArgs(line, 1)
	if len(args) == 0 {
		return fmt.Errorf("%w: comment add|edit|delete|restore|purge|get|list", ErrUsage)
	}

	switch args[0] {
	case "add":
		idArgs, text := splitArgs(rest, 1)
		noteID, err := parseID(strings.Join(idArgs, ""), "comment add <note-id> <text>")
		if err != nil {
			return err
		}
		return c.print(comments.CreateComment(noteID, core.NewComment(noteID, text)))
	case "edit":
		idArgs, text := splitArgs(rest, 1)
		id, err := parseID(strings.Join(idArgs, ""), "comment edit <id> <text>")
		if err != nil {
			return err
		}
		ok, err := comments.Edit(core.Comment{ID: id, Text: text})
		if err != nil {
			return err
		}
		return c.print(result{OK: ok})
	case "delete":
		id, err := parseID(rest, "comment delete <id>")
		if err != nil {
			return err
		}
		ok, err := comments.Delete(id)
		if err != nil {
			return err
		}
		return c.print(result{OK: ok})
	case "restore":
		id, err := parseID(rest, "comment restore <id>")
		if err != nil {
			return err
		}
		return c.print(result{OK: comments.RestoreComment(id)})
	case "purge":
		id, err := parseID(rest, "comment purge <id>")
		if err != nil {
			return err
		}
		return c.print(result{OK: comments.Purge(id)})
	case "get":
		id, err := parseID(rest, "comment get <id>")
		if err != nil {
			return err
		}
		cm, err := comments.GetByID(id)
		if err != nil {
			return err
		}
		return c.print(cm)
	case "list":
		return c.print(nonNil(comments.Get()))
	default:
		return fmt.Errorf("%w: comment %q", ErrUnknownCommand, args[0])
	}
}

func (c *Console) print(v any) error {
	return render(c.out, c.format, v)
}

// splitArgs returns the first n whitespace-separated words of line and the
// trimmed remainder, with its inner spacing kept.
func splitArgs(line string, n int) ([]string, string) {
	rest := strings.TrimSpace(line)
	args := make([]string, 0, n)
	for len(args) < n && rest != "" {
		i := strings.IndexFunc(rest, unicode.IsSpace)
		if i < 0 {
			args = append(args, rest)
			rest = ""
			break
		}
		args = append(args, rest[:i])
		rest = strings.TrimSpace(rest[i:])
	}
	return args, rest
}

// splitTitle splits "title | text" around the first '|'.
func splitTitle(s string) (string, string) {
	title, text, _ := strings.Cut(s, "|")
	return strings.TrimSpace(title), strings.TrimSpace(text)
}

func parseID(s, usage string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %s", ErrUsage, usage)
	}
	return id, nil
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

const helpText = `commands:
  note add <title> | <text>
  note edit <id> <title> | <text>
  note delete|get <id>
  note list
  note find <glob>
  comment add <note-id> <text>
  comment edit <id> <text>
  comment delete|restore|purge|get <id>
  comment list
  comments <note-id>
  state
  clear
`
