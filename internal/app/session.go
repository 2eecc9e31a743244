package app

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/google/shlex"

	"github.com/openbindings/appbuilder/internal/codegen"
	"github.com/openbindings/appbuilder/internal/design"
)

// Script references resolved by Session.
const (
	RefLast     = "$last"
	RefSelected = "$sel"
)

// ScriptCommands lists the script verbs, used for shell completion.
var ScriptCommands = []string{"add", "set", "move", "remove", "select", "list", "generate", "gen", "copy", "help"}

// Session is one editing session: the design store plus the selection, which
// is presentation state and never part of the design itself.
type Session struct {
	Store    *design.Store
	selected string
	last     string
	logger   *slog.Logger
}

// NewSession wraps store. A nil logger discards.
func NewSession(store *design.Store, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Session{Store: store, logger: logger.With("component", "session")}
}

// Selected returns the selected id, or "" when nothing (or a removed
// instance) is selected.
func (s *Session) Selected() string {
	return s.Store.Snapshot(s.selected).Selected
}

// Select makes id the selection. Unknown ids clear it.
func (s *Session) Select(id string) {
	s.selected = id
	if s.Selected() == "" {
		s.selected = ""
	}
}

// Add inserts a component and selects it.
func (s *Session) Add(t design.Type, pos design.Position) design.Instance {
	inst := s.Store.Add(t, pos)
	s.last = inst.ID
	s.selected = inst.ID
	return inst
}

// Remove deletes id, clearing the selection if it pointed there.
func (s *Session) Remove(id string) {
	s.Store.Remove(id)
	if s.selected == id {
		s.selected = ""
	}
}

// Move sets the position of id.
func (s *Session) Move(id string, pos design.Position) {
	s.Store.Update(id, design.Patch{Position: &pos})
}

// Resolve turns a script reference into an id. Refs that match nothing are
// returned unchanged so store operations on them are no-ops.
func (s *Session) Resolve(ref string) string {
	switch {
	case ref == RefLast:
		return s.last
	case ref == RefSelected:
		return s.Selected()
	case strings.HasPrefix(ref, "@"):
		n, err := strconv.Atoi(ref[1:])
		insts := s.Store.Instances()
		if err == nil && n >= 1 && n <= len(insts) {
			return insts[n-1].ID
		}
	}
	return ref
}

// Exec runs a single script line and returns its output. Blank lines and
// comments produce no output. A comment starts at a "#" that begins a word,
// so "text=C#" keeps its hash.
func (s *Session) Exec(line string) (string, error) {
	args, err := shlex.Split(line)
	if err != nil {
		return "", fmt.Errorf("parse: %w", err)
	}
	if len(args) == 0 {
		return "", nil
	}
	s.logger.Debug("exec", "cmd", args[0], "args", len(args)-1)

	cmd, args := strings.ToLower(args[0]), args[1:]
	switch cmd {
	case "add":
		return s.execAdd(args)
	case "set":
		return s.execSet(args)
	case "move":
		return s.execMove(args)
	case "remove", "rm":
		if len(args) != 1 {
			return "", fmt.Errorf("usage: remove <ref>")
		}
		s.Remove(s.Resolve(args[0]))
		return "", nil
	case "select":
		if len(args) != 1 {
			return "", fmt.Errorf("usage: select <ref>")
		}
		id := s.Resolve(args[0])
		if _, ok := s.Store.Get(id); !ok {
			return "", fmt.Errorf("%w: %s", ErrUnknownRef, args[0])
		}
		s.Select(id)
		return "", nil
	case "list", "ls":
		return ListRender(s.Store.Instances(), s.Selected()), nil
	case "generate", "gen":
		if len(args) != 1 {
			return "", fmt.Errorf("usage: generate <target>")
		}
		code, err := codegen.Generate(args[0], s.Store.Instances())
		return strings.TrimRight(code, "\n"), err
	case "copy":
		if len(args) != 1 {
			return "", fmt.Errorf("usage: copy <target>")
		}
		info, err := codegen.LookupTarget(args[0])
		if err != nil {
			return "", err
		}
		code, err := info.Emit(s.Store.Instances())
		if err != nil {
			return "", err
		}
		if err := CopyToClipboard(code); err != nil {
			return "", err
		}
		return "Copied " + info.Label + " to clipboard", nil
	case "help":
		return scriptHelp, nil
	}
	return "", fmt.Errorf("unknown command %q", cmd)
}

func (s *Session) execAdd(args []string) (string, error) {
	if len(args) != 1 && len(args) != 3 {
		return "", fmt.Errorf("usage: add <type> [x y]")
	}
	pos := design.DefaultDropPosition
	if len(args) == 3 {
		pos = design.Position{X: design.ParseCoordinate(args[1]), Y: design.ParseCoordinate(args[2])}
	}
	inst := s.Add(design.Type(args[0]), pos)
	return inst.ID, nil
}

func (s *Session) execSet(args []string) (string, error) {
	if len(args) < 2 {
		return "", fmt.Errorf("usage: set <ref> key=value ...")
	}
	props := make(map[string]any, len(args)-1)
	for _, kv := range args[1:] {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" {
			return "", fmt.Errorf("expected key=value, got %q", kv)
		}
		props[k] = v
	}
	s.Store.Update(s.Resolve(args[0]), design.Patch{Props: props})
	return "", nil
}

func (s *Session) execMove(args []string) (string, error) {
	if len(args) != 3 {
		return "", fmt.Errorf("usage: move <ref> <x> <y>")
	}
	s.Move(s.Resolve(args[0]), design.Position{
		X: design.ParseCoordinate(args[1]),
		Y: design.ParseCoordinate(args[2]),
	})
	return "", nil
}

// Run executes a script, writing non-empty command output to w. It stops at
// the first failing line.
func (s *Session) Run(r io.Reader, w io.Writer) error {
	sc := bufio.NewScanner(r)
	n := 0
	for sc.Scan() {
		n++
		text := sc.Text()
		out, err := s.Exec(text)
		if err != nil {
			return &ScriptError{Line: n, Text: strings.TrimSpace(text), Err: err}
		}
		if out != "" && w != nil {
			if _, err := fmt.Fprintln(w, out); err != nil {
				return err
			}
		}
	}
	return sc.Err()
}

// ListRender prints one instance per line, marking the selection.
func ListRender(instances []design.Instance, selected string) string {
	var b strings.Builder
	for i, inst := range instances {
		marker := Styles.Bullet.Render(" ")
		if inst.ID == selected {
			marker = Styles.Success.Render("*")
		}
		fmt.Fprintf(&b, "%s %d %s %s %s\n",
			marker,
			i+1,
			Styles.Key.Render(inst.ID),
			inst.Type,
			Styles.Dim.Render(fmt.Sprintf("(%d, %d)", inst.Position.X, inst.Position.Y)),
		)
	}
	return strings.TrimRight(b.String(), "\n")
}

const scriptHelp = `add <type> [x y]          add a component (default position 100 100)
set <ref> key=value ...   update properties
move <ref> <x> <y>        move a component
remove <ref>              delete a component
select <ref>              select a component
list                      list components
generate <target>         print generated code (react, html, json, yaml)
copy <target>             copy generated code to the clipboard

<ref> is an id, $last, $sel or @N (1-based position).`
