package tui

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/openbindings/appbuilder/internal/app"
	"github.com/openbindings/appbuilder/internal/codegen"
	"github.com/openbindings/appbuilder/internal/design"
)

type mode int

const (
	modeDesign mode = iota
	modePreview
	modeCode
)

func (m mode) String() string {
	switch m {
	case modePreview:
		return "Preview"
	case modeCode:
		return "Code"
	}
	return "Design"
}

// focus is the pane receiving navigation keys in design mode.
type focus int

const (
	focusPalette focus = iota
	focusTree
	focusCanvas
)

type model struct {
	width  int
	height int

	session *app.Session
	cfg     app.Config
	logger  *slog.Logger

	mode  mode
	focus focus
	// showTree picks the sidebar tab outside design mode, where the
	// sidebar is display only.
	showTree bool

	paletteCursor int
	treeCursor    int

	targets []codegen.TargetInfo
	target  int

	viewport viewport.Model

	form *propertyForm

	statusMsg string
	statusSeq int
}

func newModel(session *app.Session, cfg app.Config, logger *slog.Logger) *model {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	m := &model{
		session:  session,
		cfg:      cfg,
		logger:   logger.With("component", "tui"),
		targets:  codegen.Targets(),
		viewport: viewport.New(0, 0),
	}
	if info, err := codegen.LookupTarget(cfg.Target); err == nil {
		for i, t := range m.targets {
			if t.Target == info.Target {
				m.target = i
			}
		}
	}
	return m
}

func (m *model) Init() tea.Cmd { return nil }

func (m *model) snapshot() design.Snapshot {
	return m.session.Store.Snapshot(m.session.Selected())
}

func (m *model) currentTarget() codegen.TargetInfo {
	return m.targets[m.target]
}

// sidebarTree reports which sidebar tab is visible.
func (m *model) sidebarTree() bool {
	if m.mode == modeDesign {
		return m.focus == focusTree
	}
	return m.showTree
}

// paletteEntries flattens the palette groups in display order.
func paletteEntries() []design.PaletteEntry {
	var out []design.PaletteEntry
	for _, g := range design.Palette() {
		out = append(out, g.Entries...)
	}
	return out
}

func clamp(n, lo, hi int) int {
	if n > hi {
		n = hi
	}
	if n < lo {
		n = lo
	}
	return n
}

func clampMin(n, min int) int {
	if n < min {
		return min
	}
	return n
}
