package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/openbindings/appbuilder/internal/app"
	"github.com/openbindings/appbuilder/internal/design"
)

// clearStatusMsg clears the status line unless a newer status replaced it.
type clearStatusMsg struct{ seq int }

func (m *model) setStatus(msg string, d time.Duration) tea.Cmd {
	m.statusSeq++
	m.statusMsg = msg
	seq := m.statusSeq
	return tea.Tick(d, func(time.Time) tea.Msg {
		return clearStatusMsg{seq: seq}
	})
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case clearStatusMsg:
		if msg.seq == m.statusSeq {
			m.statusMsg = ""
		}
	case tea.KeyMsg:
		if m.form != nil {
			cmd = m.updateForm(msg)
		} else {
			var quit bool
			cmd, quit = m.handleKey(msg)
			if quit {
				return m, tea.Quit
			}
		}
	default:
		if m.form != nil {
			cmd = m.updateForm(msg)
		}
	}
	m.syncViewport()
	return m, cmd
}

func (m *model) handleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return nil, true
	case "1":
		m.setMode(modeDesign)
		return nil, false
	case "2":
		m.setMode(modePreview)
		return nil, false
	case "3":
		m.setMode(modeCode)
		return nil, false
	case "tab":
		m.cycleFocus()
		return nil, false
	}

	switch m.mode {
	case modeDesign:
		return m.handleDesignKey(msg), false
	case modeCode:
		return m.handleCodeKey(msg), false
	default:
		m.scroll(msg)
		return nil, false
	}
}

func (m *model) setMode(md mode) {
	if m.mode == md {
		return
	}
	m.mode = md
	m.viewport.GotoTop()
	m.logger.Debug("mode changed", "mode", md.String())
}

func (m *model) cycleFocus() {
	if m.mode != modeDesign {
		m.showTree = !m.showTree
		return
	}
	m.focus = (m.focus + 1) % 3
}

func (m *model) handleDesignKey(msg tea.KeyMsg) tea.Cmd {
	key := msg.String()
	if key == "e" {
		return m.openForm()
	}

	switch m.focus {
	case focusPalette:
		entries := paletteEntries()
		switch key {
		case "up", "k":
			m.paletteCursor = clamp(m.paletteCursor-1, 0, len(entries)-1)
		case "down", "j":
			m.paletteCursor = clamp(m.paletteCursor+1, 0, len(entries)-1)
		case "enter":
			entry := entries[m.paletteCursor]
			inst := m.session.Add(entry.Type, design.DefaultDropPosition)
			m.treeCursor = m.session.Store.Len() - 1
			return m.setStatus("Added "+inst.ID, app.StatusDuration)
		}

	case focusTree:
		n := m.session.Store.Len()
		switch key {
		case "up", "k":
			m.treeCursor = clamp(m.treeCursor-1, 0, n-1)
		case "down", "j":
			m.treeCursor = clamp(m.treeCursor+1, 0, n-1)
		case "enter":
			if id := m.treeID(); id != "" {
				m.session.Select(id)
			}
		case "x", "delete":
			if id := m.treeID(); id != "" {
				return m.remove(id)
			}
		}

	case focusCanvas:
		sel := m.session.Selected()
		switch key {
		case "left", "h":
			m.nudge(sel, -app.GridStep, 0)
		case "right", "l":
			m.nudge(sel, app.GridStep, 0)
		case "up", "k":
			m.nudge(sel, 0, -app.GridStep)
		case "down", "j":
			m.nudge(sel, 0, app.GridStep)
		case "x", "delete":
			if sel != "" {
				return m.remove(sel)
			}
		case "esc":
			m.session.Select("")
		}
	}
	return nil
}

// treeID is the id under the tree cursor, or "".
func (m *model) treeID() string {
	insts := m.session.Store.Instances()
	if len(insts) == 0 {
		return ""
	}
	m.treeCursor = clamp(m.treeCursor, 0, len(insts)-1)
	return insts[m.treeCursor].ID
}

func (m *model) remove(id string) tea.Cmd {
	m.session.Remove(id)
	m.treeCursor = clamp(m.treeCursor, 0, clampMin(m.session.Store.Len()-1, 0))
	return m.setStatus("Deleted "+id, app.StatusDuration)
}

// nudge moves id by one grid step, keeping it on the visible canvas.
func (m *model) nudge(id string, dx, dy int) {
	inst, ok := m.session.Store.Get(id)
	if !ok {
		return
	}
	pos := design.Position{
		X: clampMin(inst.Position.X+dx, 0),
		Y: clampMin(inst.Position.Y+dy, 0),
	}
	m.session.Move(id, pos)
}

func (m *model) handleCodeKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "left", "h":
		m.target = (m.target + len(m.targets) - 1) % len(m.targets)
		m.viewport.GotoTop()
	case "right", "l":
		m.target = (m.target + 1) % len(m.targets)
		m.viewport.GotoTop()
	case "c":
		code, err := m.code()
		if err == nil {
			err = app.CopyToClipboard(code)
		}
		if err != nil {
			m.logger.Warn("copy failed", "err", err)
			return m.setStatus("Copy failed: "+err.Error(), 3*time.Second)
		}
		return m.setStatus("Copied!", app.StatusDuration)
	case "d":
		code, err := m.code()
		path := ""
		if err == nil {
			path, err = app.ExportCode(m.cfg.ExportDir, m.currentTarget(), code)
		}
		if err != nil {
			m.logger.Warn("export failed", "err", err)
			return m.setStatus("Export failed: "+err.Error(), 3*time.Second)
		}
		m.logger.Info("code exported", "path", path, "target", m.currentTarget().Target)
		return m.setStatus(fmt.Sprintf("Exported %s", path), app.StatusDuration)
	default:
		m.scroll(msg)
	}
	return nil
}

func (m *model) scroll(msg tea.KeyMsg) {
	switch msg.String() {
	case "g", "home":
		m.viewport.GotoTop()
	case "G", "end":
		m.viewport.GotoBottom()
	default:
		m.viewport, _ = m.viewport.Update(msg)
	}
}

// code is the generated output of the current target.
func (m *model) code() (string, error) {
	return m.currentTarget().Emit(m.session.Store.Instances())
}
