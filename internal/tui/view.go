package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/openbindings/appbuilder/internal/design"
)

const sidebarWidth = 26

var (
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	activeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	cursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("6"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

// contentWidth is the width inside the frame border and padding.
func (m *model) contentWidth() int { return clampMin(m.width-2-2, 0) }

// bodyHeight is the height left for the sidebar and main area after the
// toolbar, footer and the blank separator lines.
func (m *model) bodyHeight() int { return clampMin(m.height-2-4, 1) }

func (m *model) mainWidth() int { return clampMin(m.contentWidth()-sidebarWidth-3, 1) }

func (m *model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return "Loading..."
	}

	w := m.contentWidth()
	bodyH := m.bodyHeight()

	sidebar := lipgloss.NewStyle().Width(sidebarWidth).Height(bodyH).MaxHeight(bodyH).Render(m.viewSidebar())
	sep := mutedStyle.Render(strings.TrimRight(strings.Repeat("│\n", bodyH), "\n"))
	main := lipgloss.NewStyle().Width(m.mainWidth()).Height(bodyH).MaxHeight(bodyH).Render(m.viewMain(bodyH))
	body := lipgloss.JoinHorizontal(lipgloss.Top, sidebar, " ", sep, " ", main)

	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().Width(w).Render(m.viewToolbar()),
		"",
		body,
		m.viewFooter(w),
	)

	innerW := clampMin(m.width-2, 0)
	innerH := clampMin(m.height-2, 0)
	inner := lipgloss.Place(innerW, innerH, lipgloss.Left, lipgloss.Top,
		lipgloss.NewStyle().Padding(0, 1).Render(content))

	return lipgloss.NewStyle().
		Width(innerW).
		Height(innerH).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("8")).
		Render(inner)
}

func (m *model) viewToolbar() string {
	title := lipgloss.NewStyle().Bold(true).Render("App Builder")
	var tabs []string
	for i, md := range []mode{modeDesign, modePreview, modeCode} {
		label := fmt.Sprintf("%d %s", i+1, md)
		if md == m.mode {
			tabs = append(tabs, activeStyle.Render("["+label+"]"))
		} else {
			tabs = append(tabs, mutedStyle.Render(label))
		}
	}
	count := mutedStyle.Render(fmt.Sprintf("%d components", m.session.Store.Len()))
	return title + "   " + strings.Join(tabs, "  ") + "   " + count
}

func (m *model) viewSidebar() string {
	tree := m.sidebarTree()
	header := func(label string, on bool) string {
		if on {
			return activeStyle.Render(label)
		}
		return mutedStyle.Render(label)
	}
	tabs := header("Components", !tree) + mutedStyle.Render(" │ ") + header("Tree", tree)

	var body string
	if tree {
		body = m.viewTree()
	} else {
		body = m.viewPalette()
	}
	return tabs + "\n\n" + body
}

func (m *model) viewPalette() string {
	focused := m.mode == modeDesign && m.focus == focusPalette
	var b strings.Builder
	i := 0
	for gi, g := range design.Palette() {
		if gi > 0 {
			b.WriteString("\n")
		}
		b.WriteString(mutedStyle.Render(strings.ToUpper(g.Name)) + "\n")
		for _, e := range g.Entries {
			line := "  " + e.Name
			if focused && i == m.paletteCursor {
				line = cursorStyle.Render("› " + e.Name)
			}
			b.WriteString(line + "\n")
			i++
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m *model) viewTree() string {
	snap := m.snapshot()
	if len(snap.Instances) == 0 {
		return mutedStyle.Render("No components added yet")
	}
	focused := m.mode == modeDesign && m.focus == focusTree
	var b strings.Builder
	for i, inst := range snap.Instances {
		marker := "□"
		if inst.ID == snap.Selected {
			marker = activeStyle.Render("■")
		}
		name := typeLabel(inst.Type)
		line := fmt.Sprintf("%s %s %s", marker, name, mutedStyle.Render("#"+inst.ShortID()))
		if focused && i == m.treeCursor {
			line = cursorStyle.Render(fmt.Sprintf("› %s #%s", name, inst.ShortID()))
		}
		b.WriteString(line + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// typeLabel capitalizes a type name for the tree.
func typeLabel(t design.Type) string {
	return cases.Title(language.English).String(string(t))
}

func (m *model) viewMain(h int) string {
	switch m.mode {
	case modeDesign:
		if m.form != nil {
			return m.form.form.View()
		}
		return renderCanvas(m.snapshot(), m.mainWidth(), h)
	case modeCode:
		return viewTargetTabs(m.targets, m.target) + "\n\n" + m.viewport.View()
	default:
		return m.viewport.View()
	}
}

func (m *model) viewFooter(width int) string {
	help := mutedStyle.Render(keyHelp(m.keyHelpEntries()...))
	footer := mutedStyle.Render(strings.Repeat("─", width)) + "\n" + help
	if m.statusMsg != "" {
		footer += "   " + statusStyle.Render(m.statusMsg)
	}
	return footer
}

// syncViewport sizes the viewport and fills it for preview and code modes.
func (m *model) syncViewport() {
	m.viewport.Width = m.mainWidth()
	switch m.mode {
	case modePreview:
		m.viewport.Height = m.bodyHeight()
		m.viewport.SetContent(renderPreview(m.session.Store.Instances(), m.mainWidth()))
	case modeCode:
		m.viewport.Height = clampMin(m.bodyHeight()-2, 1)
		code, err := m.code()
		if err != nil {
			m.viewport.SetContent(errorStyle.Render("Cannot generate " + m.currentTarget().Label + ": " + err.Error()))
			return
		}
		m.viewport.SetContent(Highlight(code, m.currentTarget().Lexers, m.cfg.NoColor))
	}
}
