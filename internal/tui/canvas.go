package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/openbindings/appbuilder/internal/design"
)

// Canvas scale: one column is 10px and one row is 20px, so a grid step is
// two columns or one row.
const (
	pxPerCol = 10
	pxPerRow = 20
)

const (
	boxMinWidth = 14
	boxMaxWidth = 32
)

type cellKind uint8

const (
	cellEmpty cellKind = iota
	cellGrid
	cellBox
	cellSelected
	cellPlaceholder
	cellText
)

var cellStyles = map[cellKind]lipgloss.Style{
	cellGrid:        lipgloss.NewStyle().Foreground(lipgloss.Color("237")),
	cellBox:         lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	cellSelected:    lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true),
	cellPlaceholder: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	cellText:        lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
}

// dashedBorder marks unsupported component types.
var dashedBorder = lipgloss.Border{
	Top:         "╌",
	Bottom:      "╌",
	Left:        "╎",
	Right:       "╎",
	TopLeft:     "┌",
	TopRight:    "┐",
	BottomLeft:  "└",
	BottomRight: "┘",
}

// canvas is a fixed grid of runes, each tagged with how it is styled.
type canvas struct {
	w, h  int
	runes [][]rune
	kinds [][]cellKind
}

func newCanvas(w, h int) *canvas {
	c := &canvas{w: w, h: h, runes: make([][]rune, h), kinds: make([][]cellKind, h)}
	for y := 0; y < h; y++ {
		c.runes[y] = make([]rune, w)
		c.kinds[y] = make([]cellKind, w)
		for x := 0; x < w; x++ {
			c.runes[y][x] = ' '
			if x%4 == 0 && y%2 == 0 {
				c.runes[y][x] = '·'
				c.kinds[y][x] = cellGrid
			}
		}
	}
	return c
}

func (c *canvas) set(x, y int, r rune, k cellKind) {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return
	}
	c.runes[y][x] = r
	c.kinds[y][x] = k
}

func firstRune(s string) rune {
	for _, r := range s {
		return r
	}
	return ' '
}

// box draws a bordered box whose top-left corner is at (x, y) with lines
// inside. Parts outside the canvas are clipped.
func (c *canvas) box(x, y, w int, b lipgloss.Border, border, text cellKind, lines []string) {
	h := len(lines) + 2
	for i := 0; i < w; i++ {
		for j := 0; j < h; j++ {
			c.set(x+i, y+j, ' ', text)
		}
	}
	for i := 1; i < w-1; i++ {
		c.set(x+i, y, firstRune(b.Top), border)
		c.set(x+i, y+h-1, firstRune(b.Bottom), border)
	}
	for j := 1; j < h-1; j++ {
		c.set(x, y+j, firstRune(b.Left), border)
		c.set(x+w-1, y+j, firstRune(b.Right), border)
	}
	c.set(x, y, firstRune(b.TopLeft), border)
	c.set(x+w-1, y, firstRune(b.TopRight), border)
	c.set(x, y+h-1, firstRune(b.BottomLeft), border)
	c.set(x+w-1, y+h-1, firstRune(b.BottomRight), border)

	for j, line := range lines {
		for i, r := range []rune(line) {
			if i >= w-4 {
				break
			}
			c.set(x+2+i, y+1+j, r, text)
		}
	}
}

// String renders the canvas, styling runs of equally tagged cells together.
func (c *canvas) String() string {
	var b strings.Builder
	for y := 0; y < c.h; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		start := 0
		for x := 1; x <= c.w; x++ {
			if x < c.w && c.kinds[y][x] == c.kinds[y][start] {
				continue
			}
			run := string(c.runes[y][start:x])
			if st, ok := cellStyles[c.kinds[y][start]]; ok {
				run = st.Render(run)
			}
			b.WriteString(run)
			start = x
		}
	}
	return b.String()
}

// renderCanvas draws every instance at its scaled position. The selection
// is drawn last so it stays on top.
func renderCanvas(snap design.Snapshot, w, h int) string {
	if w <= 0 || h <= 0 {
		return ""
	}
	if len(snap.Instances) == 0 {
		msg := lipgloss.JoinVertical(lipgloss.Center,
			cellStyles[cellPlaceholder].Render(lipgloss.NewStyle().Border(dashedBorder).Padding(0, 1).Render("+")),
			"",
			lipgloss.NewStyle().Bold(true).Render("Drop components here"),
			cellStyles[cellBox].Render("or add them from the sidebar"),
		)
		return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, msg)
	}

	c := newCanvas(w, h)
	var selected *design.Instance
	for i := range snap.Instances {
		inst := snap.Instances[i]
		if inst.ID == snap.Selected {
			selected = &snap.Instances[i]
			continue
		}
		drawInstance(c, inst, false)
	}
	if selected != nil {
		drawInstance(c, *selected, true)
	}
	return c.String()
}

func drawInstance(c *canvas, inst design.Instance, selected bool) {
	lines := []string{string(inst.Type) + " #" + inst.ShortID(), canvasSummary(inst)}
	w := boxMinWidth
	for _, l := range lines {
		w = max(w, len([]rune(l))+4)
	}
	w = min(w, boxMaxWidth)

	border, kind := lipgloss.RoundedBorder(), cellBox
	switch {
	case selected:
		border, kind = lipgloss.ThickBorder(), cellSelected
	case !design.Supported(inst.Type):
		border, kind = dashedBorder, cellPlaceholder
	}
	c.box(inst.Position.X/pxPerCol, inst.Position.Y/pxPerRow, w, border, kind, cellText, lines)
}

// canvasSummary is the one-line content shown inside a canvas box.
func canvasSummary(inst design.Instance) string {
	var s summarizer
	inst.Accept(&s)
	return s.text
}

type summarizer struct{ text string }

func (s *summarizer) VisitButton(_ design.Instance, p *design.ButtonProps) {
	s.text = "[ " + p.Text + " ]"
}
func (s *summarizer) VisitText(_ design.Instance, p *design.TextProps) { s.text = p.Content }
func (s *summarizer) VisitInput(_ design.Instance, p *design.InputProps) {
	s.text = "▁ " + p.Placeholder
}
func (s *summarizer) VisitCard(_ design.Instance, p *design.CardProps)   { s.text = p.Title }
func (s *summarizer) VisitImage(_ design.Instance, p *design.ImageProps) { s.text = "▣ " + p.Alt }
func (s *summarizer) VisitOther(inst design.Instance, _ *design.OtherProps) {
	s.text = string(inst.Type)
}
