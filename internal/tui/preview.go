package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/openbindings/appbuilder/internal/design"
)

// previewer renders instances roughly as they will look in the generated
// page, one block per instance.
type previewer struct {
	width  int
	blocks []string
}

// renderPreview lays out the design top to bottom, ignoring canvas
// positions the way the generated code does.
func renderPreview(instances []design.Instance, width int) string {
	if len(instances) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left,
			lipgloss.NewStyle().Bold(true).Render("No components to preview"),
			lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Render("Add some components to see the preview"),
		)
	}
	p := &previewer{width: width}
	for _, inst := range instances {
		inst.Accept(p)
	}
	return strings.Join(p.blocks, "\n\n")
}

func (p *previewer) add(s string) { p.blocks = append(p.blocks, s) }

var buttonColors = map[design.ButtonVariant][2]string{
	design.ButtonVariantDefault:     {"0", "15"},
	design.ButtonVariantDestructive: {"15", "1"},
	design.ButtonVariantSecondary:   {"15", "8"},
}

func (p *previewer) VisitButton(_ design.Instance, b *design.ButtonProps) {
	st := lipgloss.NewStyle().Padding(0, 2)
	switch b.Size {
	case design.ButtonSizeSmall:
		st = st.Padding(0, 1)
	case design.ButtonSizeLarge:
		st = st.Padding(1, 4)
	}
	switch b.Variant {
	case design.ButtonVariantOutline:
		st = st.Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("7"))
	case design.ButtonVariantGhost:
		st = st.Foreground(lipgloss.Color("7"))
	case design.ButtonVariantLink:
		st = st.Padding(0).Underline(true).Foreground(lipgloss.Color("12"))
	default:
		c, ok := buttonColors[b.Variant]
		if !ok {
			c = buttonColors[design.ButtonVariantDefault]
		}
		st = st.Foreground(lipgloss.Color(c[0])).Background(lipgloss.Color(c[1]))
	}
	p.add(st.Render(b.Text))
}

func (p *previewer) VisitText(_ design.Instance, t *design.TextProps) {
	st := lipgloss.NewStyle().Width(p.width)
	switch t.Weight {
	case design.TextWeightSemibold, design.TextWeightBold:
		st = st.Bold(true)
	}
	switch t.Size {
	case design.TextSizeXS, design.TextSizeSM:
		st = st.Faint(true)
	case design.TextSizeXL, design.TextSize2XL:
		st = st.Bold(true).Underline(true)
	}
	p.add(st.Render(t.Content))
}

func (p *previewer) VisitInput(_ design.Instance, in *design.InputProps) {
	text := in.Placeholder
	if in.InputType == design.InputTypePassword && text == "" {
		text = "••••••••"
	}
	box := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("8")).
		Foreground(lipgloss.Color("8")).
		Padding(0, 1).
		Width(min(40, clampMin(p.width-2, 10))).
		Render(text)
	hint := lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Render(string(in.InputType))
	p.add(lipgloss.JoinHorizontal(lipgloss.Center, box, " ", hint))
}

func (p *previewer) VisitCard(_ design.Instance, c *design.CardProps) {
	body := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().Bold(true).Render(c.Title),
		lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Render(c.Description),
		"",
		"Card content goes here",
	)
	p.add(lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("8")).
		Padding(1, 2).
		Width(min(44, clampMin(p.width-2, 20))).
		Render(body))
}

func (p *previewer) VisitImage(_ design.Instance, img *design.ImageProps) {
	body := lipgloss.JoinVertical(lipgloss.Center,
		"▣",
		img.Alt,
		lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MaxWidth(26).Render(img.Src),
	)
	p.add(lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("8")).
		Align(lipgloss.Center).
		Width(30).
		Padding(1, 0).
		Render(body))
}

// Unsupported types still show up, unlike in generated code, so nothing
// placed on the canvas disappears from the preview.
func (p *previewer) VisitOther(inst design.Instance, _ *design.OtherProps) {
	p.add(lipgloss.NewStyle().
		Border(dashedBorder).
		BorderForeground(lipgloss.Color("240")).
		Foreground(lipgloss.Color("8")).
		Padding(1, 2).
		Render(string(inst.Type)))
}
