package tui

import (
	"bytes"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/lipgloss"

	"github.com/openbindings/appbuilder/internal/codegen"
)

var (
	chromaStyle     = styles.Get("dracula")
	chromaFormatter = formatters.Get("terminal256")
	plainCodeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
)

func init() {
	if chromaStyle == nil {
		chromaStyle = styles.Fallback
	}
	if chromaFormatter == nil {
		chromaFormatter = formatters.Fallback
	}
}

// lexerFor returns the first registered lexer among names, falling back to
// content analysis.
func lexerFor(names []string, code string) chroma.Lexer {
	for _, n := range names {
		if l := lexers.Get(n); l != nil {
			return l
		}
	}
	return lexers.Analyse(code)
}

// Highlight colors code for the terminal. Plain text is returned when
// no lexer applies or highlighting fails.
func Highlight(code string, names []string, noColor bool) string {
	if code == "" || noColor {
		return code
	}
	lexer := lexerFor(names, code)
	if lexer == nil {
		return plainCodeStyle.Render(code)
	}
	it, err := chroma.Coalesce(lexer).Tokenise(nil, code)
	if err != nil {
		return plainCodeStyle.Render(code)
	}
	var buf bytes.Buffer
	if err := chromaFormatter.Format(&buf, chromaStyle, it); err != nil {
		return plainCodeStyle.Render(code)
	}
	return buf.String()
}

// viewTargetTabs is the target strip above the code panel.
func viewTargetTabs(targets []codegen.TargetInfo, active int) string {
	activeStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	muted := lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	parts := make([]string, len(targets))
	for i, t := range targets {
		if i == active {
			parts[i] = activeStyle.Render("[" + t.Label + "]")
		} else {
			parts[i] = muted.Render(t.Label)
		}
	}
	return strings.Join(parts, "  ") + muted.Render("   ←/→")
}
