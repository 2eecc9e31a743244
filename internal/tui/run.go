package tui

import (
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/openbindings/appbuilder/internal/app"
)

// RunBuilder opens the interactive builder on session and blocks until the
// user quits.
func RunBuilder(session *app.Session, cfg app.Config, logger *slog.Logger) error {
	m := newModel(session, cfg, logger)
	m.logger.Info("builder started", "components", session.Store.Len(), "target", m.currentTarget().Target)

	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()

	m.logger.Info("builder closed", "components", session.Store.Len())
	return err
}
