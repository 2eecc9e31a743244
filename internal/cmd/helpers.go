package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/openbindings/appbuilder/internal/app"
)

// getOutputFlags returns the global --format and -o/--output (path) from the root command.
func getOutputFlags(c *cobra.Command) (format string, outputPath string) {
	format, _ = c.Root().PersistentFlags().GetString("format")
	outputPath, _ = c.Root().PersistentFlags().GetString("output")
	return format, outputPath
}

// runtime is the resolved configuration plus the logger built from it.
type runtime struct {
	cfg    app.Config
	logger *slog.Logger
	close  func() error
}

// loadRuntime resolves config (file, env, then global flags) and opens the
// logger. Callers must call close.
func loadRuntime(c *cobra.Command) (*runtime, error) {
	cfg, err := app.LoadConfig()
	if err != nil {
		return nil, app.UsageExit("%v", err)
	}

	flags := c.Root().PersistentFlags()
	override := func(dst *string, name string) {
		if flags.Changed(name) {
			*dst, _ = flags.GetString(name)
		}
	}
	override(&cfg.LogLevel, "log-level")
	override(&cfg.LogFile, "log-file")
	override(&cfg.IDStrategy, "id-strategy")
	if err := cfg.Validate(); err != nil {
		return nil, app.UsageExit("%v", err)
	}

	logger, closeFn, err := app.NewLogger(cfg)
	if err != nil {
		return nil, app.FailExit("%v", err)
	}
	logger.Debug("config resolved", "command", c.Name(), "idStrategy", cfg.IDStrategy, "target", cfg.Target)
	return &runtime{cfg: cfg, logger: logger, close: closeFn}, nil
}

func (r *runtime) newSession() (*app.Session, error) {
	store, err := r.cfg.NewStore(r.logger)
	if err != nil {
		return nil, app.UsageExit("%v", err)
	}
	return app.NewSession(store, r.logger), nil
}

// runScriptFile executes a script file against session. Command output goes
// to w.
func runScriptFile(session *app.Session, path string, w io.Writer) error {
	f, err := os.Open(path)
	if err != nil {
		return app.FailExit("open script: %v", err)
	}
	defer f.Close()
	if err := session.Run(f, w); err != nil {
		return scriptExit(path, err)
	}
	return nil
}

func scriptExit(source string, err error) error {
	res := app.AsExit(err)
	res.Message = fmt.Sprintf("%s: %s", source, res.Message)
	return res
}
