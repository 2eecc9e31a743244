package cmd

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/openbindings/appbuilder/internal/app"
	"github.com/openbindings/appbuilder/internal/codegen"
	"github.com/openbindings/appbuilder/internal/tui"
)

func newDesignCmd() *cobra.Command {
	var (
		script    string
		target    string
		exportDir string
	)

	cmd := &cobra.Command{
		Use:     "design",
		Aliases: []string{"edit"},
		Short:   "Open the visual builder (TUI)",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
				return app.UsageExit("design needs an interactive terminal; use 'appbuilder generate' for scripted builds")
			}

			rt, err := loadRuntime(cmd)
			if err != nil {
				return err
			}
			defer rt.close()

			if target != "" {
				if _, err := codegen.LookupTarget(target); err != nil {
					return app.UsageExit("%v", err)
				}
				rt.cfg.Target = target
			}
			if exportDir != "" {
				rt.cfg.ExportDir = exportDir
			}

			session, err := rt.newSession()
			if err != nil {
				return err
			}
			if script != "" {
				if err := runScriptFile(session, script, io.Discard); err != nil {
					return err
				}
			}

			if err := tui.RunBuilder(session, rt.cfg, rt.logger); err != nil {
				return app.FailExit("builder: %v", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&script, "script", "s", "", "preload the design from a script file")
	cmd.Flags().StringVarP(&target, "target", "t", "", "initial code target: react|html|json|yaml")
	cmd.Flags().StringVar(&exportDir, "export-dir", "", "directory for exported code (default: current directory)")

	return cmd
}
