package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/openbindings/appbuilder/internal/app"
	"github.com/openbindings/appbuilder/internal/codegen"
	"github.com/openbindings/appbuilder/internal/design"
	"github.com/openbindings/appbuilder/internal/tui"
)

func newGenerateCmd() *cobra.Command {
	var (
		script  string
		exprs   []string
		copyIt  bool
		printIt bool
		check   bool
	)

	cmd := &cobra.Command{
		Use:     "generate [target]",
		Aliases: []string{"gen"},
		Short:   "Build a design from a script and print generated code",
		Long: `Build a design from a script and print the code for one target.

The script comes from --script, from repeated -e expressions, or from stdin
when stdin is not a terminal. Targets: react (default), html, json, yaml.`,
		Example: `  appbuilder generate -e 'add button' -e 'set $last text=Save'
  appbuilder generate html --script form.ab -o index.html
  echo 'add card' | appbuilder generate json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := loadRuntime(cmd)
			if err != nil {
				return err
			}
			defer rt.close()

			name := rt.cfg.Target
			if len(args) == 1 {
				name = args[0]
			}
			info, err := codegen.LookupTarget(name)
			if err != nil {
				return app.UsageExit("%v", err)
			}

			session, err := rt.newSession()
			if err != nil {
				return err
			}
			if err := feedScript(cmd, session, script, exprs); err != nil {
				return err
			}

			instances := session.Store.Instances()
			if check {
				if err := checkRoundTrip(instances); err != nil {
					return app.FailExit("round trip check failed: %v", err)
				}
			}

			code, err := info.Emit(instances)
			if err != nil {
				return app.FailExit("generate %s: %v", info.Target, err)
			}
			rt.logger.Info("generated", "target", info.Target, "components", len(instances), "bytes", len(code))

			if copyIt {
				if err := app.CopyToClipboard(code); err != nil {
					return app.FailExit("%v", err)
				}
			}

			_, outputPath := getOutputFlags(cmd)
			if outputPath != "" {
				if err := app.AtomicWriteFile(outputPath, []byte(code), app.FilePerm); err != nil {
					return app.FailExit("%v", err)
				}
				return app.OKText("Wrote " + outputPath)
			}
			if copyIt && !printIt {
				return app.OKText(fmt.Sprintf("Copied %s to clipboard", info.Label))
			}
			code = strings.TrimRight(code, "\n")
			if f, ok := cmd.OutOrStdout().(*os.File); ok && term.IsTerminal(int(f.Fd())) {
				code = tui.Highlight(code, info.Lexers, rt.cfg.NoColor)
			}
			return app.OKText(code)
		},
	}

	cmd.Flags().StringVarP(&script, "script", "s", "", "script file to run")
	cmd.Flags().StringArrayVarP(&exprs, "exec", "e", nil, "script line to run (repeatable)")
	cmd.Flags().BoolVar(&copyIt, "copy", false, "copy the generated code to the clipboard")
	cmd.Flags().BoolVar(&printIt, "print", false, "with --copy, still print the code")
	cmd.Flags().BoolVar(&check, "check", false, "verify the design survives a JSON round trip")

	return cmd
}

// feedScript runs the script file, then each -e line. With neither, a piped
// stdin is read as the script.
func feedScript(cmd *cobra.Command, session *app.Session, script string, exprs []string) error {
	if script != "" {
		if err := runScriptFile(session, script, io.Discard); err != nil {
			return err
		}
	}
	for i, line := range exprs {
		if _, err := session.Exec(line); err != nil {
			return scriptExit(fmt.Sprintf("-e #%d", i+1), &app.ScriptError{Line: 1, Text: line, Err: err})
		}
	}
	if script != "" || len(exprs) > 0 {
		return nil
	}

	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return nil
	}
	if err := session.Run(in, io.Discard); err != nil {
		return scriptExit("stdin", err)
	}
	return nil
}

// checkRoundTrip decodes the JSON and YAML forms of instances and compares
// each with the encoded input.
func checkRoundTrip(instances []design.Instance) error {
	formats := []struct {
		name   string
		encode func([]design.Instance) (string, error)
		decode func([]byte) ([]design.Instance, error)
	}{
		{"json", codegen.JSON, codegen.DecodeJSON},
		{"yaml", codegen.YAML, codegen.DecodeYAML},
	}
	for _, f := range formats {
		encoded, err := f.encode(instances)
		if err != nil {
			return fmt.Errorf("%s: %w", f.name, err)
		}
		decoded, err := f.decode([]byte(encoded))
		if err != nil {
			return fmt.Errorf("%s: %w", f.name, err)
		}
		if len(decoded) != len(instances) {
			return fmt.Errorf("%s: decoded %d components, encoded %d", f.name, len(decoded), len(instances))
		}
		again, err := f.encode(decoded)
		if err != nil {
			return fmt.Errorf("%s: %w", f.name, err)
		}
		if again != encoded {
			return fmt.Errorf("%s: decoded design differs from the encoded one", f.name)
		}
	}
	return nil
}
