package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"github.com/openbindings/appbuilder/internal/app"
	"github.com/openbindings/appbuilder/internal/codegen"
	"github.com/openbindings/appbuilder/internal/design"
)

func newShellCmd() *cobra.Command {
	var script string

	cmd := &cobra.Command{
		Use:   "shell",
		Short: "Interactive design shell",
		Long: `Interactive shell over the design script language. Type "help" for the
command list and "exit" to leave. History persists between sessions.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := loadRuntime(cmd)
			if err != nil {
				return err
			}
			defer rt.close()

			session, err := rt.newSession()
			if err != nil {
				return err
			}
			if script != "" {
				if err := runScriptFile(session, script, cmd.OutOrStdout()); err != nil {
					return err
				}
			}

			history := rt.cfg.HistoryPath()
			if history != "" {
				if err := os.MkdirAll(filepath.Dir(history), app.DirPerm); err != nil {
					rt.logger.Warn("history disabled", "err", err)
					history = ""
				}
			}

			rl, err := readline.NewEx(&readline.Config{
				Prompt:            "appbuilder> ",
				HistoryFile:       history,
				AutoComplete:      shellCompleter(),
				InterruptPrompt:   "^C",
				EOFPrompt:         "exit",
				HistorySearchFold: true,
			})
			if err != nil {
				return app.FailExit("failed to initialize readline: %v", err)
			}
			defer rl.Close()

			return shellLoop(rl, session)
		},
	}

	cmd.Flags().StringVarP(&script, "script", "s", "", "run a script file before the prompt")

	return cmd
}

// lineReader is the part of readline the loop uses.
type lineReader interface {
	Readline() (string, error)
	Stdout() io.Writer
	Stderr() io.Writer
}

func shellLoop(rl lineReader, session *app.Session) error {
	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			if line == "" {
				fmt.Fprintln(rl.Stdout(), app.Styles.Dim.Render("Use 'exit' or ctrl+d to leave."))
			}
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return app.FailExit("read: %v", err)
		}

		switch strings.TrimSpace(line) {
		case "exit", "quit":
			return nil
		}

		out, err := session.Exec(line)
		if err != nil {
			fmt.Fprintln(rl.Stderr(), app.Styles.Error.Render("error: "+err.Error()))
			continue
		}
		if out != "" {
			fmt.Fprintln(rl.Stdout(), out)
		}
	}
}

func shellCompleter() *readline.PrefixCompleter {
	var types []readline.PrefixCompleterInterface
	for _, g := range design.Palette() {
		for _, e := range g.Entries {
			types = append(types, readline.PcItem(string(e.Type)))
		}
	}
	var targets []readline.PrefixCompleterInterface
	for _, t := range codegen.Targets() {
		targets = append(targets, readline.PcItem(string(t.Target)))
	}
	refs := []readline.PrefixCompleterInterface{
		readline.PcItem(app.RefLast),
		readline.PcItem(app.RefSelected),
	}

	return readline.NewPrefixCompleter(
		readline.PcItem("add", types...),
		readline.PcItem("set", refs...),
		readline.PcItem("move", refs...),
		readline.PcItem("remove", refs...),
		readline.PcItem("select", refs...),
		readline.PcItem("list"),
		readline.PcItem("generate", targets...),
		readline.PcItem("gen", targets...),
		readline.PcItem("copy", targets...),
		readline.PcItem("help"),
		readline.PcItem("exit"),
	)
}
