package cmd

import (
	"github.com/spf13/cobra"
)

// NewRoot builds the top-level `appbuilder` command.
//
// Errors and usage stay silent; main decides how to print an ExitResult.
func NewRoot() *cobra.Command {
	root := &cobra.Command{
		Use:           "appbuilder",
		Short:         "appbuilder: lay out UI components, generate React and HTML",
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	pf := root.PersistentFlags()
	pf.StringP("output", "o", "", "write output to file (default: stdout)")
	pf.StringP("format", "F", "", "output format: json|yaml|text|quiet")
	pf.String("log-level", "", "log level: debug|info|warn|error")
	pf.String("log-file", "", "append logs to this file (default: logs are discarded)")
	pf.String("id-strategy", "", "component id strategy: counter|uuid")

	root.AddGroup(
		&cobra.Group{ID: "build", Title: "design and generate"},
		&cobra.Group{ID: "introspect", Title: "introspection"},
	)

	designCmd := newDesignCmd()
	designCmd.GroupID = "build"

	generateCmd := newGenerateCmd()
	generateCmd.GroupID = "build"

	shellCmd := newShellCmd()
	shellCmd.GroupID = "build"

	componentsCmd := newComponentsCmd()
	componentsCmd.GroupID = "introspect"

	targetsCmd := newTargetsCmd()
	targetsCmd.GroupID = "introspect"

	schemaCmd := newSchemaCmd()
	schemaCmd.GroupID = "introspect"

	root.AddCommand(
		designCmd,
		generateCmd,
		shellCmd,
		componentsCmd,
		targetsCmd,
		schemaCmd,
	)

	return root
}
