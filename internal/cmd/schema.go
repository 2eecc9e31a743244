package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/openbindings/appbuilder/internal/app"
	"github.com/openbindings/appbuilder/internal/codegen"
)

func newSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema of the design JSON/YAML format",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			schema := codegen.SchemaJSON()
			_, outputPath := getOutputFlags(cmd)
			if outputPath != "" {
				if err := app.AtomicWriteFile(outputPath, schema, app.FilePerm); err != nil {
					return app.FailExit("%v", err)
				}
				return app.OKText("Wrote " + outputPath)
			}
			return app.OKText(strings.TrimRight(string(schema), "\n"))
		},
	}
}
