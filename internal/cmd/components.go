package cmd

import (
	"github.com/spf13/cobra"

	"github.com/openbindings/appbuilder/internal/app"
)

func newComponentsCmd() *cobra.Command {
	var supported bool

	cmd := &cobra.Command{
		Use:     "components",
		Aliases: []string{"palette"},
		Short:   "List the component palette and default properties",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, outputPath := getOutputFlags(cmd)
			return app.OutputResult(app.Catalog(supported), format, outputPath)
		},
	}

	cmd.Flags().BoolVar(&supported, "supported", false, "only list types with code generation support")

	return cmd
}
