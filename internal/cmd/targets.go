package cmd

import (
	"github.com/spf13/cobra"

	"github.com/openbindings/appbuilder/internal/app"
)

func newTargetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "targets",
		Short: "List code generation targets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, outputPath := getOutputFlags(cmd)
			return app.OutputResult(app.ListTargets(), format, outputPath)
		},
	}
}
