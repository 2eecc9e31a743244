package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/openbindings/appbuilder/internal/app"
	"github.com/openbindings/appbuilder/internal/cmd"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	root := cmd.NewRoot()
	root.SetArgs(args)

	err := root.Execute()
	if err == nil {
		return 0
	}

	var res app.ExitResult
	if !errors.As(err, &res) {
		// cobra flag and argument errors arrive as plain errors.
		res = app.ExitResult{Code: app.ExitUsage, Message: err.Error(), ToStderr: true}
	}
	if res.Message != "" {
		out := os.Stdout
		if res.ToStderr {
			out = os.Stderr
			if res.Code != 0 {
				res.Message = app.Styles.Error.Render("error: ") + res.Message
			}
		}
		fmt.Fprintln(out, res.Message)
	}
	return res.Code
}
