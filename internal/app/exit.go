package app

import (
	"errors"
	"fmt"
)

// ExitResult carries a command's exit code and message back to main, which
// decides whether it belongs on stdout or stderr. Successful output uses it too
// (Code 0), so commands never print directly.
type ExitResult struct {
	Code     int
	Message  string
	ToStderr bool
}

func (e ExitResult) Error() string   { return e.Message }
func (e ExitResult) ExitCode() int   { return e.Code }
func (e ExitResult) UseStderr() bool { return e.ToStderr }

// Exit codes.
const (
	ExitOK    = 0
	ExitFail  = 1
	ExitUsage = 2
)

// UsageExit reports bad arguments or flags.
func UsageExit(format string, args ...any) error {
	return ExitResult{Code: ExitUsage, Message: fmt.Sprintf(format, args...), ToStderr: true}
}

// FailExit reports a runtime failure.
func FailExit(format string, args ...any) error {
	return ExitResult{Code: ExitFail, Message: fmt.Sprintf(format, args...), ToStderr: true}
}

// OKText prints message to stdout and exits zero.
func OKText(message string) error {
	return ExitResult{Code: ExitOK, Message: message}
}

// AsExit converts any error into an ExitResult. Script and decode errors count
// as usage problems since the user's input is at fault.
func AsExit(err error) ExitResult {
	var res ExitResult
	if errors.As(err, &res) {
		return res
	}
	var se *ScriptError
	if errors.As(err, &se) {
		return ExitResult{Code: ExitUsage, Message: err.Error(), ToStderr: true}
	}
	return ExitResult{Code: ExitFail, Message: err.Error(), ToStderr: true}
}
