package app

import (
	"errors"
	"fmt"
)

// ErrUnknownRef is returned when a script names an instance that does not exist.
var ErrUnknownRef = errors.New("unknown component")

// ScriptError locates a failing script line.
type ScriptError struct {
	Line int
	Text string
	Err  error
}

func (e *ScriptError) Error() string {
	return fmt.Sprintf("line %d: %s: %v", e.Line, e.Text, e.Err)
}

func (e *ScriptError) Unwrap() error { return e.Err }
