package app

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/atotto/clipboard"

	"github.com/openbindings/appbuilder/internal/codegen"
)

// clipboardWrite is swapped out in tests; CI machines have no clipboard.
var clipboardWrite = clipboard.WriteAll

// CopyToClipboard places generated code on the system clipboard.
func CopyToClipboard(code string) error {
	if err := clipboardWrite(code); err != nil {
		return fmt.Errorf("copy to clipboard: %w", err)
	}
	return nil
}

// ExportPath is where code for target is exported inside dir.
func ExportPath(dir string, target codegen.TargetInfo) string {
	if dir == "" {
		dir = "."
	}
	return filepath.Join(dir, ExportBaseName+target.Ext)
}

// ExportCode writes code for target into dir and returns the written path.
func ExportCode(dir string, target codegen.TargetInfo, code string) (string, error) {
	path := ExportPath(dir, target)
	if err := os.MkdirAll(filepath.Dir(path), DirPerm); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}
	if err := AtomicWriteFile(path, []byte(code), FilePerm); err != nil {
		return "", err
	}
	return path, nil
}

// AtomicWriteFile writes data through a temp file in the same directory and
// renames it into place. An existing file keeps its permissions.
func AtomicWriteFile(path string, data []byte, perm os.FileMode) error {
	if info, err := os.Stat(path); err == nil {
		perm = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".appbuilder-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp: %w", err)
	}
	tmpPath := tmp.Name()
	fail := func(step string, err error) error {
		os.Remove(tmpPath)
		return fmt.Errorf("%s: %w", step, err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fail("write temp", err)
	}
	if err := tmp.Close(); err != nil {
		return fail("close temp", err)
	}
	if err := os.Chmod(tmpPath, perm); err != nil {
		return fail("chmod temp", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fail("rename", err)
	}
	return nil
}
