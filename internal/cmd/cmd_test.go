package cmd

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/openbindings/appbuilder/internal/app"
	"github.com/openbindings/appbuilder/internal/design"
)

// execRoot runs the root command and returns the ExitResult it produced.
func execRoot(t *testing.T, stdin string, args ...string) app.ExitResult {
	t.Helper()
	t.Setenv(app.EnvConfigFile, filepath.Join(t.TempDir(), "none.yaml"))
	t.Setenv(app.EnvTarget, "")
	t.Setenv(app.EnvIDStrategy, "")

	root := NewRoot()
	root.SetArgs(args)
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(io.Discard)
	err := root.Execute()
	if err == nil {
		return app.ExitResult{}
	}
	var res app.ExitResult
	if !errors.As(err, &res) {
		t.Fatalf("expected ExitResult, got %T: %v", err, err)
	}
	return res
}

func TestGenerate_FromExprs(t *testing.T) {
	res := execRoot(t, "", "generate", "-e", "add button", "-e", "set $last text=Save")
	if res.Code != 0 {
		t.Fatalf("unexpected exit %+v", res)
	}
	if !strings.HasPrefix(res.Message, `import React from "react";`) {
		t.Errorf("expected JSX, got:\n%s", res.Message)
	}
	if !strings.Contains(res.Message, "      Save\n") {
		t.Errorf("expected updated text, got:\n%s", res.Message)
	}
}

func TestGenerate_FromStdin(t *testing.T) {
	res := execRoot(t, "add card\n# comment\nadd text 10 20\n", "generate", "json", "--check")
	if res.Code != 0 {
		t.Fatalf("unexpected exit %+v", res)
	}
	if !strings.HasPrefix(res.Message, "[\n  {\n    \"type\": \"card\"") {
		t.Errorf("unexpected JSON:\n%s", res.Message)
	}
}

func TestGenerate_CheckKeepsControlCharacters(t *testing.T) {
	script := "add button\nset $last text=\"a\u0088b\"\nadd text\n"
	for _, target := range []string{"yaml", "json"} {
		res := execRoot(t, script, "generate", target, "--check")
		if res.Code != 0 {
			t.Fatalf("%s: unexpected exit %+v", target, res)
		}
		for _, id := range []string{"button-1", "text-1"} {
			if !strings.Contains(res.Message, id) {
				t.Errorf("%s: output lost %s:\n%s", target, id, res.Message)
			}
		}
	}
}

func TestGenerate_WritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "index.html")
	res := execRoot(t, "", "gen", "html", "-e", "add image", "-o", path)
	if res.Message != "Wrote "+path {
		t.Fatalf("unexpected result %+v", res)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `src="`+design.DefaultImageSrc) {
		t.Errorf("unexpected html:\n%s", data)
	}
}

func TestGenerate_ScriptFileError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.ab")
	if err := os.WriteFile(path, []byte("add button\nexplode\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	res := execRoot(t, "", "generate", "--script", path)
	if res.Code != app.ExitUsage || !res.ToStderr {
		t.Fatalf("expected usage error, got %+v", res)
	}
	if !strings.Contains(res.Message, "line 2") {
		t.Errorf("error should name the line: %q", res.Message)
	}
}

func TestGenerate_UnknownTarget(t *testing.T) {
	res := execRoot(t, "", "generate", "vue", "-e", "add button")
	if res.Code != app.ExitUsage {
		t.Errorf("expected usage error, got %+v", res)
	}
}

func TestGenerate_BadIDStrategyFlag(t *testing.T) {
	res := execRoot(t, "", "--id-strategy", "random", "generate", "-e", "add button")
	if res.Code != app.ExitUsage {
		t.Errorf("expected usage error, got %+v", res)
	}
}

func TestComponents_JSON(t *testing.T) {
	res := execRoot(t, "", "components", "--supported", "-F", "json")
	if res.Code != 0 {
		t.Fatalf("unexpected exit %+v", res)
	}
	for _, want := range []string{`"type": "button"`, `"text": "Click me"`, `"group": "Layout"`} {
		if !strings.Contains(res.Message, want) {
			t.Errorf("missing %s in:\n%s", want, res.Message)
		}
	}
	if strings.Contains(res.Message, `"chart"`) {
		t.Error("--supported should hide placeholder types")
	}
}

func TestTargetsAndSchema(t *testing.T) {
	res := execRoot(t, "", "targets", "-F", "yaml")
	if !strings.Contains(res.Message, "name: react") {
		t.Errorf("unexpected targets:\n%s", res.Message)
	}
	res = execRoot(t, "", "schema")
	if !strings.Contains(res.Message, `"$schema"`) {
		t.Errorf("unexpected schema:\n%s", res.Message)
	}
}

type fakeReader struct {
	lines []string
	out   strings.Builder
	err   strings.Builder
}

func (f *fakeReader) Readline() (string, error) {
	if len(f.lines) == 0 {
		return "", io.EOF
	}
	l := f.lines[0]
	f.lines = f.lines[1:]
	return l, nil
}
func (f *fakeReader) Stdout() io.Writer { return &f.out }
func (f *fakeReader) Stderr() io.Writer { return &f.err }

func TestShellLoop(t *testing.T) {
	session := app.NewSession(design.NewStore(), nil)
	rl := &fakeReader{lines: []string{"add text", "bogus", "list", "exit", "add button"}}
	if err := shellLoop(rl, session); err != nil {
		t.Fatal(err)
	}
	if session.Store.Len() != 1 {
		t.Errorf("exit should stop the loop, len=%d", session.Store.Len())
	}
	if !strings.HasPrefix(rl.out.String(), "text-1\n") {
		t.Errorf("stdout = %q", rl.out.String())
	}
	if !strings.Contains(rl.err.String(), "unknown command") {
		t.Errorf("stderr = %q", rl.err.String())
	}
}
