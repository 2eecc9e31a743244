package app

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFormatOutput_YAMLUsesJSONFieldNames(t *testing.T) {
	b, err := FormatOutput(ListTargets(), OutputFormatYAML)
	if err != nil {
		t.Fatalf("FormatOutput: %v", err)
	}
	s := string(b)
	if !strings.HasPrefix(s, "targets:\n") {
		t.Errorf("YAML should start with targets key, got:\n%s", s)
	}
	if !strings.Contains(s, "extension: .tsx") {
		t.Errorf("YAML should use json tag names, got:\n%s", s)
	}
}

func TestFormatOutput_JSONKeepsMarkup(t *testing.T) {
	b, err := FormatOutput(map[string]string{"code": "<div>"}, OutputFormatJSON)
	if err != nil {
		t.Fatalf("FormatOutput: %v", err)
	}
	if !strings.Contains(string(b), `"<div>"`) {
		t.Errorf("expected unescaped markup, got %s", b)
	}
}

func TestParseOutputFormat(t *testing.T) {
	for in, want := range map[string]OutputFormat{
		"":      OutputFormatText,
		"text":  OutputFormatText,
		"JSON":  OutputFormatJSON,
		"yml":   OutputFormatYAML,
		"quiet": OutputFormatQuiet,
	} {
		got, err := ParseOutputFormat(in)
		if err != nil || got != want {
			t.Errorf("ParseOutputFormat(%q) = %q, %v; want %q", in, got, err, want)
		}
	}
	if _, err := ParseOutputFormat("xml"); err == nil {
		t.Error("expected error for xml")
	}
}

func TestOutputResult_UsesRenderable(t *testing.T) {
	err := OutputResult(ListTargets(), "", "")
	res := AsExit(err)
	if res.Code != ExitOK || res.ToStderr {
		t.Fatalf("unexpected result %+v", res)
	}
	if !strings.Contains(res.Message, "React JSX") {
		t.Errorf("text output should come from Render, got %q", res.Message)
	}
}

func TestOutputResult_BadFormatIsUsage(t *testing.T) {
	res := AsExit(OutputResult(ListTargets(), "xml", ""))
	if res.Code != ExitUsage || !res.ToStderr {
		t.Errorf("expected usage exit, got %+v", res)
	}
}

func TestOutputResult_QuietIsSilent(t *testing.T) {
	res := AsExit(OutputResult(ListTargets(), "quiet", ""))
	if res.Code != ExitOK || res.Message != "" {
		t.Errorf("expected silent success, got %+v", res)
	}
}

func TestOutputResult_WritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "targets.json")
	res := AsExit(OutputResult(ListTargets(), "json", path))
	if res.Message != "Wrote "+path {
		t.Fatalf("unexpected message %q", res.Message)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "{\n  \"targets\"") {
		t.Errorf("unexpected file content:\n%s", data)
	}
}

func TestAsExit(t *testing.T) {
	if got := AsExit(errors.New("boom")); got.Code != ExitFail || got.Message != "boom" {
		t.Errorf("plain error: %+v", got)
	}
	se := &ScriptError{Line: 3, Text: "frob", Err: errors.New("unknown command")}
	if got := AsExit(se); got.Code != ExitUsage {
		t.Errorf("script error: %+v", got)
	}
	if got := AsExit(UsageExit("bad %s", "flag")); got.Message != "bad flag" {
		t.Errorf("usage exit: %+v", got)
	}
}
