package app

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// OutputFormat is a value of the global --format flag.
type OutputFormat string

const (
	OutputFormatText  OutputFormat = "text"
	OutputFormatJSON  OutputFormat = "json"
	OutputFormatYAML  OutputFormat = "yaml"
	OutputFormatQuiet OutputFormat = "quiet"
)

// ParseOutputFormat accepts "", text, json, yaml/yml and quiet.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "text":
		return OutputFormatText, nil
	case "json":
		return OutputFormatJSON, nil
	case "yaml", "yml":
		return OutputFormatYAML, nil
	case "quiet":
		return OutputFormatQuiet, nil
	}
	return "", fmt.Errorf("unknown output format %q (valid: text, json, yaml, quiet)", s)
}

// Renderable is implemented by command results with a human-readable form.
type Renderable interface {
	Render() string
}

// FormatOutput serializes v as indented JSON or block YAML.
func FormatOutput(v any, format OutputFormat) ([]byte, error) {
	var buf bytes.Buffer
	switch format {
	case OutputFormatJSON:
		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return nil, err
		}
	case OutputFormatYAML:
		// Go through JSON so json tags decide field names.
		generic, err := normalizeJSON(v)
		if err != nil {
			return nil, err
		}
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(generic); err != nil {
			return nil, err
		}
		if err := enc.Close(); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

func normalizeJSON(v any) (any, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var out any
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// OutputResult renders v according to format and, when outputPath is set,
// writes it to that file instead of stdout.
func OutputResult(v any, format, outputPath string) error {
	return OutputResultText(v, format, outputPath, nil)
}

// OutputResultText is OutputResult with an explicit text renderer.
func OutputResultText(v any, format, outputPath string, textFn func() string) error {
	f, err := ParseOutputFormat(format)
	if err != nil {
		return UsageExit("%v", err)
	}
	if f == OutputFormatQuiet {
		return ExitResult{Code: ExitOK}
	}

	var body string
	if f == OutputFormatText {
		body = renderText(v, textFn)
	} else {
		b, err := FormatOutput(v, f)
		if err != nil {
			return FailExit("format output: %v", err)
		}
		body = string(b)
	}

	if outputPath == "" {
		return OKText(body)
	}
	if err := AtomicWriteFile(outputPath, []byte(body+"\n"), FilePerm); err != nil {
		return FailExit("%v", err)
	}
	return OKText("Wrote " + outputPath)
}

func renderText(v any, textFn func() string) string {
	switch {
	case textFn != nil:
		return strings.TrimRight(textFn(), "\n")
	case v == nil:
		return ""
	}
	if r, ok := v.(Renderable); ok {
		return r.Render()
	}
	b, err := FormatOutput(v, OutputFormatJSON)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(b)
}
