package tui

import "strings"

type keyHelpEntry struct {
	key   string
	label string
}

func keyHelp(keys ...keyHelpEntry) string {
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k.key + ": " + k.label
	}
	return strings.Join(parts, "   ")
}

var keyHelpForm = []keyHelpEntry{
	{key: "tab/enter", label: "next"},
	{key: "esc", label: "cancel"},
}

var keyHelpPalette = []keyHelpEntry{
	{key: "j/k", label: "navigate"},
	{key: "enter", label: "add"},
	{key: "tab", label: "focus"},
	{key: "1/2/3", label: "mode"},
	{key: "q", label: "quit"},
}

var keyHelpTree = []keyHelpEntry{
	{key: "j/k", label: "navigate"},
	{key: "enter", label: "select"},
	{key: "x", label: "delete"},
	{key: "e", label: "edit"},
	{key: "tab", label: "focus"},
	{key: "q", label: "quit"},
}

var keyHelpCanvas = []keyHelpEntry{
	{key: "hjkl/←↓↑→", label: "move"},
	{key: "e", label: "edit"},
	{key: "x", label: "delete"},
	{key: "esc", label: "deselect"},
	{key: "tab", label: "focus"},
	{key: "q", label: "quit"},
}

var keyHelpPreview = []keyHelpEntry{
	{key: "j/k", label: "scroll"},
	{key: "tab", label: "sidebar"},
	{key: "1/3", label: "mode"},
	{key: "q", label: "quit"},
}

var keyHelpCode = []keyHelpEntry{
	{key: "←/→", label: "target"},
	{key: "j/k", label: "scroll"},
	{key: "c", label: "copy"},
	{key: "d", label: "export"},
	{key: "1/2", label: "mode"},
	{key: "q", label: "quit"},
}

func (m *model) keyHelpEntries() []keyHelpEntry {
	switch {
	case m.form != nil:
		return keyHelpForm
	case m.mode == modePreview:
		return keyHelpPreview
	case m.mode == modeCode:
		return keyHelpCode
	case m.focus == focusTree:
		return keyHelpTree
	case m.focus == focusCanvas:
		return keyHelpCanvas
	}
	return keyHelpPalette
}
