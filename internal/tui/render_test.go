package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/openbindings/appbuilder/internal/design"
)

func TestRenderCanvasPlacesBoxes(t *testing.T) {
	store := design.NewStore()
	store.Add(design.TypeButton, design.Position{X: 100, Y: 100})
	store.Add("chart", design.Position{X: 0, Y: 0})
	out := ansi.Strip(renderCanvas(store.Snapshot("button-1"), 60, 12))
	lines := strings.Split(out, "\n")
	if len(lines) != 12 {
		t.Fatalf("canvas height = %d", len(lines))
	}
	// 100px -> column 10, row 5; title is on the row below the border.
	if got := string([]rune(lines[6])[12:]); !strings.HasPrefix(got, "button #1") {
		t.Errorf("button title misplaced: %q", lines[6])
	}
	if !strings.Contains(lines[7], "[ Click me ]") {
		t.Errorf("button summary missing: %q", lines[7])
	}
	if !strings.HasPrefix(lines[5][len("          "):], "┏") {
		t.Errorf("selection should use a thick border: %q", lines[5])
	}
	if !strings.HasPrefix(lines[0], "┌╌") {
		t.Errorf("unsupported type should be dashed: %q", lines[0])
	}
}

func TestRenderCanvasEmpty(t *testing.T) {
	out := ansi.Strip(renderCanvas(design.Snapshot{}, 60, 12))
	if !strings.Contains(out, "Drop components here") {
		t.Errorf("unexpected empty canvas:\n%s", out)
	}
}

func TestRenderPreview(t *testing.T) {
	if out := renderPreview(nil, 60); !strings.Contains(ansi.Strip(out), "No components to preview") {
		t.Errorf("empty preview: %q", out)
	}

	store := design.NewStore()
	store.Add(design.TypeCard, design.DefaultDropPosition)
	store.Add("calendar", design.DefaultDropPosition)
	out := ansi.Strip(renderPreview(store.Instances(), 60))
	for _, want := range []string{"Card Title", "Card description", "Card content goes here", "calendar", "╌"} {
		if !strings.Contains(out, want) {
			t.Errorf("preview missing %q:\n%s", want, out)
		}
	}
}

func TestPropertyFormPatch(t *testing.T) {
	store := design.NewStore()
	inst := store.Add(design.TypeButton, design.DefaultDropPosition)
	store.Update(inst.ID, design.Patch{Props: map[string]any{"variant": "fancy"}})
	inst, _ = store.Get(inst.ID)

	pf := newPropertyForm(inst)
	if *pf.values["text"] != "Click me" || *pf.values["variant"] != "fancy" {
		t.Fatalf("form should start from current values: %q %q", *pf.values["text"], *pf.values["variant"])
	}
	*pf.values["text"] = "Go"
	pf.x, pf.y = "42px", "oops"

	store.Update(inst.ID, pf.patch())
	got, _ := store.Get(inst.ID)
	if v, _ := got.Props.Get("text"); v != "Go" {
		t.Errorf("text = %v", v)
	}
	if got.Position != (design.Position{X: 42, Y: 0}) {
		t.Errorf("position = %+v", got.Position)
	}
}

func TestPropertyFormUnsupportedHasOnlyPosition(t *testing.T) {
	inst := design.NewInstance("grid-1", "grid", design.Position{X: 5, Y: 6})
	pf := newPropertyForm(inst)
	if len(pf.keys) != 0 {
		t.Errorf("unsupported type should have no property fields, got %v", pf.keys)
	}
	p := pf.patch()
	if len(p.Props) != 0 || *p.Position != (design.Position{X: 5, Y: 6}) {
		t.Errorf("unexpected patch %+v", p)
	}
}

func TestHighlightCode(t *testing.T) {
	if got := Highlight("<p>x</p>", []string{"html"}, true); got != "<p>x</p>" {
		t.Errorf("no-color should return code unchanged, got %q", got)
	}
	got := Highlight(`{"a": 1}`, []string{"nope", "json"}, false)
	if plain := ansi.Strip(got); !strings.Contains(plain, `"a"`) || !strings.Contains(plain, "1") {
		t.Errorf("highlighting lost the text: %q", plain)
	}
}

func TestTypeLabel(t *testing.T) {
	if got := typeLabel("button"); got != "Button" {
		t.Errorf("typeLabel = %q", got)
	}
}
