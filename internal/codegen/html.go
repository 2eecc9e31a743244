package codegen

import (
	"strings"

	"github.com/openbindings/appbuilder/internal/design"
)

// HTML renders the tree as a standalone HTML document styled with utility
// classes. Unsupported component types produce no markup.
func HTML(instances []design.Instance) string {
	frags := walk(instances, &htmlEmitter{})

	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n")
	b.WriteString(`<html lang="en">` + "\n")
	b.WriteString("<head>\n")
	b.WriteString(`  <meta charset="UTF-8">` + "\n")
	b.WriteString(`  <meta name="viewport" content="width=device-width, initial-scale=1.0">` + "\n")
	b.WriteString("  <title>Generated App</title>\n")
	b.WriteString(`  <link href="https://cdn.tailwindcss.com" rel="stylesheet">` + "\n")
	b.WriteString("</head>\n")
	b.WriteString("<body>\n")
	b.WriteString(`  <div class="space-y-6 p-6">` + "\n")
	writeFragments(&b, frags, "    ")
	b.WriteString("  </div>\n")
	b.WriteString("</body>\n")
	b.WriteString("</html>\n")
	return b.String()
}

type htmlEmitter struct {
	frags []fragment
}

func (e *htmlEmitter) fragments() []fragment { return e.frags }

func (e *htmlEmitter) VisitButton(_ design.Instance, p *design.ButtonProps) {
	e.frags = append(e.frags, fragment{
		`<button class="btn btn-` + string(p.Variant) + ` btn-` + string(p.Size) + `">`,
		"  " + p.Text,
		"</button>",
	})
}

func (e *htmlEmitter) VisitText(_ design.Instance, p *design.TextProps) {
	e.frags = append(e.frags, fragment{
		`<p class="text-` + string(p.Size) + ` font-` + string(p.Weight) + `">`,
		"  " + p.Content,
		"</p>",
	})
}

func (e *htmlEmitter) VisitInput(_ design.Instance, p *design.InputProps) {
	e.frags = append(e.frags, fragment{
		"<input",
		`  type="` + string(p.InputType) + `"`,
		`  placeholder="` + p.Placeholder + `"`,
		`  class="form-input"`,
		"/>",
	})
}

func (e *htmlEmitter) VisitCard(_ design.Instance, p *design.CardProps) {
	e.frags = append(e.frags, fragment{
		`<div class="card">`,
		`  <div class="card-header">`,
		`    <h3 class="card-title">` + p.Title + "</h3>",
		`    <p class="card-description">` + p.Description + "</p>",
		"  </div>",
		`  <div class="card-content">`,
		"    <p>Card content goes here</p>",
		"  </div>",
		"</div>",
	})
}

func (e *htmlEmitter) VisitImage(_ design.Instance, p *design.ImageProps) {
	e.frags = append(e.frags, fragment{
		"<img",
		`  src="` + p.Src + `"`,
		`  alt="` + p.Alt + `"`,
		`  class="image-responsive"`,
		"/>",
	})
}

func (e *htmlEmitter) VisitOther(design.Instance, *design.OtherProps) {}
