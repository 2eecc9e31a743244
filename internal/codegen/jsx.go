package codegen

import (
	"strings"

	"github.com/openbindings/appbuilder/internal/design"
)

const (
	importReact  = `import React from "react";`
	importButton = `import { Button } from "./components/ui/button";`
	importInput  = `import { Input } from "./components/ui/input";`
	importCard   = `import { Card, CardContent, CardDescription, CardHeader, CardTitle } from "./components/ui/card";`
)

// JSX renders the tree as a React function component. The import block holds
// React plus one declaration per UI kit module in first-use order.
func JSX(instances []design.Instance) string {
	e := &jsxEmitter{imports: newOrderedSet(importReact)}
	frags := walk(instances, e)

	var b strings.Builder
	for _, imp := range e.imports.list() {
		b.WriteString(imp)
		b.WriteByte('\n')
	}
	b.WriteString("\nexport function GeneratedComponent() {\n")
	b.WriteString("  return (\n")
	b.WriteString(`    <div className="space-y-6 p-6">` + "\n")
	writeFragments(&b, frags, "      ")
	b.WriteString("    </div>\n")
	b.WriteString("  );\n")
	b.WriteString("}\n")
	return b.String()
}

type jsxEmitter struct {
	imports *orderedSet
	frags   []fragment
}

func (e *jsxEmitter) fragments() []fragment { return e.frags }

func (e *jsxEmitter) VisitButton(_ design.Instance, p *design.ButtonProps) {
	e.imports.add(importButton)
	e.frags = append(e.frags, fragment{
		`<Button variant="` + string(p.Variant) + `" size="` + string(p.Size) + `">`,
		"  " + p.Text,
		"</Button>",
	})
}

func (e *jsxEmitter) VisitText(_ design.Instance, p *design.TextProps) {
	e.frags = append(e.frags, fragment{
		`<p className="text-` + string(p.Size) + ` font-` + string(p.Weight) + `">`,
		"  " + p.Content,
		"</p>",
	})
}

func (e *jsxEmitter) VisitInput(_ design.Instance, p *design.InputProps) {
	e.imports.add(importInput)
	e.frags = append(e.frags, fragment{
		"<Input",
		`  placeholder="` + p.Placeholder + `"`,
		`  type="` + string(p.InputType) + `"`,
		"/>",
	})
}

func (e *jsxEmitter) VisitCard(_ design.Instance, p *design.CardProps) {
	e.imports.add(importCard)
	e.frags = append(e.frags, fragment{
		"<Card>",
		"  <CardHeader>",
		"    <CardTitle>" + p.Title + "</CardTitle>",
		"    <CardDescription>" + p.Description + "</CardDescription>",
		"  </CardHeader>",
		"  <CardContent>",
		"    <p>Card content goes here</p>",
		"  </CardContent>",
		"</Card>",
	})
}

func (e *jsxEmitter) VisitImage(_ design.Instance, p *design.ImageProps) {
	e.frags = append(e.frags, fragment{
		"<img",
		`  src="` + p.Src + `"`,
		`  alt="` + p.Alt + `"`,
		`  className="max-w-[300px] max-h-[200px] object-cover rounded"`,
		"/>",
	})
}

// VisitOther emits nothing: JSX has no placeholder for unsupported types.
func (e *jsxEmitter) VisitOther(design.Instance, *design.OtherProps) {}
