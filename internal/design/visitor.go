package design

// Visitor handles each props variant. Every per-type table in the codebase
// (registry defaults, editor fields, emitters, preview) implements it, so a
// new variant does not compile until each table covers it.
type Visitor interface {
	VisitButton(inst Instance, p *ButtonProps)
	VisitText(inst Instance, p *TextProps)
	VisitInput(inst Instance, p *InputProps)
	VisitCard(inst Instance, p *CardProps)
	VisitImage(inst Instance, p *ImageProps)
	VisitOther(inst Instance, p *OtherProps)
}
