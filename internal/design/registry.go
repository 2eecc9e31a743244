package design

// DefaultDropPosition is where click-to-add places a component.
var DefaultDropPosition = Position{X: 100, Y: 100}

// DefaultImageSrc is the placeholder image of a new image component.
const DefaultImageSrc = "https://images.unsplash.com/photo-1555041469-a586c61ea9bc"

// DefaultProps returns a fresh record with the defaults for t. Unknown types
// get an empty record rather than an error.
func DefaultProps(t Type) Props {
	p := NewProps(t)
	Instance{Type: t, Props: p}.Accept(defaulter{})
	return p
}

// Supported reports whether t has registry and generator support.
func Supported(t Type) bool {
	_, other := NewProps(t).(*OtherProps)
	return !other
}

type defaulter struct{}

func (defaulter) VisitButton(_ Instance, p *ButtonProps) {
	p.Text = "Click me"
	p.Variant = ButtonVariantDefault
	p.Size = ButtonSizeDefault
}

func (defaulter) VisitText(_ Instance, p *TextProps) {
	p.Content = "Sample text"
	p.Size = TextSizeBase
	p.Weight = TextWeightNormal
}

func (defaulter) VisitInput(_ Instance, p *InputProps) {
	p.Placeholder = "Enter text..."
	p.InputType = InputTypeText
}

func (defaulter) VisitCard(_ Instance, p *CardProps) {
	p.Title = "Card Title"
	p.Description = "Card description"
}

func (defaulter) VisitImage(_ Instance, p *ImageProps) {
	p.Src = DefaultImageSrc
	p.Alt = "Sample image"
}

func (defaulter) VisitOther(Instance, *OtherProps) {}

// Option is one choice of an enumerated property.
type Option struct {
	Label string
	Value string
}

// Field describes one editable property. Options is empty for free text.
type Field struct {
	Key     string
	Label   string
	Options []Option
}

// Fields returns the editable properties of t, in editor order. Unsupported
// types have none.
func Fields(t Type) []Field {
	var fv fieldsVisitor
	Instance{Type: t, Props: NewProps(t)}.Accept(&fv)
	return fv.fields
}

type fieldsVisitor struct {
	fields []Field
}

func (f *fieldsVisitor) VisitButton(Instance, *ButtonProps) {
	f.fields = []Field{
		{Key: "text", Label: "Button Text"},
		{Key: "variant", Label: "Variant", Options: []Option{
			{"Default", string(ButtonVariantDefault)},
			{"Destructive", string(ButtonVariantDestructive)},
			{"Outline", string(ButtonVariantOutline)},
			{"Secondary", string(ButtonVariantSecondary)},
			{"Ghost", string(ButtonVariantGhost)},
			{"Link", string(ButtonVariantLink)},
		}},
		{Key: "size", Label: "Size", Options: []Option{
			{"Small", string(ButtonSizeSmall)},
			{"Default", string(ButtonSizeDefault)},
			{"Large", string(ButtonSizeLarge)},
		}},
	}
}

func (f *fieldsVisitor) VisitText(Instance, *TextProps) {
	f.fields = []Field{
		{Key: "content", Label: "Text Content"},
		{Key: "size", Label: "Text Size", Options: []Option{
			{"Extra Small", string(TextSizeXS)},
			{"Small", string(TextSizeSM)},
			{"Base", string(TextSizeBase)},
			{"Large", string(TextSizeLG)},
			{"Extra Large", string(TextSizeXL)},
			{"2X Large", string(TextSize2XL)},
		}},
		{Key: "weight", Label: "Weight", Options: []Option{
			{"Normal", string(TextWeightNormal)},
			{"Medium", string(TextWeightMedium)},
			{"Semibold", string(TextWeightSemibold)},
			{"Bold", string(TextWeightBold)},
		}},
	}
}

func (f *fieldsVisitor) VisitInput(Instance, *InputProps) {
	f.fields = []Field{
		{Key: "placeholder", Label: "Placeholder"},
		{Key: "type", Label: "Input Type", Options: []Option{
			{"Text", string(InputTypeText)},
			{"Email", string(InputTypeEmail)},
			{"Password", string(InputTypePassword)},
			{"Number", string(InputTypeNumber)},
			{"Phone", string(InputTypeTel)},
			{"URL", string(InputTypeURL)},
		}},
	}
}

func (f *fieldsVisitor) VisitCard(Instance, *CardProps) {
	f.fields = []Field{
		{Key: "title", Label: "Card Title"},
		{Key: "description", Label: "Description"},
	}
}

func (f *fieldsVisitor) VisitImage(Instance, *ImageProps) {
	f.fields = []Field{
		{Key: "src", Label: "Image URL"},
		{Key: "alt", Label: "Alt Text"},
	}
}

func (f *fieldsVisitor) VisitOther(Instance, *OtherProps) {
	f.fields = nil
}

// PaletteEntry is one item of the component library.
type PaletteEntry struct {
	Type Type
	Name string
}

// PaletteGroup is a titled section of the component library.
type PaletteGroup struct {
	Name    string
	Entries []PaletteEntry
}

// Palette returns the component library shown to the user. Only part of it is
// supported; the rest is placed as inert placeholders.
func Palette() []PaletteGroup {
	return []PaletteGroup{
		{Name: "Basic", Entries: []PaletteEntry{
			{TypeButton, "Button"},
			{TypeText, "Text"},
			{TypeInput, "Input"},
			{TypeImage, "Image"},
		}},
		{Name: "Layout", Entries: []PaletteEntry{
			{TypeCard, "Card"},
			{"container", "Container"},
			{"grid", "Grid"},
			{"flex", "Flex"},
		}},
		{Name: "Form", Entries: []PaletteEntry{
			{"checkbox", "Checkbox"},
			{"radio", "Radio"},
			{"select", "Select"},
			{"textarea", "Textarea"},
		}},
		{Name: "Data", Entries: []PaletteEntry{
			{"table", "Table"},
			{"chart", "Chart"},
			{"calendar", "Calendar"},
			{"list", "List"},
		}},
	}
}
