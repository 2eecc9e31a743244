package design

import (
	"encoding/json"
	"fmt"
	"maps"
	"math"
	"slices"
	"sort"
	"strings"
)

// Props is the per-variant property record of an instance. The interface is
// sealed; the concrete records are ButtonProps, TextProps, InputProps,
// CardProps, ImageProps and OtherProps.
type Props interface {
	// Kind is the component type the record describes.
	Kind() Type
	// Get returns the value under key, typed fields included.
	Get(key string) (any, bool)
	// Set stores value under key. Values for typed fields are stringified;
	// other keys land in the extras map in JSON-normalized form. Keys and
	// strings are stored as valid UTF-8.
	Set(key string, value any)
	// Keys lists every present key: typed fields in declaration order,
	// then extras sorted.
	Keys() []string
	Clone() Props

	accept(inst Instance, v Visitor)
	record() *propRecord
}

// Enumerations used by the typed records. They are advisory: the records
// accept any string, matching what the property editors can produce.
type (
	ButtonVariant string
	ButtonSize    string
	TextSize      string
	TextWeight    string
	InputType     string
)

const (
	ButtonVariantDefault     ButtonVariant = "default"
	ButtonVariantDestructive ButtonVariant = "destructive"
	ButtonVariantOutline     ButtonVariant = "outline"
	ButtonVariantSecondary   ButtonVariant = "secondary"
	ButtonVariantGhost       ButtonVariant = "ghost"
	ButtonVariantLink        ButtonVariant = "link"
)

const (
	ButtonSizeSmall   ButtonSize = "sm"
	ButtonSizeDefault ButtonSize = "default"
	ButtonSizeLarge   ButtonSize = "lg"
)

const (
	TextSizeXS   TextSize = "xs"
	TextSizeSM   TextSize = "sm"
	TextSizeBase TextSize = "base"
	TextSizeLG   TextSize = "lg"
	TextSizeXL   TextSize = "xl"
	TextSize2XL  TextSize = "2xl"
)

const (
	TextWeightNormal   TextWeight = "normal"
	TextWeightMedium   TextWeight = "medium"
	TextWeightSemibold TextWeight = "semibold"
	TextWeightBold     TextWeight = "bold"
)

const (
	InputTypeText     InputType = "text"
	InputTypeEmail    InputType = "email"
	InputTypePassword InputType = "password"
	InputTypeNumber   InputType = "number"
	InputTypeTel      InputType = "tel"
	InputTypeURL      InputType = "url"
)

// ButtonProps configures a button.
type ButtonProps struct {
	Text    string
	Variant ButtonVariant
	Size    ButtonSize
	Extra   map[string]any
}

// TextProps configures a paragraph.
type TextProps struct {
	Content string
	Size    TextSize
	Weight  TextWeight
	Extra   map[string]any
}

// InputProps configures a form input. InputType is stored under the "type" key.
type InputProps struct {
	Placeholder string
	InputType   InputType
	Extra       map[string]any
}

// CardProps configures a card.
type CardProps struct {
	Title       string
	Description string
	Extra       map[string]any
}

// ImageProps configures an image.
type ImageProps struct {
	Src   string
	Alt   string
	Extra map[string]any
}

// OtherProps is the record of any type without registry support. Every key
// lives in Extra.
type OtherProps struct {
	Name  Type
	Extra map[string]any
}

// NewProps returns the empty record for t. Unknown types get OtherProps.
func NewProps(t Type) Props {
	switch t {
	case TypeButton:
		return &ButtonProps{}
	case TypeText:
		return &TextProps{}
	case TypeInput:
		return &InputProps{}
	case TypeCard:
		return &CardProps{}
	case TypeImage:
		return &ImageProps{}
	default:
		return &OtherProps{Name: t}
	}
}

// propRecord is the generic view of a typed record: the addresses of its
// string fields and its extras map.
type propRecord struct {
	slots []slot
	extra *map[string]any
}

type slot struct {
	key string
	ptr *string
}

func (r *propRecord) get(key string) (any, bool) {
	key = validUTF8(key)
	for _, s := range r.slots {
		if s.key == key {
			return *s.ptr, true
		}
	}
	v, ok := (*r.extra)[key]
	return v, ok
}

func (r *propRecord) set(key string, value any) {
	key = validUTF8(key)
	for _, s := range r.slots {
		if s.key == key {
			*s.ptr = stringify(value)
			return
		}
	}
	if *r.extra == nil {
		*r.extra = make(map[string]any)
	}
	(*r.extra)[key] = normalizeValue(value)
}

func (r *propRecord) keys() []string {
	out := make([]string, 0, len(r.slots)+len(*r.extra))
	for _, s := range r.slots {
		out = append(out, s.key)
	}
	extra := slices.Collect(maps.Keys(*r.extra))
	sort.Strings(extra)
	return append(out, extra...)
}

// stringify renders a value the way the property editors would display it.
func stringify(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return validUTF8(x)
	default:
		return validUTF8(fmt.Sprint(x))
	}
}

// validUTF8 replaces invalid byte sequences with U+FFFD, which is what the
// JSON and YAML encoders would write for them.
func validUTF8(s string) string {
	return strings.ToValidUTF8(s, "\uFFFD")
}

// normalizeValue round-trips v through JSON so extras compare equal after an
// encode/decode cycle. Values JSON cannot represent, NaN and the infinities
// among them, are stringified.
func normalizeValue(v any) any {
	switch x := v.(type) {
	case nil, bool:
		return v
	case string:
		return validUTF8(x)
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return stringify(x)
		}
		return x
	}
	b, err := json.Marshal(v)
	if err != nil {
		return stringify(v)
	}
	var out any
	if err := json.Unmarshal(b, &out); err != nil {
		return stringify(v)
	}
	return out
}

func cloneExtra(m map[string]any) map[string]any {
	if len(m) == 0 {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch x := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(x))
		for k, e := range x {
			out[k] = cloneValue(e)
		}
		return out
	case []any:
		out := make([]any, len(x))
		for i, e := range x {
			out[i] = cloneValue(e)
		}
		return out
	default:
		return v
	}
}

func (p *ButtonProps) record() *propRecord {
	return &propRecord{
		slots: []slot{
			{"text", &p.Text},
			{"variant", (*string)(&p.Variant)},
			{"size", (*string)(&p.Size)},
		},
		extra: &p.Extra,
	}
}

func (p *ButtonProps) Kind() Type                      { return TypeButton }
func (p *ButtonProps) Get(key string) (any, bool)      { return p.record().get(key) }
func (p *ButtonProps) Set(key string, value any)       { p.record().set(key, value) }
func (p *ButtonProps) Keys() []string                  { return p.record().keys() }
func (p *ButtonProps) accept(inst Instance, v Visitor) { v.VisitButton(inst, p) }

func (p *ButtonProps) Clone() Props {
	out := *p
	out.Extra = cloneExtra(p.Extra)
	return &out
}

func (p *TextProps) record() *propRecord {
	return &propRecord{
		slots: []slot{
			{"content", &p.Content},
			{"size", (*string)(&p.Size)},
			{"weight", (*string)(&p.Weight)},
		},
		extra: &p.Extra,
	}
}

func (p *TextProps) Kind() Type                      { return TypeText }
func (p *TextProps) Get(key string) (any, bool)      { return p.record().get(key) }
func (p *TextProps) Set(key string, value any)       { p.record().set(key, value) }
func (p *TextProps) Keys() []string                  { return p.record().keys() }
func (p *TextProps) accept(inst Instance, v Visitor) { v.VisitText(inst, p) }

func (p *TextProps) Clone() Props {
	out := *p
	out.Extra = cloneExtra(p.Extra)
	return &out
}

func (p *InputProps) record() *propRecord {
	return &propRecord{
		slots: []slot{
			{"placeholder", &p.Placeholder},
			{"type", (*string)(&p.InputType)},
		},
		extra: &p.Extra,
	}
}

func (p *InputProps) Kind() Type                      { return TypeInput }
func (p *InputProps) Get(key string) (any, bool)      { return p.record().get(key) }
func (p *InputProps) Set(key string, value any)       { p.record().set(key, value) }
func (p *InputProps) Keys() []string                  { return p.record().keys() }
func (p *InputProps) accept(inst Instance, v Visitor) { v.VisitInput(inst, p) }

func (p *InputProps) Clone() Props {
	out := *p
	out.Extra = cloneExtra(p.Extra)
	return &out
}

func (p *CardProps) record() *propRecord {
	return &propRecord{
		slots: []slot{
			{"title", &p.Title},
			{"description", &p.Description},
		},
		extra: &p.Extra,
	}
}

func (p *CardProps) Kind() Type                      { return TypeCard }
func (p *CardProps) Get(key string) (any, bool)      { return p.record().get(key) }
func (p *CardProps) Set(key string, value any)       { p.record().set(key, value) }
func (p *CardProps) Keys() []string                  { return p.record().keys() }
func (p *CardProps) accept(inst Instance, v Visitor) { v.VisitCard(inst, p) }

func (p *CardProps) Clone() Props {
	out := *p
	out.Extra = cloneExtra(p.Extra)
	return &out
}

func (p *ImageProps) record() *propRecord {
	return &propRecord{
		slots: []slot{
			{"src", &p.Src},
			{"alt", &p.Alt},
		},
		extra: &p.Extra,
	}
}

func (p *ImageProps) Kind() Type                      { return TypeImage }
func (p *ImageProps) Get(key string) (any, bool)      { return p.record().get(key) }
func (p *ImageProps) Set(key string, value any)       { p.record().set(key, value) }
func (p *ImageProps) Keys() []string                  { return p.record().keys() }
func (p *ImageProps) accept(inst Instance, v Visitor) { v.VisitImage(inst, p) }

func (p *ImageProps) Clone() Props {
	out := *p
	out.Extra = cloneExtra(p.Extra)
	return &out
}

func (p *OtherProps) record() *propRecord {
	return &propRecord{extra: &p.Extra}
}

func (p *OtherProps) Kind() Type                      { return p.Name }
func (p *OtherProps) Get(key string) (any, bool)      { return p.record().get(key) }
func (p *OtherProps) Set(key string, value any)       { p.record().set(key, value) }
func (p *OtherProps) Keys() []string                  { return p.record().keys() }
func (p *OtherProps) accept(inst Instance, v Visitor) { v.VisitOther(inst, p) }

func (p *OtherProps) Clone() Props {
	out := *p
	out.Extra = cloneExtra(p.Extra)
	return &out
}

// PropsMap flattens a record into a plain mapping, in no particular order.
func PropsMap(p Props) map[string]any {
	out := make(map[string]any)
	if p == nil {
		return out
	}
	for _, k := range p.Keys() {
		v, _ := p.Get(k)
		out[k] = v
	}
	return out
}
