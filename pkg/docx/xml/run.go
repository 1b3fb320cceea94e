package xml

import (
	"strings"

	"github.com/benjaminschreck/go-docxgen/pkg/docx/xmlbuilder"
)

// RunContent is anything that can appear inside a run after its
// properties: Text, Tab, Break, FieldChar or InstrText.
type RunContent interface {
	xmlbuilder.Renderable
	isRunContent()
}

// FieldCharType marks the position of a w:fldChar in a complex field.
type FieldCharType string

const (
	FieldCharBegin    FieldCharType = "begin"
	FieldCharSeparate FieldCharType = "separate"
	FieldCharEnd      FieldCharType = "end"
)

// BreakType is the w:type of a w:br. The zero value is a text wrapping
// line break.
type BreakType string

const (
	BreakLine   BreakType = ""
	BreakPage   BreakType = "page"
	BreakColumn BreakType = "column"
)

// Text is a span of literal text (w:t).
type Text struct {
	text          string
	preserveSpace bool
}

func (Text) isRunContent() {}

// Build renders w:t.
func (t Text) Build() []byte {
	return xmlbuilder.New().Text("w:t", t.text, t.preserveSpace).Build()
}

// Tab is a tab character (w:tab).
type Tab struct{}

func (Tab) isRunContent() {}

func (Tab) Build() []byte {
	return xmlbuilder.New().Leaf("w:tab").Build()
}

// Break is a line, page or column break (w:br).
type Break struct {
	typ BreakType
}

func (Break) isRunContent() {}

func (br Break) Build() []byte {
	if br.typ == BreakLine {
		return xmlbuilder.New().Leaf("w:br").Build()
	}
	return xmlbuilder.New().Leaf("w:br", xmlbuilder.Attr{Name: "w:type", Value: string(br.typ)}).Build()
}

// FieldChar delimits a complex field (w:fldChar).
type FieldChar struct {
	typ   FieldCharType
	dirty bool
}

func (FieldChar) isRunContent() {}

func (f FieldChar) Build() []byte {
	dirty := "false"
	if f.dirty {
		dirty = "true"
	}
	return xmlbuilder.New().Leaf("w:fldChar",
		xmlbuilder.Attr{Name: "w:fldCharType", Value: string(f.typ)},
		xmlbuilder.Attr{Name: "w:dirty", Value: dirty},
	).Build()
}

// InstrText carries the field instruction of a complex field (w:instrText).
type InstrText struct {
	kind FieldKind
}

func (InstrText) isRunContent() {}

func (i InstrText) Build() []byte {
	return xmlbuilder.New().Text("w:instrText", string(i.kind), false).Build()
}

// Run is a sequence of content sharing one RunProperty.
type Run struct {
	property RunProperty
	children []RunContent
}

// NewRun returns an empty run.
func NewRun() Run {
	return Run{}
}

// AddText appends a text span. Whitespace is always preserved.
func (r Run) AddText(text string) Run {
	r.children = appendTo[RunContent](r.children, Text{text: text, preserveSpace: true})
	return r
}

func (r Run) AddTab() Run {
	r.children = appendTo[RunContent](r.children, Tab{})
	return r
}

func (r Run) AddBreak(t BreakType) Run {
	r.children = appendTo[RunContent](r.children, Break{typ: t})
	return r
}

// AddFieldChar appends a field delimiter. dirty asks the viewer to
// recalculate the field on open.
func (r Run) AddFieldChar(t FieldCharType, dirty bool) Run {
	r.children = appendTo[RunContent](r.children, FieldChar{typ: t, dirty: dirty})
	return r
}

func (r Run) AddInstrText(kind FieldKind) Run {
	r.children = appendTo[RunContent](r.children, InstrText{kind: kind})
	return r
}

// Property returns the run's formatting.
func (r Run) Property() RunProperty {
	return r.property
}

// ReplaceProperty swaps the whole RunProperty.
func (r Run) ReplaceProperty(p RunProperty) Run {
	r.property = p
	return r
}

func (r Run) Style(id string) Run {
	r.property = r.property.Style(id)
	return r
}

func (r Run) Fonts(name string) Run {
	r.property = r.property.Fonts(name)
	return r
}

func (r Run) Bold() Run {
	r.property = r.property.Bold(true)
	return r
}

func (r Run) Italic() Run {
	r.property = r.property.Italic(true)
	return r
}

func (r Run) Caps() Run {
	r.property = r.property.Caps(true)
	return r
}

func (r Run) Strike() Run {
	r.property = r.property.Strike(true)
	return r
}

func (r Run) Color(hex string) Run {
	r.property = r.property.Color(hex)
	return r
}

func (r Run) Size(halfPoints int) Run {
	r.property = r.property.Size(halfPoints)
	return r
}

func (r Run) Highlight(c string) Run {
	r.property = r.property.Highlight(c)
	return r
}

func (r Run) Underline(style string) Run {
	r.property = r.property.Underline(style)
	return r
}

func (r Run) VertAlign(v string) Run {
	r.property = r.property.VertAlign(v)
	return r
}

// Children returns a copy of the run content in insertion order.
func (r Run) Children() []RunContent {
	return append([]RunContent(nil), r.children...)
}

// Text returns the literal text of the run. Tabs render as "\t", breaks as
// "\n", and field instructions are skipped.
func (r Run) Text() string {
	var sb strings.Builder
	for _, c := range r.children {
		switch v := c.(type) {
		case Text:
			sb.WriteString(v.text)
		case Tab:
			sb.WriteByte('\t')
		case Break:
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// Build renders w:r: properties first, then content in insertion order.
func (r Run) Build() []byte {
	b := xmlbuilder.New().Open("w:r").AddChild(r.property)
	for _, c := range r.children {
		b.AddChild(c)
	}
	return b.Close().Build()
}
