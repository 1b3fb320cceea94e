package xml

import (
	"strconv"

	"github.com/benjaminschreck/go-docxgen/pkg/docx/xmlbuilder"
)

// RunProperty holds character formatting (w:rPr). Every field is optional;
// the element itself is always rendered.
type RunProperty struct {
	style        *string
	font         *string
	eastAsiaFont *string
	bold         *bool
	italic       *bool
	caps         *bool
	strike       *bool
	color        *string
	spacing      *int
	size         *int
	highlight    *string
	underline    *string
	vertAlign    *string
}

// NewRunProperty returns a run property with no fields set.
func NewRunProperty() RunProperty {
	return RunProperty{}
}

// Merge overlays the fields set on o onto r.
func (r RunProperty) Merge(o RunProperty) RunProperty {
	overlay(&r.style, o.style)
	overlay(&r.font, o.font)
	overlay(&r.eastAsiaFont, o.eastAsiaFont)
	overlay(&r.bold, o.bold)
	overlay(&r.italic, o.italic)
	overlay(&r.caps, o.caps)
	overlay(&r.strike, o.strike)
	overlay(&r.color, o.color)
	overlay(&r.spacing, o.spacing)
	overlay(&r.size, o.size)
	overlay(&r.highlight, o.highlight)
	overlay(&r.underline, o.underline)
	overlay(&r.vertAlign, o.vertAlign)
	return r
}

// Style references a character style by id.
func (r RunProperty) Style(id string) RunProperty {
	return r.Merge(RunProperty{style: &id})
}

// Fonts sets the ascii, hAnsi and complex script font.
func (r RunProperty) Fonts(name string) RunProperty {
	return r.Merge(RunProperty{font: &name})
}

// EastAsiaFont sets the East Asian font. It shares w:rFonts with Fonts.
func (r RunProperty) EastAsiaFont(name string) RunProperty {
	return r.Merge(RunProperty{eastAsiaFont: &name})
}

func (r RunProperty) Bold(on bool) RunProperty {
	return r.Merge(RunProperty{bold: &on})
}

func (r RunProperty) Italic(on bool) RunProperty {
	return r.Merge(RunProperty{italic: &on})
}

func (r RunProperty) Caps(on bool) RunProperty {
	return r.Merge(RunProperty{caps: &on})
}

func (r RunProperty) Strike(on bool) RunProperty {
	return r.Merge(RunProperty{strike: &on})
}

// Color sets the text color as a hex RGB value such as "FF0000".
func (r RunProperty) Color(hex string) RunProperty {
	return r.Merge(RunProperty{color: &hex})
}

// Spacing sets character spacing in twips.
func (r RunProperty) Spacing(twips int) RunProperty {
	return r.Merge(RunProperty{spacing: &twips})
}

// Size sets the font size in half-points, for both w:sz and w:szCs.
func (r RunProperty) Size(halfPoints int) RunProperty {
	return r.Merge(RunProperty{size: &halfPoints})
}

func (r RunProperty) Highlight(color string) RunProperty {
	return r.Merge(RunProperty{highlight: &color})
}

// Underline sets the underline style (single, double, ...).
func (r RunProperty) Underline(style string) RunProperty {
	return r.Merge(RunProperty{underline: &style})
}

// VertAlign sets superscript/subscript (superscript, subscript, baseline).
func (r RunProperty) VertAlign(v string) RunProperty {
	return r.Merge(RunProperty{vertAlign: &v})
}

// Build renders w:rPr. Children follow the schema order of CT_RPr.
func (r RunProperty) Build() []byte {
	b := xmlbuilder.New().Open("w:rPr")
	valLeaf(b, "w:rStyle", r.style)
	if r.font != nil || r.eastAsiaFont != nil {
		attrs := make([]xmlbuilder.Attr, 0, 4)
		attrs = strAttr(attrs, "w:ascii", r.font)
		attrs = strAttr(attrs, "w:hAnsi", r.font)
		attrs = strAttr(attrs, "w:eastAsia", r.eastAsiaFont)
		attrs = strAttr(attrs, "w:cs", r.font)
		b.Leaf("w:rFonts", attrs...)
	}
	onOffLeaf(b, "w:b", r.bold)
	onOffLeaf(b, "w:bCs", r.bold)
	onOffLeaf(b, "w:i", r.italic)
	onOffLeaf(b, "w:iCs", r.italic)
	onOffLeaf(b, "w:caps", r.caps)
	onOffLeaf(b, "w:strike", r.strike)
	valLeaf(b, "w:color", r.color)
	if r.spacing != nil {
		b.Leaf("w:spacing", xmlbuilder.Attr{Name: "w:val", Value: strconv.Itoa(*r.spacing)})
	}
	if r.size != nil {
		size := strconv.Itoa(*r.size)
		b.Leaf("w:sz", xmlbuilder.Attr{Name: "w:val", Value: size})
		b.Leaf("w:szCs", xmlbuilder.Attr{Name: "w:val", Value: size})
	}
	valLeaf(b, "w:highlight", r.highlight)
	valLeaf(b, "w:u", r.underline)
	valLeaf(b, "w:vertAlign", r.vertAlign)
	return b.Close().Build()
}
