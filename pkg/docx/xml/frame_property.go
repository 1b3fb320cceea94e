package xml

import (
	"github.com/benjaminschreck/go-docxgen/pkg/docx/xmlbuilder"
)

// FrameProperty positions a paragraph as a floating frame (w:framePr).
// Every field is optional and only set fields are rendered.
type FrameProperty struct {
	wrap    *string
	vAnchor *string
	hAnchor *string
	hRule   *string
	xAlign  *string
	yAlign  *string
	hSpace  *int
	vSpace  *int
	x       *int
	y       *int
	w       *int
	h       *int
}

// NewFrameProperty returns a frame property with no fields set.
func NewFrameProperty() FrameProperty {
	return FrameProperty{}
}

// Merge overlays the fields set on o onto f. Fields o leaves unset keep
// their value from f.
func (f FrameProperty) Merge(o FrameProperty) FrameProperty {
	overlay(&f.wrap, o.wrap)
	overlay(&f.vAnchor, o.vAnchor)
	overlay(&f.hAnchor, o.hAnchor)
	overlay(&f.hRule, o.hRule)
	overlay(&f.xAlign, o.xAlign)
	overlay(&f.yAlign, o.yAlign)
	overlay(&f.hSpace, o.hSpace)
	overlay(&f.vSpace, o.vSpace)
	overlay(&f.x, o.x)
	overlay(&f.y, o.y)
	overlay(&f.w, o.w)
	overlay(&f.h, o.h)
	return f
}

// Wrap sets the text wrapping mode around the frame (around, none, notBeside, ...).
func (f FrameProperty) Wrap(v string) FrameProperty {
	return f.Merge(FrameProperty{wrap: &v})
}

// VAnchor sets the vertical anchor (text, margin, page).
func (f FrameProperty) VAnchor(v string) FrameProperty {
	return f.Merge(FrameProperty{vAnchor: &v})
}

// HAnchor sets the horizontal anchor (text, margin, page).
func (f FrameProperty) HAnchor(v string) FrameProperty {
	return f.Merge(FrameProperty{hAnchor: &v})
}

// HRule sets the height rule (auto, atLeast, exact).
func (f FrameProperty) HRule(v string) FrameProperty {
	return f.Merge(FrameProperty{hRule: &v})
}

func (f FrameProperty) XAlign(v string) FrameProperty {
	return f.Merge(FrameProperty{xAlign: &v})
}

func (f FrameProperty) YAlign(v string) FrameProperty {
	return f.Merge(FrameProperty{yAlign: &v})
}

func (f FrameProperty) HSpace(v int) FrameProperty {
	return f.Merge(FrameProperty{hSpace: &v})
}

func (f FrameProperty) VSpace(v int) FrameProperty {
	return f.Merge(FrameProperty{vSpace: &v})
}

func (f FrameProperty) X(v int) FrameProperty {
	return f.Merge(FrameProperty{x: &v})
}

func (f FrameProperty) Y(v int) FrameProperty {
	return f.Merge(FrameProperty{y: &v})
}

// Width sets the frame width in twips.
func (f FrameProperty) Width(v int) FrameProperty {
	return f.Merge(FrameProperty{w: &v})
}

// Height sets the frame height in twips.
func (f FrameProperty) Height(v int) FrameProperty {
	return f.Merge(FrameProperty{h: &v})
}

// Build renders w:framePr with one attribute per set field.
func (f FrameProperty) Build() []byte {
	attrs := make([]xmlbuilder.Attr, 0, 12)
	attrs = strAttr(attrs, "w:wrap", f.wrap)
	attrs = strAttr(attrs, "w:vAnchor", f.vAnchor)
	attrs = strAttr(attrs, "w:hAnchor", f.hAnchor)
	attrs = strAttr(attrs, "w:hRule", f.hRule)
	attrs = strAttr(attrs, "w:xAlign", f.xAlign)
	attrs = strAttr(attrs, "w:yAlign", f.yAlign)
	attrs = intAttr(attrs, "w:hSpace", f.hSpace)
	attrs = intAttr(attrs, "w:vSpace", f.vSpace)
	attrs = intAttr(attrs, "w:x", f.x)
	attrs = intAttr(attrs, "w:y", f.y)
	attrs = intAttr(attrs, "w:w", f.w)
	attrs = intAttr(attrs, "w:h", f.h)
	return xmlbuilder.New().Leaf("w:framePr", attrs...).Build()
}
