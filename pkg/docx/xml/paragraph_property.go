package xml

import (
	"github.com/benjaminschreck/go-docxgen/pkg/docx/xmlbuilder"
)

// ParagraphProperty holds paragraph formatting (w:pPr). Every field is
// optional. The element and its w:rPr are always rendered.
type ParagraphProperty struct {
	style           *string
	keepNext        *bool
	keepLines       *bool
	pageBreakBefore *bool
	frame           *FrameProperty
	spacingBefore   *int
	spacingAfter    *int
	spacingLine     *int
	lineRule        *string
	indentLeft      *int
	indentRight     *int
	firstLine       *int
	hanging         *int
	alignment       *AlignmentType
	runProperty     RunProperty
}

// NewParagraphProperty returns a paragraph property with no fields set.
func NewParagraphProperty() ParagraphProperty {
	return ParagraphProperty{}
}

// Merge overlays the fields set on o onto p. The frame and run
// properties merge field by field as well. A first-line indent or hanging
// indent set on o replaces whichever of the two p carries.
func (p ParagraphProperty) Merge(o ParagraphProperty) ParagraphProperty {
	overlay(&p.style, o.style)
	overlay(&p.keepNext, o.keepNext)
	overlay(&p.keepLines, o.keepLines)
	overlay(&p.pageBreakBefore, o.pageBreakBefore)
	if o.frame != nil {
		merged := *o.frame
		if p.frame != nil {
			merged = p.frame.Merge(*o.frame)
		}
		p.frame = &merged
	}
	overlay(&p.spacingBefore, o.spacingBefore)
	overlay(&p.spacingAfter, o.spacingAfter)
	overlay(&p.spacingLine, o.spacingLine)
	overlay(&p.lineRule, o.lineRule)
	overlay(&p.indentLeft, o.indentLeft)
	overlay(&p.indentRight, o.indentRight)
	if o.firstLine != nil || o.hanging != nil {
		p.firstLine, p.hanging = o.firstLine, o.hanging
	}
	overlay(&p.alignment, o.alignment)
	p.runProperty = p.runProperty.Merge(o.runProperty)
	return p
}

// Style references a paragraph style by id.
func (p ParagraphProperty) Style(id string) ParagraphProperty {
	return p.Merge(ParagraphProperty{style: &id})
}

func (p ParagraphProperty) KeepNext(on bool) ParagraphProperty {
	return p.Merge(ParagraphProperty{keepNext: &on})
}

func (p ParagraphProperty) KeepLines(on bool) ParagraphProperty {
	return p.Merge(ParagraphProperty{keepLines: &on})
}

func (p ParagraphProperty) PageBreakBefore(on bool) ParagraphProperty {
	return p.Merge(ParagraphProperty{pageBreakBefore: &on})
}

// Frame sets the frame property. The given frame replaces any frame set
// earlier; use FrameProperty.Merge to combine frames.
func (p ParagraphProperty) Frame(f FrameProperty) ParagraphProperty {
	p.frame = &f
	return p
}

// FrameProperty returns the frame and whether one is set.
func (p ParagraphProperty) FrameProperty() (FrameProperty, bool) {
	if p.frame == nil {
		return FrameProperty{}, false
	}
	return *p.frame, true
}

// SpacingBefore sets the space above the paragraph in twips.
func (p ParagraphProperty) SpacingBefore(twips int) ParagraphProperty {
	return p.Merge(ParagraphProperty{spacingBefore: &twips})
}

// SpacingAfter sets the space below the paragraph in twips.
func (p ParagraphProperty) SpacingAfter(twips int) ParagraphProperty {
	return p.Merge(ParagraphProperty{spacingAfter: &twips})
}

// LineSpacing sets the line spacing and its rule (auto, exact, atLeast).
func (p ParagraphProperty) LineSpacing(line int, rule string) ParagraphProperty {
	return p.Merge(ParagraphProperty{spacingLine: &line, lineRule: &rule})
}

func (p ParagraphProperty) IndentLeft(twips int) ParagraphProperty {
	return p.Merge(ParagraphProperty{indentLeft: &twips})
}

func (p ParagraphProperty) IndentRight(twips int) ParagraphProperty {
	return p.Merge(ParagraphProperty{indentRight: &twips})
}

// FirstLine indents the first line. It is mutually exclusive with
// Hanging in the file format; setting one clears the other.
func (p ParagraphProperty) FirstLine(twips int) ParagraphProperty {
	return p.Merge(ParagraphProperty{firstLine: &twips})
}

// Hanging outdents the first line. Setting it clears FirstLine.
func (p ParagraphProperty) Hanging(twips int) ParagraphProperty {
	return p.Merge(ParagraphProperty{hanging: &twips})
}

func (p ParagraphProperty) Align(a AlignmentType) ParagraphProperty {
	return p.Merge(ParagraphProperty{alignment: &a})
}

// RunProperty returns the paragraph mark formatting.
func (p ParagraphProperty) RunProperty() RunProperty {
	return p.runProperty
}

// ReplaceRunProperty swaps the paragraph mark formatting.
func (p ParagraphProperty) ReplaceRunProperty(r RunProperty) ParagraphProperty {
	p.runProperty = r
	return p
}

// Build renders w:pPr. Children follow the schema order of CT_PPr with
// w:rPr last.
func (p ParagraphProperty) Build() []byte {
	b := xmlbuilder.New().Open("w:pPr")
	valLeaf(b, "w:pStyle", p.style)
	onOffLeaf(b, "w:keepNext", p.keepNext)
	onOffLeaf(b, "w:keepLines", p.keepLines)
	onOffLeaf(b, "w:pageBreakBefore", p.pageBreakBefore)
	if p.frame != nil {
		b.AddChild(*p.frame)
	}
	if p.spacingBefore != nil || p.spacingAfter != nil || p.spacingLine != nil || p.lineRule != nil {
		attrs := make([]xmlbuilder.Attr, 0, 4)
		attrs = intAttr(attrs, "w:before", p.spacingBefore)
		attrs = intAttr(attrs, "w:after", p.spacingAfter)
		attrs = intAttr(attrs, "w:line", p.spacingLine)
		attrs = strAttr(attrs, "w:lineRule", p.lineRule)
		b.Leaf("w:spacing", attrs...)
	}
	if p.indentLeft != nil || p.indentRight != nil || p.firstLine != nil || p.hanging != nil {
		attrs := make([]xmlbuilder.Attr, 0, 4)
		attrs = intAttr(attrs, "w:left", p.indentLeft)
		attrs = intAttr(attrs, "w:right", p.indentRight)
		attrs = intAttr(attrs, "w:firstLine", p.firstLine)
		attrs = intAttr(attrs, "w:hanging", p.hanging)
		b.Leaf("w:ind", attrs...)
	}
	if p.alignment != nil {
		b.Leaf("w:jc", xmlbuilder.Attr{Name: "w:val", Value: string(*p.alignment)})
	}
	return b.AddChild(p.runProperty).Close().Build()
}
