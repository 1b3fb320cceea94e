package xml

import (
	"github.com/benjaminschreck/go-docxgen/pkg/docx/xmlbuilder"
)

// FieldKind is the instruction of a dynamic field.
type FieldKind string

const (
	// FieldPage is the current page number.
	FieldPage FieldKind = "PAGE"
	// FieldNumPages is the total page count.
	FieldNumPages FieldKind = "NUMPAGES"
)

// fieldPlaceholder is the cached value written for every field. Viewers
// recalculate the real value when the document is opened.
const fieldPlaceholder = "1"

// FieldCode is a dynamic field hosted in its own structured document tag,
// typically placed in a header or footer.
type FieldCode struct {
	kind      FieldKind
	frame     *FrameProperty
	paragraph *ParagraphProperty
}

func (FieldCode) isHeaderContent() {}

// NewFieldCode returns a field of the given kind with no positioning.
func NewFieldCode(kind FieldKind) FieldCode {
	return FieldCode{kind: kind}
}

// PageNum returns a current page number field.
func PageNum() FieldCode {
	return NewFieldCode(FieldPage)
}

// NumPages returns a total page count field.
func NumPages() FieldCode {
	return NewFieldCode(FieldNumPages)
}

// Kind reports which field this is.
func (f FieldCode) Kind() FieldKind {
	return f.kind
}

// withFrame merges patch into the frame property, creating it if unset.
func (f FieldCode) withFrame(patch FrameProperty) FieldCode {
	base := NewFrameProperty()
	if f.frame != nil {
		base = *f.frame
	}
	merged := base.Merge(patch)
	f.frame = &merged
	return f
}

// withParagraph merges patch into the paragraph property, creating it if
// unset.
func (f FieldCode) withParagraph(patch ParagraphProperty) FieldCode {
	base := NewParagraphProperty()
	if f.paragraph != nil {
		base = *f.paragraph
	}
	merged := base.Merge(patch)
	f.paragraph = &merged
	return f
}

func (f FieldCode) Wrap(v string) FieldCode    { return f.withFrame(NewFrameProperty().Wrap(v)) }
func (f FieldCode) VAnchor(v string) FieldCode { return f.withFrame(NewFrameProperty().VAnchor(v)) }
func (f FieldCode) HAnchor(v string) FieldCode { return f.withFrame(NewFrameProperty().HAnchor(v)) }
func (f FieldCode) HRule(v string) FieldCode   { return f.withFrame(NewFrameProperty().HRule(v)) }
func (f FieldCode) XAlign(v string) FieldCode  { return f.withFrame(NewFrameProperty().XAlign(v)) }
func (f FieldCode) YAlign(v string) FieldCode  { return f.withFrame(NewFrameProperty().YAlign(v)) }
func (f FieldCode) HSpace(v int) FieldCode     { return f.withFrame(NewFrameProperty().HSpace(v)) }
func (f FieldCode) VSpace(v int) FieldCode     { return f.withFrame(NewFrameProperty().VSpace(v)) }
func (f FieldCode) X(v int) FieldCode          { return f.withFrame(NewFrameProperty().X(v)) }
func (f FieldCode) Y(v int) FieldCode          { return f.withFrame(NewFrameProperty().Y(v)) }
func (f FieldCode) Width(v int) FieldCode      { return f.withFrame(NewFrameProperty().Width(v)) }
func (f FieldCode) Height(v int) FieldCode     { return f.withFrame(NewFrameProperty().Height(v)) }

// Align sets the alignment of the synthesized paragraph.
func (f FieldCode) Align(a AlignmentType) FieldCode {
	return f.withParagraph(NewParagraphProperty().Align(a))
}

// ReplaceFrame sets the whole frame property.
func (f FieldCode) ReplaceFrame(fp FrameProperty) FieldCode {
	f.frame = &fp
	return f
}

// ReplaceParagraphProperty sets the whole paragraph property.
func (f FieldCode) ReplaceParagraphProperty(pp ParagraphProperty) FieldCode {
	f.paragraph = &pp
	return f
}

// synthesize builds the paragraph hosting the field. Its single run is
// always begin, instruction, separate, placeholder text, end.
func (f FieldCode) synthesize() Paragraph {
	p := NewParagraph().AddRun(NewRun().
		AddFieldChar(FieldCharBegin, false).
		AddInstrText(f.kind).
		AddFieldChar(FieldCharSeparate, false).
		AddText(fieldPlaceholder).
		AddFieldChar(FieldCharEnd, false))

	if f.paragraph != nil {
		p = p.ReplaceProperty(*f.paragraph)
	}
	if f.frame != nil {
		p = p.ReplaceProperty(p.Property().Frame(*f.frame))
	}
	return p
}

// Build renders the field as w:sdt wrapping one paragraph.
func (f FieldCode) Build() []byte {
	return xmlbuilder.New().
		Open("w:sdt").
		AddChild(NewStructuredDataTagProperty()).
		Open("w:sdtContent").
		AddChild(f.synthesize()).
		Close().
		Close().
		Build()
}

// StructuredDataTagProperty is the w:sdtPr of a structured document tag.
type StructuredDataTagProperty struct {
	runProperty RunProperty
	alias       *string
}

// NewStructuredDataTagProperty returns an empty tag property.
func NewStructuredDataTagProperty() StructuredDataTagProperty {
	return StructuredDataTagProperty{}
}

// Alias sets the friendly name shown by editors.
func (s StructuredDataTagProperty) Alias(name string) StructuredDataTagProperty {
	s.alias = &name
	return s
}

// Build renders w:sdtPr.
func (s StructuredDataTagProperty) Build() []byte {
	b := xmlbuilder.New().Open("w:sdtPr").AddChild(s.runProperty)
	valLeaf(b, "w:alias", s.alias)
	return b.Close().Build()
}
