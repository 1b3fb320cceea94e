package xml

import (
	"strings"

	"github.com/benjaminschreck/go-docxgen/pkg/docx/xmlbuilder"
)

// Paragraph is a block of runs sharing one ParagraphProperty.
type Paragraph struct {
	id       string
	runs     []Run
	property ParagraphProperty
}

func (Paragraph) isDocumentContent() {}
func (Paragraph) isHeaderContent()   {}

// NewParagraph returns an empty paragraph.
func NewParagraph() Paragraph {
	return Paragraph{}
}

// AddRun appends a run.
func (p Paragraph) AddRun(r Run) Paragraph {
	p.runs = appendTo(p.runs, r)
	return p
}

// ID sets the w14:paraId attribute. It should be an 8 digit hex value
// below 0x80000000.
func (p Paragraph) ID(id string) Paragraph {
	p.id = id
	return p
}

// Property returns the paragraph formatting.
func (p Paragraph) Property() ParagraphProperty {
	return p.property
}

// ReplaceProperty swaps the whole ParagraphProperty.
func (p Paragraph) ReplaceProperty(pp ParagraphProperty) Paragraph {
	p.property = pp
	return p
}

func (p Paragraph) Style(id string) Paragraph {
	p.property = p.property.Style(id)
	return p
}

func (p Paragraph) Align(a AlignmentType) Paragraph {
	p.property = p.property.Align(a)
	return p
}

func (p Paragraph) IndentLeft(twips int) Paragraph {
	p.property = p.property.IndentLeft(twips)
	return p
}

func (p Paragraph) IndentRight(twips int) Paragraph {
	p.property = p.property.IndentRight(twips)
	return p
}

func (p Paragraph) SpacingBefore(twips int) Paragraph {
	p.property = p.property.SpacingBefore(twips)
	return p
}

func (p Paragraph) SpacingAfter(twips int) Paragraph {
	p.property = p.property.SpacingAfter(twips)
	return p
}

func (p Paragraph) KeepNext() Paragraph {
	p.property = p.property.KeepNext(true)
	return p
}

func (p Paragraph) PageBreakBefore() Paragraph {
	p.property = p.property.PageBreakBefore(true)
	return p
}

// Frame positions the paragraph as a floating frame.
func (p Paragraph) Frame(f FrameProperty) Paragraph {
	p.property = p.property.Frame(f)
	return p
}

// Runs returns a copy of the runs in insertion order.
func (p Paragraph) Runs() []Run {
	return append([]Run(nil), p.runs...)
}

// Text returns the concatenated text of all runs.
func (p Paragraph) Text() string {
	var sb strings.Builder
	for _, r := range p.runs {
		sb.WriteString(r.Text())
	}
	return sb.String()
}

// Build renders w:p. The property element is always present.
func (p Paragraph) Build() []byte {
	b := xmlbuilder.New().Open("w:p")
	if p.id != "" {
		b.Attr("w14:paraId", p.id)
	}
	b.AddChild(p.property)
	for _, r := range p.runs {
		b.AddChild(r)
	}
	return b.Close().Build()
}
