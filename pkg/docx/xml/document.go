package xml

import (
	"github.com/benjaminschreck/go-docxgen/pkg/docx/xmlbuilder"
)

// Document is the root of word/document.xml. Its children keep reading
// order exactly as inserted.
type Document struct {
	children []DocumentContent
	section  *SectionProperty
}

// NewDocument returns an empty document.
func NewDocument() Document {
	return Document{}
}

func (d Document) AddParagraph(p Paragraph) Document {
	d.children = appendTo[DocumentContent](d.children, p)
	return d
}

func (d Document) AddTable(t Table) Document {
	d.children = appendTo[DocumentContent](d.children, t)
	return d
}

// Section sets the section property rendered at the end of the body.
func (d Document) Section(s SectionProperty) Document {
	d.section = &s
	return d
}

// SectionProperty returns the section property and whether one is set.
func (d Document) SectionProperty() (SectionProperty, bool) {
	if d.section == nil {
		return SectionProperty{}, false
	}
	return *d.section, true
}

// Children returns a copy of the body content in reading order.
func (d Document) Children() []DocumentContent {
	return append([]DocumentContent(nil), d.children...)
}

// Build renders the complete document part including the XML declaration
// and root namespaces.
func (d Document) Build() []byte {
	b := xmlbuilder.New().
		Declaration(true).
		OpenRoot("w:document").
		Open("w:body")
	for _, c := range d.children {
		renderDocumentContent(b, c)
	}
	if d.section != nil {
		b.AddChild(*d.section)
	}
	return b.Close().Close().Build()
}
