package xml

import (
	"github.com/benjaminschreck/go-docxgen/pkg/docx/xmlbuilder"
)

// Header is the root of a header part (w:hdr).
type Header struct {
	children []HeaderContent
}

// NewHeader returns an empty header.
func NewHeader() Header {
	return Header{}
}

func (h Header) AddParagraph(p Paragraph) Header {
	h.children = appendTo[HeaderContent](h.children, p)
	return h
}

func (h Header) AddTable(t Table) Header {
	h.children = appendTo[HeaderContent](h.children, t)
	return h
}

// AddFieldCode appends a dynamic field such as PageNum or NumPages.
func (h Header) AddFieldCode(f FieldCode) Header {
	h.children = appendTo[HeaderContent](h.children, f)
	return h
}

// Children returns a copy of the header content in insertion order.
func (h Header) Children() []HeaderContent {
	return append([]HeaderContent(nil), h.children...)
}

func (h Header) Build() []byte {
	return buildHeaderFooter("w:hdr", h.children)
}

// Footer is the root of a footer part (w:ftr).
type Footer struct {
	children []HeaderContent
}

// NewFooter returns an empty footer.
func NewFooter() Footer {
	return Footer{}
}

func (f Footer) AddParagraph(p Paragraph) Footer {
	f.children = appendTo[HeaderContent](f.children, p)
	return f
}

func (f Footer) AddTable(t Table) Footer {
	f.children = appendTo[HeaderContent](f.children, t)
	return f
}

// AddFieldCode appends a dynamic field such as PageNum or NumPages.
func (f Footer) AddFieldCode(fc FieldCode) Footer {
	f.children = appendTo[HeaderContent](f.children, fc)
	return f
}

// Children returns a copy of the footer content in insertion order.
func (f Footer) Children() []HeaderContent {
	return append([]HeaderContent(nil), f.children...)
}

func (f Footer) Build() []byte {
	return buildHeaderFooter("w:ftr", f.children)
}

func buildHeaderFooter(root string, children []HeaderContent) []byte {
	b := xmlbuilder.New().Declaration(true).OpenRoot(root)
	for _, c := range children {
		renderHeaderContent(b, c)
	}
	return b.Close().Build()
}
