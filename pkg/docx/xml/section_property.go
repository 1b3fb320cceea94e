package xml

import (
	"strconv"

	"github.com/benjaminschreck/go-docxgen/pkg/docx/xmlbuilder"
)

// HeaderFooterType selects which pages a header or footer applies to.
type HeaderFooterType string

const (
	HeaderFooterDefault HeaderFooterType = "default"
	HeaderFooterFirst   HeaderFooterType = "first"
	HeaderFooterEven    HeaderFooterType = "even"
)

// PageMargin holds the page margins in twips.
type PageMargin struct {
	Top    int
	Right  int
	Bottom int
	Left   int
	Header int
	Footer int
	Gutter int
}

// DefaultPageMargin is the margin set Word uses for new A4 documents.
func DefaultPageMargin() PageMargin {
	return PageMargin{Top: 1985, Right: 1701, Bottom: 1701, Left: 1701, Header: 851, Footer: 992}
}

type reference struct {
	typ HeaderFooterType
	id  string
}

// SectionProperty holds the page setup of the final section (w:sectPr).
type SectionProperty struct {
	header     *reference
	footer     *reference
	pageWidth  *int
	pageHeight *int
	margin     *PageMargin
	titlePage  *bool
}

// NewSectionProperty returns a section property with no fields set.
func NewSectionProperty() SectionProperty {
	return SectionProperty{}
}

// DefaultSectionProperty returns an A4 portrait page with default margins.
func DefaultSectionProperty() SectionProperty {
	return NewSectionProperty().PageSize(11906, 16838).PageMargin(DefaultPageMargin())
}

func (s SectionProperty) Merge(o SectionProperty) SectionProperty {
	overlay(&s.header, o.header)
	overlay(&s.footer, o.footer)
	overlay(&s.pageWidth, o.pageWidth)
	overlay(&s.pageHeight, o.pageHeight)
	overlay(&s.margin, o.margin)
	overlay(&s.titlePage, o.titlePage)
	return s
}

// HeaderReference points the section at a header part by relationship id.
func (s SectionProperty) HeaderReference(typ HeaderFooterType, relID string) SectionProperty {
	return s.Merge(SectionProperty{header: &reference{typ: typ, id: relID}})
}

// FooterReference points the section at a footer part by relationship id.
func (s SectionProperty) FooterReference(typ HeaderFooterType, relID string) SectionProperty {
	return s.Merge(SectionProperty{footer: &reference{typ: typ, id: relID}})
}

// PageSize sets the page width and height in twips.
func (s SectionProperty) PageSize(w, h int) SectionProperty {
	return s.Merge(SectionProperty{pageWidth: &w, pageHeight: &h})
}

func (s SectionProperty) PageMargin(m PageMargin) SectionProperty {
	return s.Merge(SectionProperty{margin: &m})
}

// TitlePage enables a distinct first page header and footer.
func (s SectionProperty) TitlePage(on bool) SectionProperty {
	return s.Merge(SectionProperty{titlePage: &on})
}

// Build renders w:sectPr following the schema order of CT_SectPr.
func (s SectionProperty) Build() []byte {
	b := xmlbuilder.New().Open("w:sectPr")
	if s.header != nil {
		b.Leaf("w:headerReference",
			xmlbuilder.Attr{Name: "w:type", Value: string(s.header.typ)},
			xmlbuilder.Attr{Name: "r:id", Value: s.header.id},
		)
	}
	if s.footer != nil {
		b.Leaf("w:footerReference",
			xmlbuilder.Attr{Name: "w:type", Value: string(s.footer.typ)},
			xmlbuilder.Attr{Name: "r:id", Value: s.footer.id},
		)
	}
	if s.pageWidth != nil || s.pageHeight != nil {
		attrs := make([]xmlbuilder.Attr, 0, 2)
		attrs = intAttr(attrs, "w:w", s.pageWidth)
		attrs = intAttr(attrs, "w:h", s.pageHeight)
		b.Leaf("w:pgSz", attrs...)
	}
	if m := s.margin; m != nil {
		b.Leaf("w:pgMar",
			xmlbuilder.Attr{Name: "w:top", Value: strconv.Itoa(m.Top)},
			xmlbuilder.Attr{Name: "w:right", Value: strconv.Itoa(m.Right)},
			xmlbuilder.Attr{Name: "w:bottom", Value: strconv.Itoa(m.Bottom)},
			xmlbuilder.Attr{Name: "w:left", Value: strconv.Itoa(m.Left)},
			xmlbuilder.Attr{Name: "w:header", Value: strconv.Itoa(m.Header)},
			xmlbuilder.Attr{Name: "w:footer", Value: strconv.Itoa(m.Footer)},
			xmlbuilder.Attr{Name: "w:gutter", Value: strconv.Itoa(m.Gutter)},
		)
	}
	onOffLeaf(b, "w:titlePg", s.titlePage)
	return b.Close().Build()
}
