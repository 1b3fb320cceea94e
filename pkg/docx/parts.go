package docx

import (
	"github.com/benjaminschreck/go-docxgen/pkg/docx/xmlbuilder"
)

// Part names inside the container.
const (
	PartContentTypes      = "[Content_Types].xml"
	PartRootRels          = "_rels/.rels"
	PartDocument          = "word/document.xml"
	PartDocumentRels      = "word/_rels/document.xml.rels"
	PartHeader            = "word/header1.xml"
	PartFooter            = "word/footer1.xml"
	headerRelationshipID  = "rIdHeader1"
	footerRelationshipID  = "rIdFooter1"
	documentRelationship  = "rId1"
	contentTypesNamespace = "http://schemas.openxmlformats.org/package/2006/content-types"
	relsNamespace         = "http://schemas.openxmlformats.org/package/2006/relationships"
)

// Content types of the parts this package writes.
const (
	ContentTypeRelationships = "application/vnd.openxmlformats-package.relationships+xml"
	ContentTypeXML           = "application/xml"
	ContentTypeDocument      = "application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"
	ContentTypeHeader        = "application/vnd.openxmlformats-officedocument.wordprocessingml.header+xml"
	ContentTypeFooter        = "application/vnd.openxmlformats-officedocument.wordprocessingml.footer+xml"
)

// Relationship types.
const (
	RelTypeOfficeDocument = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument"
	RelTypeHeader         = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/header"
	RelTypeFooter         = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/footer"
)

// Relationship is one entry of a .rels part.
type Relationship struct {
	ID     string
	Type   string
	Target string
}

// Relationships renders a .rels part.
type Relationships []Relationship

func (r Relationships) Build() []byte {
	b := xmlbuilder.New().
		Declaration(true).
		Open("Relationships").
		Attr("xmlns", relsNamespace)
	for _, rel := range r {
		b.Leaf("Relationship",
			xmlbuilder.Attr{Name: "Id", Value: rel.ID},
			xmlbuilder.Attr{Name: "Type", Value: rel.Type},
			xmlbuilder.Attr{Name: "Target", Value: rel.Target},
		)
	}
	return b.Close().Build()
}

// contentTypes renders [Content_Types].xml: the rels and xml defaults plus
// one override per part name.
type contentTypes struct {
	overrides []override
}

type override struct {
	partName    string
	contentType string
}

func (c contentTypes) Build() []byte {
	b := xmlbuilder.New().
		Declaration(true).
		Open("Types").
		Attr("xmlns", contentTypesNamespace).
		Leaf("Default",
			xmlbuilder.Attr{Name: "Extension", Value: "rels"},
			xmlbuilder.Attr{Name: "ContentType", Value: ContentTypeRelationships},
		).
		Leaf("Default",
			xmlbuilder.Attr{Name: "Extension", Value: "xml"},
			xmlbuilder.Attr{Name: "ContentType", Value: ContentTypeXML},
		)
	for _, o := range c.overrides {
		b.Leaf("Override",
			xmlbuilder.Attr{Name: "PartName", Value: "/" + o.partName},
			xmlbuilder.Attr{Name: "ContentType", Value: o.contentType},
		)
	}
	return b.Close().Build()
}
