package docx

import (
	"archive/zip"
	"bytes"
	"io"
	"os"

	"github.com/benjaminschreck/go-docxgen/pkg/docx/xml"
)

// Docx assembles a document, its optional header and footer and the page
// setup into a WordprocessingML container. Like the element model it is a
// value: every method returns a modified copy.
type Docx struct {
	document xml.Document
	header   *xml.Header
	footer   *xml.Footer
	section  xml.SectionProperty
	config   *Config
}

// New returns an empty A4 document with default margins.
func New() Docx {
	return Docx{
		document: xml.NewDocument(),
		section:  xml.DefaultSectionProperty(),
	}
}

func (d Docx) AddParagraph(p xml.Paragraph) Docx {
	d.document = d.document.AddParagraph(p)
	return d
}

func (d Docx) AddTable(t xml.Table) Docx {
	d.document = d.document.AddTable(t)
	return d
}

// Header sets the default header.
func (d Docx) Header(h xml.Header) Docx {
	d.header = &h
	return d
}

// Footer sets the default footer.
func (d Docx) Footer(f xml.Footer) Docx {
	d.footer = &f
	return d
}

// PageSize sets the page width and height in twips.
func (d Docx) PageSize(w, h int) Docx {
	d.section = d.section.PageSize(w, h)
	return d
}

func (d Docx) PageMargin(m xml.PageMargin) Docx {
	d.section = d.section.PageMargin(m)
	return d
}

// WithConfig overrides the global configuration for this document.
func (d Docx) WithConfig(c *Config) Docx {
	d.config = c
	return d
}

// HeaderPart returns the header and whether one is set.
func (d Docx) HeaderPart() (xml.Header, bool) {
	if d.header == nil {
		return xml.Header{}, false
	}
	return *d.header, true
}

// FooterPart returns the footer and whether one is set.
func (d Docx) FooterPart() (xml.Footer, bool) {
	if d.footer == nil {
		return xml.Footer{}, false
	}
	return *d.footer, true
}

// Document returns the body with the section property wired to the header
// and footer relationships.
func (d Docx) Document() xml.Document {
	section := d.section
	if d.header != nil {
		section = section.HeaderReference(xml.HeaderFooterDefault, headerRelationshipID)
	}
	if d.footer != nil {
		section = section.FooterReference(xml.HeaderFooterDefault, footerRelationshipID)
	}
	return d.document.Section(section)
}

// Build renders every part of the container.
func (d Docx) Build() Package {
	config := d.config
	if config == nil {
		config = GetGlobalConfig()
	}

	types := contentTypes{overrides: []override{{PartDocument, ContentTypeDocument}}}
	var docRels Relationships
	if d.header != nil {
		types.overrides = append(types.overrides, override{PartHeader, ContentTypeHeader})
		docRels = append(docRels, Relationship{ID: headerRelationshipID, Type: RelTypeHeader, Target: "header1.xml"})
	}
	if d.footer != nil {
		types.overrides = append(types.overrides, override{PartFooter, ContentTypeFooter})
		docRels = append(docRels, Relationship{ID: footerRelationshipID, Type: RelTypeFooter, Target: "footer1.xml"})
	}
	rootRels := Relationships{{ID: documentRelationship, Type: RelTypeOfficeDocument, Target: PartDocument}}

	parts := []Part{
		{Name: PartContentTypes, ContentType: ContentTypeXML, Data: types.Build()},
		{Name: PartRootRels, ContentType: ContentTypeRelationships, Data: rootRels.Build()},
		{Name: PartDocument, ContentType: ContentTypeDocument, Data: d.Document().Build()},
		{Name: PartDocumentRels, ContentType: ContentTypeRelationships, Data: docRels.Build()},
	}
	if d.header != nil {
		parts = append(parts, Part{Name: PartHeader, ContentType: ContentTypeHeader, Data: d.header.Build()})
	}
	if d.footer != nil {
		parts = append(parts, Part{Name: PartFooter, ContentType: ContentTypeFooter, Data: d.footer.Build()})
	}

	return Package{parts: parts, compress: config.Compress}
}

// Save packs the document into a new file at path, replacing any existing
// file. A partially written file is removed on failure.
func (d Docx) Save(path string) error {
	pkg := d.Build()
	log := WithFields(Fields{"path": path, "parts": len(pkg.parts)})

	f, err := os.Create(path)
	if err != nil {
		return NewDocxError(KindDestination, "create", path, err)
	}

	if err := pkg.Pack(f); err != nil {
		f.Close()
		os.Remove(path)
		if de, ok := err.(*DocxError); ok {
			de.Path = path
		}
		log.WithError(err).Error("failed to save document")
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return NewDocxError(KindDestination, "close", path, err)
	}

	log.Info("saved document")
	return nil
}

// Part is one named entry of the container.
type Part struct {
	Name        string
	ContentType string
	Data        []byte
}

// Package is the rendered set of parts, ready to be zipped.
type Package struct {
	parts    []Part
	compress bool
}

// Parts returns the parts in container order.
func (p Package) Parts() []Part {
	return append([]Part(nil), p.parts...)
}

// Part returns the data of the named part.
func (p Package) Part(name string) ([]byte, bool) {
	for _, part := range p.parts {
		if part.Name == name {
			return part.Data, true
		}
	}
	return nil, false
}

// Pack writes the parts as a zip container to w.
func (p Package) Pack(w io.Writer) error {
	dest := &trackingWriter{w: w}
	zw := zip.NewWriter(dest)

	method := zip.Store
	if p.compress {
		method = zip.Deflate
	}

	for _, part := range p.parts {
		fw, err := zw.CreateHeader(&zip.FileHeader{Name: part.Name, Method: method})
		if err != nil {
			return p.packError(dest, "create "+part.Name, err)
		}
		if _, err := fw.Write(part.Data); err != nil {
			return p.packError(dest, "write "+part.Name, err)
		}
		WithFields(Fields{"part": part.Name, "bytes": len(part.Data)}).Debug("packed part")
	}

	if err := zw.Close(); err != nil {
		return p.packError(dest, "finish container", err)
	}
	return nil
}

// Bytes packs the container into memory.
func (p Package) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := p.Pack(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// packError attributes a failure to the destination when the underlying
// writer failed and to the container stream otherwise.
func (p Package) packError(dest *trackingWriter, operation string, err error) error {
	if dest.err != nil {
		return NewDocxError(KindDestination, operation, "", dest.err)
	}
	return NewDocxError(KindSerialization, operation, "", err)
}

// trackingWriter remembers the first error of the destination writer.
type trackingWriter struct {
	w   io.Writer
	err error
}

func (t *trackingWriter) Write(b []byte) (int, error) {
	n, err := t.w.Write(b)
	if err != nil && t.err == nil {
		t.err = err
	}
	return n, err
}
