package xml

import (
	"testing"
)

const helloParagraph = `<w:p>` + emptyParagraphProperty +
	`<w:r><w:rPr></w:rPr><w:t xml:space="preserve">Hello</w:t></w:r></w:p>`

func hello() Paragraph {
	return NewParagraph().AddRun(NewRun().AddText("Hello"))
}

func TestDocumentBuild(t *testing.T) {
	tests := []struct {
		name string
		doc  Document
		want string
	}{
		{
			name: "empty",
			doc:  NewDocument(),
			want: testDeclaration + `<w:document` + testRootAttrs + `><w:body></w:body></w:document>`,
		},
		{
			name: "one paragraph",
			doc:  NewDocument().AddParagraph(hello()),
			want: testDeclaration + `<w:document` + testRootAttrs + `><w:body>` + helloParagraph + `</w:body></w:document>`,
		},
		{
			name: "reading order with section last",
			doc: NewDocument().
				Section(NewSectionProperty().TitlePage(true)).
				AddTable(NewTable()).
				AddParagraph(hello()),
			want: testDeclaration + `<w:document` + testRootAttrs + `><w:body>` +
				`<w:tbl><w:tblPr></w:tblPr><w:tblGrid></w:tblGrid></w:tbl>` + helloParagraph +
				`<w:sectPr><w:titlePg/></w:sectPr></w:body></w:document>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.doc.Build()
			assertMarkup(t, tt.want, got)
			checkBalanced(t, got)
		})
	}
}

func TestDocumentAccessors(t *testing.T) {
	doc := NewDocument()
	if _, ok := doc.SectionProperty(); ok {
		t.Error("SectionProperty() on new document reported a section")
	}

	withSection := doc.Section(DefaultSectionProperty()).AddParagraph(hello())
	if _, ok := withSection.SectionProperty(); !ok {
		t.Error("SectionProperty() did not report the section")
	}
	if got := len(withSection.Children()); got != 1 {
		t.Errorf("len(Children()) = %d, want 1", got)
	}
	if got := len(doc.Children()); got != 0 {
		t.Errorf("receiver gained children: len(Children()) = %d", got)
	}
}

func TestHeaderBuild(t *testing.T) {
	field := PageNum().Wrap("none").VAnchor("text").HAnchor("margin").XAlign("right").Y(1)
	header := NewHeader().AddFieldCode(field).AddParagraph(hello())

	got := header.Build()
	want := testDeclaration + `<w:hdr` + testRootAttrs + `>` +
		fieldMarkup(`<w:pPr><w:framePr w:wrap="none" w:vAnchor="text" w:hAnchor="margin" w:xAlign="right" w:y="1"/><w:rPr></w:rPr></w:pPr>`, "PAGE") +
		helloParagraph + `</w:hdr>`
	assertMarkup(t, want, got)
	checkBalanced(t, got)

	if got := len(header.Children()); got != 2 {
		t.Errorf("len(Children()) = %d, want 2", got)
	}
}

func TestFooterBuild(t *testing.T) {
	footer := NewFooter().
		AddParagraph(hello()).
		AddTable(NewTable()).
		AddFieldCode(NumPages().Align(AlignCenter))

	got := footer.Build()
	want := testDeclaration + `<w:ftr` + testRootAttrs + `>` + helloParagraph +
		`<w:tbl><w:tblPr></w:tblPr><w:tblGrid></w:tblGrid></w:tbl>` +
		fieldMarkup(`<w:pPr><w:jc w:val="center"/><w:rPr></w:rPr></w:pPr>`, "NUMPAGES") +
		`</w:ftr>`
	assertMarkup(t, want, got)
	checkBalanced(t, got)
}

func TestEmptyHeaderAndFooter(t *testing.T) {
	assertMarkup(t, testDeclaration+`<w:hdr`+testRootAttrs+`></w:hdr>`, NewHeader().Build())
	assertMarkup(t, testDeclaration+`<w:ftr`+testRootAttrs+`></w:ftr>`, NewFooter().Build())
}

func TestSectionPropertyBuild(t *testing.T) {
	tests := []struct {
		name string
		sect SectionProperty
		want string
	}{
		{
			name: "empty",
			sect: NewSectionProperty(),
			want: `<w:sectPr></w:sectPr>`,
		},
		{
			name: "default with references",
			sect: DefaultSectionProperty().
				FooterReference(HeaderFooterDefault, "rIdFooter1").
				HeaderReference(HeaderFooterDefault, "rIdHeader1"),
			want: `<w:sectPr><w:headerReference w:type="default" r:id="rIdHeader1"/>` +
				`<w:footerReference w:type="default" r:id="rIdFooter1"/>` +
				`<w:pgSz w:w="11906" w:h="16838"/>` +
				`<w:pgMar w:top="1985" w:right="1701" w:bottom="1701" w:left="1701" w:header="851" w:footer="992" w:gutter="0"/>` +
				`</w:sectPr>`,
		},
		{
			name: "landscape first page",
			sect: NewSectionProperty().PageSize(16838, 11906).TitlePage(true),
			want: `<w:sectPr><w:pgSz w:w="16838" w:h="11906"/><w:titlePg/></w:sectPr>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertMarkup(t, tt.want, tt.sect.Build())
		})
	}
}

type strayContent struct{}

func (strayContent) Build() []byte      { return nil }
func (strayContent) isDocumentContent() {}

func TestUnknownDocumentContentPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Build() with unknown content did not panic")
		}
	}()
	doc := NewDocument()
	doc.children = append(doc.children, strayContent{})
	doc.Build()
}
