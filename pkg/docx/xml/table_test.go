package xml

import (
	"testing"
)

const emptyCellParagraph = `<w:p>` + emptyParagraphProperty + `</w:p>`

func TestTableBuild(t *testing.T) {
	tests := []struct {
		name  string
		table Table
		want  string
	}{
		{
			name:  "empty",
			table: NewTable(),
			want:  `<w:tbl><w:tblPr></w:tblPr><w:tblGrid></w:tblGrid></w:tbl>`,
		},
		{
			name: "grid rows and cells",
			table: NewTable(NewTableRow(
				NewTableCell().Width(2000, WidthDxa).AddParagraph(NewParagraph().AddRun(NewRun().AddText("A"))),
				NewTableCell(),
			)).
				Grid(2000, 3000).
				Style("TableGrid").
				Width(5000, WidthPct).
				Border(BorderTop, TableBorder{Style: "single", Size: 4}),
			want: `<w:tbl><w:tblPr><w:tblStyle w:val="TableGrid"/><w:tblW w:w="5000" w:type="pct"/>` +
				`<w:tblBorders><w:top w:val="single" w:sz="4" w:space="0" w:color="auto"/></w:tblBorders></w:tblPr>` +
				`<w:tblGrid><w:gridCol w:w="2000"/><w:gridCol w:w="3000"/></w:tblGrid>` +
				`<w:tr><w:trPr></w:trPr>` +
				`<w:tc><w:tcPr><w:tcW w:w="2000" w:type="dxa"/></w:tcPr>` +
				`<w:p>` + emptyParagraphProperty + `<w:r><w:rPr></w:rPr><w:t xml:space="preserve">A</w:t></w:r></w:p></w:tc>` +
				`<w:tc><w:tcPr></w:tcPr>` + emptyCellParagraph + `</w:tc>` +
				`</w:tr></w:tbl>`,
		},
		{
			name: "table property order",
			table: NewTable().
				Layout("fixed").
				Border(BorderInsideV, TableBorder{Style: "single", Size: 2, Color: "999999"}).
				Border(BorderBottom, TableBorder{Style: "double", Size: 6, Space: 1}).
				Indent(120).
				Align(AlignCenter),
			want: `<w:tbl><w:tblPr><w:jc w:val="center"/><w:tblInd w:w="120" w:type="dxa"/>` +
				`<w:tblBorders><w:bottom w:val="double" w:sz="6" w:space="1" w:color="auto"/>` +
				`<w:insideV w:val="single" w:sz="2" w:space="0" w:color="999999"/></w:tblBorders>` +
				`<w:tblLayout w:type="fixed"/></w:tblPr><w:tblGrid></w:tblGrid></w:tbl>`,
		},
		{
			name:  "nested table",
			table: NewTable(NewTableRow(NewTableCell().AddTable(NewTable(NewTableRow(NewTableCell()))))),
			want: `<w:tbl><w:tblPr></w:tblPr><w:tblGrid></w:tblGrid><w:tr><w:trPr></w:trPr><w:tc><w:tcPr></w:tcPr>` +
				`<w:tbl><w:tblPr></w:tblPr><w:tblGrid></w:tblGrid><w:tr><w:trPr></w:trPr><w:tc><w:tcPr></w:tcPr>` +
				emptyCellParagraph + `</w:tc></w:tr></w:tbl>` +
				`</w:tc></w:tr></w:tbl>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.table.Build()
			assertMarkup(t, tt.want, got)
			checkBalanced(t, got)
		})
	}
}

func TestTableBorderOutOfRange(t *testing.T) {
	top := TableBorder{Style: "single", Size: 4}
	base := NewTable().Border(BorderTop, top)
	want := string(base.Build())

	for _, pos := range []BorderPosition{-1, BorderInsideV + 1, 42} {
		got := base.Border(pos, TableBorder{Style: "double"})
		assertMarkup(t, want, got.Build())
	}
}

func TestTableRowProperty(t *testing.T) {
	row := NewTableRow().CantSplit().Height(400, "exact").Header()
	want := `<w:tr><w:trPr><w:cantSplit/><w:trHeight w:val="400" w:hRule="exact"/><w:tblHeader/></w:trPr></w:tr>`
	assertMarkup(t, want, row.Build())
}

func TestTableCellProperty(t *testing.T) {
	cell := NewTableCell().VAlign("center").Shading("D9D9D9").VMerge(VMergeRestart).GridSpan(2)
	want := `<w:tc><w:tcPr><w:gridSpan w:val="2"/><w:vMerge w:val="restart"/>` +
		`<w:shd w:val="clear" w:color="auto" w:fill="D9D9D9"/><w:vAlign w:val="center"/></w:tcPr>` +
		emptyCellParagraph + `</w:tc>`
	assertMarkup(t, want, cell.Build())

	cont := NewTableCell().VMerge(VMergeContinue)
	assertMarkup(t, `<w:tc><w:tcPr><w:vMerge w:val="continue"/></w:tcPr>`+emptyCellParagraph+`</w:tc>`, cont.Build())
}

func TestTableValueSemantics(t *testing.T) {
	base := NewTable(NewTableRow(NewTableCell()))
	grown := base.AddRow(NewTableRow(NewTableCell(), NewTableCell()))

	if got := len(base.Rows()); got != 1 {
		t.Errorf("len(base.Rows()) = %d, want 1", got)
	}
	if got := len(grown.Rows()); got != 2 {
		t.Errorf("len(grown.Rows()) = %d, want 2", got)
	}

	row := NewTableRow(NewTableCell())
	wider := row.AddCell(NewTableCell())
	if len(row.Cells()) != 1 || len(wider.Cells()) != 2 {
		t.Errorf("AddCell changed the receiver: %d and %d cells", len(row.Cells()), len(wider.Cells()))
	}
}
