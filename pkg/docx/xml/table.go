package xml

import (
	"strconv"

	"github.com/benjaminschreck/go-docxgen/pkg/docx/xmlbuilder"
)

// WidthType is the unit of a table or cell width.
type WidthType string

const (
	WidthAuto WidthType = "auto"
	WidthDxa  WidthType = "dxa"
	WidthPct  WidthType = "pct"
	WidthNil  WidthType = "nil"
)

// BorderPosition selects one edge in w:tblBorders.
type BorderPosition int

const (
	BorderTop BorderPosition = iota
	BorderLeft
	BorderBottom
	BorderRight
	BorderInsideH
	BorderInsideV
	borderCount
)

var borderTags = [borderCount]string{"w:top", "w:left", "w:bottom", "w:right", "w:insideH", "w:insideV"}

// TableBorder describes one table edge.
type TableBorder struct {
	Style string // single, double, nil, ...
	Size  int    // eighths of a point
	Space int
	Color string // hex RGB or "auto"
}

func (t TableBorder) attrs() []xmlbuilder.Attr {
	color := t.Color
	if color == "" {
		color = "auto"
	}
	return []xmlbuilder.Attr{
		{Name: "w:val", Value: t.Style},
		{Name: "w:sz", Value: strconv.Itoa(t.Size)},
		{Name: "w:space", Value: strconv.Itoa(t.Space)},
		{Name: "w:color", Value: color},
	}
}

type tableWidth struct {
	w   int
	typ WidthType
}

func (w tableWidth) attrs() []xmlbuilder.Attr {
	return []xmlbuilder.Attr{
		{Name: "w:w", Value: strconv.Itoa(w.w)},
		{Name: "w:type", Value: string(w.typ)},
	}
}

// TableProperty holds table formatting (w:tblPr).
type TableProperty struct {
	style     *string
	width     *tableWidth
	alignment *AlignmentType
	indent    *int
	borders   [borderCount]*TableBorder
	layout    *string
}

// NewTableProperty returns a table property with no fields set.
func NewTableProperty() TableProperty {
	return TableProperty{}
}

// Merge overlays the fields set on o onto t. Borders merge per edge.
func (t TableProperty) Merge(o TableProperty) TableProperty {
	overlay(&t.style, o.style)
	overlay(&t.width, o.width)
	overlay(&t.alignment, o.alignment)
	overlay(&t.indent, o.indent)
	for i := range t.borders {
		overlay(&t.borders[i], o.borders[i])
	}
	overlay(&t.layout, o.layout)
	return t
}

func (t TableProperty) Style(id string) TableProperty {
	return t.Merge(TableProperty{style: &id})
}

func (t TableProperty) Width(w int, typ WidthType) TableProperty {
	return t.Merge(TableProperty{width: &tableWidth{w: w, typ: typ}})
}

func (t TableProperty) Align(a AlignmentType) TableProperty {
	return t.Merge(TableProperty{alignment: &a})
}

func (t TableProperty) Indent(twips int) TableProperty {
	return t.Merge(TableProperty{indent: &twips})
}

// Border sets one edge. Positions outside BorderTop..BorderInsideV are
// ignored.
func (t TableProperty) Border(pos BorderPosition, b TableBorder) TableProperty {
	if pos < BorderTop || pos >= borderCount {
		return t
	}
	var patch TableProperty
	patch.borders[pos] = &b
	return t.Merge(patch)
}

// Layout sets the layout algorithm (fixed or autofit).
func (t TableProperty) Layout(l string) TableProperty {
	return t.Merge(TableProperty{layout: &l})
}

// Build renders w:tblPr following the schema order of CT_TblPr.
func (t TableProperty) Build() []byte {
	b := xmlbuilder.New().Open("w:tblPr")
	valLeaf(b, "w:tblStyle", t.style)
	if t.width != nil {
		b.Leaf("w:tblW", t.width.attrs()...)
	}
	if t.alignment != nil {
		b.Leaf("w:jc", xmlbuilder.Attr{Name: "w:val", Value: string(*t.alignment)})
	}
	if t.indent != nil {
		b.Leaf("w:tblInd", tableWidth{w: *t.indent, typ: WidthDxa}.attrs()...)
	}
	if t.hasBorders() {
		b.Open("w:tblBorders")
		for i, border := range t.borders {
			if border != nil {
				b.Leaf(borderTags[i], border.attrs()...)
			}
		}
		b.Close()
	}
	if t.layout != nil {
		b.Leaf("w:tblLayout", xmlbuilder.Attr{Name: "w:type", Value: *t.layout})
	}
	return b.Close().Build()
}

func (t TableProperty) hasBorders() bool {
	for _, border := range t.borders {
		if border != nil {
			return true
		}
	}
	return false
}

// Table is a grid of rows and cells.
type Table struct {
	property TableProperty
	grid     []int
	rows     []TableRow
}

func (Table) isDocumentContent() {}
func (Table) isHeaderContent()   {}

// NewTable returns a table holding the given rows.
func NewTable(rows ...TableRow) Table {
	return Table{rows: append([]TableRow(nil), rows...)}
}

func (t Table) AddRow(r TableRow) Table {
	t.rows = appendTo(t.rows, r)
	return t
}

// Grid sets the column widths in twips.
func (t Table) Grid(widths ...int) Table {
	t.grid = append([]int(nil), widths...)
	return t
}

func (t Table) Property() TableProperty {
	return t.property
}

func (t Table) ReplaceProperty(p TableProperty) Table {
	t.property = p
	return t
}

func (t Table) Style(id string) Table {
	t.property = t.property.Style(id)
	return t
}

func (t Table) Width(w int, typ WidthType) Table {
	t.property = t.property.Width(w, typ)
	return t
}

func (t Table) Align(a AlignmentType) Table {
	t.property = t.property.Align(a)
	return t
}

func (t Table) Indent(twips int) Table {
	t.property = t.property.Indent(twips)
	return t
}

func (t Table) Border(pos BorderPosition, b TableBorder) Table {
	t.property = t.property.Border(pos, b)
	return t
}

func (t Table) Layout(l string) Table {
	t.property = t.property.Layout(l)
	return t
}

// Rows returns a copy of the rows.
func (t Table) Rows() []TableRow {
	return append([]TableRow(nil), t.rows...)
}

// Build renders w:tbl: properties, grid, then rows.
func (t Table) Build() []byte {
	b := xmlbuilder.New().Open("w:tbl").AddChild(t.property).Open("w:tblGrid")
	for _, w := range t.grid {
		b.Leaf("w:gridCol", xmlbuilder.Attr{Name: "w:w", Value: strconv.Itoa(w)})
	}
	b.Close()
	for _, r := range t.rows {
		b.AddChild(r)
	}
	return b.Close().Build()
}

// TableRowProperty holds row formatting (w:trPr).
type TableRowProperty struct {
	cantSplit  *bool
	height     *int
	heightRule *string
	header     *bool
}

func NewTableRowProperty() TableRowProperty {
	return TableRowProperty{}
}

func (p TableRowProperty) Merge(o TableRowProperty) TableRowProperty {
	overlay(&p.cantSplit, o.cantSplit)
	overlay(&p.height, o.height)
	overlay(&p.heightRule, o.heightRule)
	overlay(&p.header, o.header)
	return p
}

func (p TableRowProperty) CantSplit(on bool) TableRowProperty {
	return p.Merge(TableRowProperty{cantSplit: &on})
}

// Height sets the row height in twips and its rule (auto, atLeast, exact).
func (p TableRowProperty) Height(twips int, rule string) TableRowProperty {
	return p.Merge(TableRowProperty{height: &twips, heightRule: &rule})
}

// Header repeats the row at the top of every page.
func (p TableRowProperty) Header(on bool) TableRowProperty {
	return p.Merge(TableRowProperty{header: &on})
}

// Build renders w:trPr following the schema order of CT_TrPr.
func (p TableRowProperty) Build() []byte {
	b := xmlbuilder.New().Open("w:trPr")
	onOffLeaf(b, "w:cantSplit", p.cantSplit)
	if p.height != nil {
		attrs := make([]xmlbuilder.Attr, 0, 2)
		attrs = intAttr(attrs, "w:val", p.height)
		attrs = strAttr(attrs, "w:hRule", p.heightRule)
		b.Leaf("w:trHeight", attrs...)
	}
	onOffLeaf(b, "w:tblHeader", p.header)
	return b.Close().Build()
}

// TableRow is one w:tr.
type TableRow struct {
	property TableRowProperty
	cells    []TableCell
}

// NewTableRow returns a row holding the given cells.
func NewTableRow(cells ...TableCell) TableRow {
	return TableRow{cells: append([]TableCell(nil), cells...)}
}

func (r TableRow) AddCell(c TableCell) TableRow {
	r.cells = appendTo(r.cells, c)
	return r
}

func (r TableRow) CantSplit() TableRow {
	r.property = r.property.CantSplit(true)
	return r
}

func (r TableRow) Height(twips int, rule string) TableRow {
	r.property = r.property.Height(twips, rule)
	return r
}

func (r TableRow) Header() TableRow {
	r.property = r.property.Header(true)
	return r
}

// Cells returns a copy of the cells.
func (r TableRow) Cells() []TableCell {
	return append([]TableCell(nil), r.cells...)
}

func (r TableRow) Build() []byte {
	b := xmlbuilder.New().Open("w:tr").AddChild(r.property)
	for _, c := range r.cells {
		b.AddChild(c)
	}
	return b.Close().Build()
}

// VMergeType continues or restarts a vertically merged cell.
type VMergeType string

const (
	VMergeRestart  VMergeType = "restart"
	VMergeContinue VMergeType = "continue"
)

// TableCellProperty holds cell formatting (w:tcPr).
type TableCellProperty struct {
	width    *tableWidth
	gridSpan *int
	vMerge   *VMergeType
	shading  *string
	vAlign   *string
}

func NewTableCellProperty() TableCellProperty {
	return TableCellProperty{}
}

func (p TableCellProperty) Merge(o TableCellProperty) TableCellProperty {
	overlay(&p.width, o.width)
	overlay(&p.gridSpan, o.gridSpan)
	overlay(&p.vMerge, o.vMerge)
	overlay(&p.shading, o.shading)
	overlay(&p.vAlign, o.vAlign)
	return p
}

func (p TableCellProperty) Width(w int, typ WidthType) TableCellProperty {
	return p.Merge(TableCellProperty{width: &tableWidth{w: w, typ: typ}})
}

// GridSpan merges the cell horizontally across n grid columns.
func (p TableCellProperty) GridSpan(n int) TableCellProperty {
	return p.Merge(TableCellProperty{gridSpan: &n})
}

func (p TableCellProperty) VMerge(v VMergeType) TableCellProperty {
	return p.Merge(TableCellProperty{vMerge: &v})
}

// Shading fills the cell background with a hex RGB color.
func (p TableCellProperty) Shading(fill string) TableCellProperty {
	return p.Merge(TableCellProperty{shading: &fill})
}

// VAlign sets the vertical alignment (top, center, bottom).
func (p TableCellProperty) VAlign(v string) TableCellProperty {
	return p.Merge(TableCellProperty{vAlign: &v})
}

// Build renders w:tcPr following the schema order of CT_TcPr.
func (p TableCellProperty) Build() []byte {
	b := xmlbuilder.New().Open("w:tcPr")
	if p.width != nil {
		b.Leaf("w:tcW", p.width.attrs()...)
	}
	if p.gridSpan != nil {
		b.Leaf("w:gridSpan", xmlbuilder.Attr{Name: "w:val", Value: strconv.Itoa(*p.gridSpan)})
	}
	if p.vMerge != nil {
		b.Leaf("w:vMerge", xmlbuilder.Attr{Name: "w:val", Value: string(*p.vMerge)})
	}
	if p.shading != nil {
		b.Leaf("w:shd",
			xmlbuilder.Attr{Name: "w:val", Value: "clear"},
			xmlbuilder.Attr{Name: "w:color", Value: "auto"},
			xmlbuilder.Attr{Name: "w:fill", Value: *p.shading},
		)
	}
	valLeaf(b, "w:vAlign", p.vAlign)
	return b.Close().Build()
}

// TableCell is one w:tc. It holds paragraphs and nested tables.
type TableCell struct {
	property TableCellProperty
	children []DocumentContent
}

// NewTableCell returns an empty cell.
func NewTableCell() TableCell {
	return TableCell{}
}

func (c TableCell) AddParagraph(p Paragraph) TableCell {
	c.children = appendTo[DocumentContent](c.children, p)
	return c
}

func (c TableCell) AddTable(t Table) TableCell {
	c.children = appendTo[DocumentContent](c.children, t)
	return c
}

func (c TableCell) Property() TableCellProperty {
	return c.property
}

func (c TableCell) ReplaceProperty(p TableCellProperty) TableCell {
	c.property = p
	return c
}

func (c TableCell) Width(w int, typ WidthType) TableCell {
	c.property = c.property.Width(w, typ)
	return c
}

func (c TableCell) GridSpan(n int) TableCell {
	c.property = c.property.GridSpan(n)
	return c
}

func (c TableCell) VMerge(v VMergeType) TableCell {
	c.property = c.property.VMerge(v)
	return c
}

func (c TableCell) Shading(fill string) TableCell {
	c.property = c.property.Shading(fill)
	return c
}

func (c TableCell) VAlign(v string) TableCell {
	c.property = c.property.VAlign(v)
	return c
}

// Span reports how many grid columns the cell covers.
func (c TableCell) Span() int {
	if c.property.gridSpan == nil || *c.property.gridSpan < 1 {
		return 1
	}
	return *c.property.gridSpan
}

// VMergeState reports the vertical merge of the cell and whether one is set.
func (c TableCell) VMergeState() (VMergeType, bool) {
	if c.property.vMerge == nil {
		return "", false
	}
	return *c.property.vMerge, true
}

// Children returns a copy of the cell content.
func (c TableCell) Children() []DocumentContent {
	return append([]DocumentContent(nil), c.children...)
}

// Build renders w:tc. A cell with no content gets one empty paragraph:
// the file format requires a block element in every cell.
func (c TableCell) Build() []byte {
	b := xmlbuilder.New().Open("w:tc").AddChild(c.property)
	if len(c.children) == 0 {
		b.AddChild(NewParagraph())
	}
	for _, child := range c.children {
		renderDocumentContent(b, child)
	}
	return b.Close().Build()
}
