package manifest

import (
	"github.com/benjaminschreck/go-docxgen/pkg/docx"
	"github.com/benjaminschreck/go-docxgen/pkg/docx/xml"
)

// Docx validates the manifest and builds the document it describes.
func (m *Manifest) Docx() (docx.Docx, error) {
	if err := m.Validate(); err != nil {
		return docx.Docx{}, err
	}

	d := docx.New()
	if p := m.Page; p != nil {
		d = applyPage(d, *p)
	}

	if len(m.Header) > 0 {
		h := xml.NewHeader()
		for _, b := range m.Header {
			switch {
			case b.Paragraph != nil:
				h = h.AddParagraph(paragraph(*b.Paragraph))
			case b.Table != nil:
				h = h.AddTable(table(*b.Table))
			case b.PageNumber != nil:
				h = h.AddFieldCode(field(xml.PageNum(), *b.PageNumber))
			case b.NumPages != nil:
				h = h.AddFieldCode(field(xml.NumPages(), *b.NumPages))
			}
		}
		d = d.Header(h)
	}

	if len(m.Footer) > 0 {
		f := xml.NewFooter()
		for _, b := range m.Footer {
			switch {
			case b.Paragraph != nil:
				f = f.AddParagraph(paragraph(*b.Paragraph))
			case b.Table != nil:
				f = f.AddTable(table(*b.Table))
			case b.PageNumber != nil:
				f = f.AddFieldCode(field(xml.PageNum(), *b.PageNumber))
			case b.NumPages != nil:
				f = f.AddFieldCode(field(xml.NumPages(), *b.NumPages))
			}
		}
		d = d.Footer(f)
	}

	for _, b := range m.Body {
		switch {
		case b.Paragraph != nil:
			d = d.AddParagraph(paragraph(*b.Paragraph))
		case b.Table != nil:
			d = d.AddTable(table(*b.Table))
		}
	}

	docx.WithFields(docx.Fields{
		"header": len(m.Header),
		"footer": len(m.Footer),
		"body":   len(m.Body),
	}).Debug("built document from manifest")
	return d, nil
}

func applyPage(d docx.Docx, p Page) docx.Docx {
	w, h := 11906, 16838
	if p.Width > 0 {
		w = p.Width
	}
	if p.Height > 0 {
		h = p.Height
	}
	if p.Landscape && w < h {
		w, h = h, w
	}
	d = d.PageSize(w, h)

	if mg := p.Margin; mg != nil {
		d = d.PageMargin(xml.PageMargin{
			Top:    mg.Top,
			Right:  mg.Right,
			Bottom: mg.Bottom,
			Left:   mg.Left,
			Header: mg.Header,
			Footer: mg.Footer,
			Gutter: mg.Gutter,
		})
	}
	return d
}

func paragraph(p Paragraph) xml.Paragraph {
	out := xml.NewParagraph()
	if p.ID != "" {
		out = out.ID(p.ID)
	}
	if p.Style != "" {
		out = out.Style(p.Style)
	}
	if p.Align != "" {
		out = out.Align(xml.AlignmentType(p.Align))
	}
	if p.KeepNext {
		out = out.KeepNext()
	}
	if p.PageBreakBefore {
		out = out.PageBreakBefore()
	}
	if p.SpacingBefore != nil {
		out = out.SpacingBefore(*p.SpacingBefore)
	}
	if p.SpacingAfter != nil {
		out = out.SpacingAfter(*p.SpacingAfter)
	}
	if p.IndentLeft != nil {
		out = out.IndentLeft(*p.IndentLeft)
	}
	if p.IndentRight != nil {
		out = out.IndentRight(*p.IndentRight)
	}
	if p.FirstLine != nil {
		out = out.ReplaceProperty(out.Property().FirstLine(*p.FirstLine))
	}
	if p.Hanging != nil {
		out = out.ReplaceProperty(out.Property().Hanging(*p.Hanging))
	}
	if p.Frame != nil {
		out = out.Frame(frame(*p.Frame))
	}

	if p.Text != "" {
		out = out.AddRun(xml.NewRun().AddText(p.Text))
	}
	for _, r := range p.Runs {
		out = out.AddRun(run(r))
	}
	return out
}

func run(r Run) xml.Run {
	out := xml.NewRun()
	if r.Style != "" {
		out = out.Style(r.Style)
	}
	if r.Font != "" {
		out = out.Fonts(r.Font)
	}
	if r.Bold {
		out = out.Bold()
	}
	if r.Italic {
		out = out.Italic()
	}
	if r.Caps {
		out = out.Caps()
	}
	if r.Strike {
		out = out.Strike()
	}
	if r.Color != "" {
		out = out.Color(r.Color)
	}
	if r.Size > 0 {
		out = out.Size(r.Size)
	}
	if r.Highlight != "" {
		out = out.Highlight(r.Highlight)
	}
	if r.Underline != "" {
		out = out.Underline(r.Underline)
	}
	if r.VertAlign != "" {
		out = out.VertAlign(r.VertAlign)
	}

	if r.Text != "" {
		out = out.AddText(r.Text)
	}
	if r.Tab {
		out = out.AddTab()
	}
	switch r.Break {
	case "":
	case "line":
		out = out.AddBreak(xml.BreakLine)
	default:
		out = out.AddBreak(xml.BreakType(r.Break))
	}
	return out
}

func frame(f Frame) xml.FrameProperty {
	out := xml.NewFrameProperty()
	strs := []struct {
		val string
		set func(xml.FrameProperty, string) xml.FrameProperty
	}{
		{f.Wrap, xml.FrameProperty.Wrap},
		{f.VAnchor, xml.FrameProperty.VAnchor},
		{f.HAnchor, xml.FrameProperty.HAnchor},
		{f.HRule, xml.FrameProperty.HRule},
		{f.XAlign, xml.FrameProperty.XAlign},
		{f.YAlign, xml.FrameProperty.YAlign},
	}
	for _, s := range strs {
		if s.val != "" {
			out = s.set(out, s.val)
		}
	}
	ints := []struct {
		val *int
		set func(xml.FrameProperty, int) xml.FrameProperty
	}{
		{f.HSpace, xml.FrameProperty.HSpace},
		{f.VSpace, xml.FrameProperty.VSpace},
		{f.X, xml.FrameProperty.X},
		{f.Y, xml.FrameProperty.Y},
		{f.Width, xml.FrameProperty.Width},
		{f.Height, xml.FrameProperty.Height},
	}
	for _, i := range ints {
		if i.val != nil {
			out = i.set(out, *i.val)
		}
	}
	return out
}

func field(fc xml.FieldCode, f Field) xml.FieldCode {
	if f.Align != "" {
		fc = fc.Align(xml.AlignmentType(f.Align))
	}
	if f.Frame != nil {
		fc = fc.ReplaceFrame(frame(*f.Frame))
	}
	return fc
}

func table(t Table) xml.Table {
	out := xml.NewTable()
	if t.Style != "" {
		out = out.Style(t.Style)
	}
	if t.Width > 0 {
		out = out.Width(t.Width, xml.WidthDxa)
	}
	if t.Align != "" {
		out = out.Align(xml.AlignmentType(t.Align))
	}
	if t.Borders != "" {
		border := xml.TableBorder{Style: t.Borders, Size: 4}
		if t.Borders == "none" {
			border = xml.TableBorder{Style: "nil"}
		}
		for _, pos := range []xml.BorderPosition{
			xml.BorderTop, xml.BorderLeft, xml.BorderBottom, xml.BorderRight, xml.BorderInsideH, xml.BorderInsideV,
		} {
			out = out.Border(pos, border)
		}
	}
	if t.Layout != "" {
		out = out.Layout(t.Layout)
	}
	if len(t.Grid) > 0 {
		out = out.Grid(t.Grid...)
	}

	for _, r := range t.Rows {
		row := xml.NewTableRow()
		if r.Header {
			row = row.Header()
		}
		if r.CantSplit {
			row = row.CantSplit()
		}
		if r.Height > 0 {
			row = row.Height(r.Height, "atLeast")
		}
		for _, c := range r.Cells {
			row = row.AddCell(cell(c))
		}
		out = out.AddRow(row)
	}
	return out
}

func cell(c Cell) xml.TableCell {
	out := xml.NewTableCell()
	if c.Width > 0 {
		out = out.Width(c.Width, xml.WidthDxa)
	}
	if c.GridSpan > 1 {
		out = out.GridSpan(c.GridSpan)
	}
	if c.VMerge != "" {
		out = out.VMerge(xml.VMergeType(c.VMerge))
	}
	if c.Shading != "" {
		out = out.Shading(c.Shading)
	}
	if c.VAlign != "" {
		out = out.VAlign(c.VAlign)
	}

	if c.Text != "" {
		out = out.AddParagraph(xml.NewParagraph().AddRun(xml.NewRun().AddText(c.Text)))
	}
	for _, p := range c.Paragraphs {
		out = out.AddParagraph(paragraph(p))
	}
	return out
}
