package manifest

import (
	"fmt"
	"strings"
)

// ValidationIssue is a single problem found in a manifest.
type ValidationIssue struct {
	Field   string
	Message string
}

// ValidationError lists every problem found in a manifest.
type ValidationError struct {
	Issues []ValidationIssue
}

func (e *ValidationError) Error() string {
	if len(e.Issues) == 0 {
		return "validation error"
	}

	if len(e.Issues) == 1 {
		return fmt.Sprintf("validation error: %s - %s", e.Issues[0].Field, e.Issues[0].Message)
	}

	parts := []string{fmt.Sprintf("%d validation issues:", len(e.Issues))}
	for _, issue := range e.Issues {
		parts = append(parts, fmt.Sprintf("  %s: %s", issue.Field, issue.Message))
	}
	return strings.Join(parts, "\n")
}

var (
	validAlign   = set("left", "center", "right", "both", "start", "end", "distribute")
	validBreak   = set("", "line", "page", "column")
	validVMerge  = set("", "restart", "continue")
	validBorders = set("", "none", "single", "double", "dotted", "dashed", "thick")
	validLayout  = set("", "fixed", "autofit")
)

func set(values ...string) map[string]bool {
	m := make(map[string]bool, len(values))
	for _, v := range values {
		m[v] = true
	}
	return m
}

type validator struct {
	issues []ValidationIssue
}

func (v *validator) add(field, format string, args ...interface{}) {
	v.issues = append(v.issues, ValidationIssue{Field: field, Message: fmt.Sprintf(format, args...)})
}

// attrs checks values that are written as XML attribute values, which are
// not escaped.
func (v *validator) attrs(path string, values ...[2]string) {
	for _, kv := range values {
		if strings.ContainsAny(kv[1], "&<>\"") {
			v.add(path+"."+kv[0], "must not contain &, <, > or \": %q", kv[1])
		}
	}
}

// Validate checks the manifest and returns a *ValidationError listing every
// issue, or nil.
func (m *Manifest) Validate() error {
	v := &validator{}

	if p := m.Page; p != nil {
		if p.Width < 0 || p.Height < 0 {
			v.add("page", "width and height must not be negative")
		}
		if mg := p.Margin; mg != nil {
			if mg.Top < 0 || mg.Right < 0 || mg.Bottom < 0 || mg.Left < 0 ||
				mg.Header < 0 || mg.Footer < 0 || mg.Gutter < 0 {
				v.add("page.margin", "margins must not be negative")
			}
		}
	}

	for i, b := range m.Header {
		v.block(fmt.Sprintf("header[%d]", i), b, true)
	}
	for i, b := range m.Footer {
		v.block(fmt.Sprintf("footer[%d]", i), b, true)
	}
	for i, b := range m.Body {
		v.block(fmt.Sprintf("body[%d]", i), b, false)
	}

	if len(v.issues) > 0 {
		return &ValidationError{Issues: v.issues}
	}
	return nil
}

func (v *validator) block(path string, b Block, allowFields bool) {
	kinds := 0
	for _, on := range []bool{b.Paragraph != nil, b.Table != nil, b.PageNumber != nil, b.NumPages != nil} {
		if on {
			kinds++
		}
	}
	if kinds != 1 {
		v.add(path, "must set exactly one of paragraph, table, page_number, num_pages (found %d)", kinds)
		return
	}

	switch {
	case b.Paragraph != nil:
		v.paragraph(path+".paragraph", *b.Paragraph)
	case b.Table != nil:
		v.table(path+".table", *b.Table)
	case b.PageNumber != nil:
		v.field(path+".page_number", *b.PageNumber, allowFields)
	case b.NumPages != nil:
		v.field(path+".num_pages", *b.NumPages, allowFields)
	}
}

func (v *validator) paragraph(path string, p Paragraph) {
	if p.Align != "" && !validAlign[p.Align] {
		v.add(path+".align", "unknown alignment %q", p.Align)
	}
	if p.FirstLine != nil && p.Hanging != nil {
		v.add(path, "first_line and hanging are mutually exclusive")
	}
	if p.ID != "" && !isParaID(p.ID) {
		v.add(path+".id", "must be 8 hex digits below 80000000, got %q", p.ID)
	}
	v.attrs(path, [2]string{"style", p.Style})
	if p.Frame != nil {
		v.frame(path+".frame", *p.Frame)
	}
	for i, r := range p.Runs {
		rp := fmt.Sprintf("%s.runs[%d]", path, i)
		v.attrs(rp,
			[2]string{"style", r.Style},
			[2]string{"font", r.Font},
			[2]string{"color", r.Color},
			[2]string{"highlight", r.Highlight},
			[2]string{"underline", r.Underline},
			[2]string{"vert_align", r.VertAlign})
		if !validBreak[r.Break] {
			v.add(rp+".break", "unknown break %q", r.Break)
		}
		if r.Size < 0 {
			v.add(rp+".size", "must not be negative")
		}
	}
}

func (v *validator) frame(path string, f Frame) {
	v.attrs(path,
		[2]string{"wrap", f.Wrap},
		[2]string{"v_anchor", f.VAnchor},
		[2]string{"h_anchor", f.HAnchor},
		[2]string{"h_rule", f.HRule},
		[2]string{"x_align", f.XAlign},
		[2]string{"y_align", f.YAlign})
	sizes := []struct {
		name string
		val  *int
	}{{"h_space", f.HSpace}, {"v_space", f.VSpace}, {"width", f.Width}, {"height", f.Height}}
	for _, s := range sizes {
		if s.val != nil && *s.val < 0 {
			v.add(path+"."+s.name, "must not be negative")
		}
	}
}

func (v *validator) field(path string, f Field, allowed bool) {
	if !allowed {
		v.add(path, "fields are only allowed in header and footer")
		return
	}
	if f.Align != "" && !validAlign[f.Align] {
		v.add(path+".align", "unknown alignment %q", f.Align)
	}
	if f.Frame != nil {
		v.frame(path+".frame", *f.Frame)
	}
}

func (v *validator) table(path string, t Table) {
	if t.Align != "" && !validAlign[t.Align] {
		v.add(path+".align", "unknown alignment %q", t.Align)
	}
	v.attrs(path, [2]string{"style", t.Style})
	if !validBorders[t.Borders] {
		v.add(path+".borders", "unknown border style %q", t.Borders)
	}
	if !validLayout[t.Layout] {
		v.add(path+".layout", "unknown layout %q", t.Layout)
	}
	for i, w := range t.Grid {
		if w <= 0 {
			v.add(fmt.Sprintf("%s.grid[%d]", path, i), "column width must be positive")
		}
	}
	for i, r := range t.Rows {
		rp := fmt.Sprintf("%s.rows[%d]", path, i)
		if len(r.Cells) == 0 {
			v.add(rp, "row has no cells")
		}
		span := 0
		for j, c := range r.Cells {
			cp := fmt.Sprintf("%s.cells[%d]", rp, j)
			if c.Text != "" && len(c.Paragraphs) > 0 {
				v.add(cp, "text and paragraphs are mutually exclusive")
			}
			if c.GridSpan < 0 {
				v.add(cp+".grid_span", "must not be negative")
			}
			if !validVMerge[c.VMerge] {
				v.add(cp+".v_merge", "unknown vertical merge %q", c.VMerge)
			}
			v.attrs(cp, [2]string{"shading", c.Shading}, [2]string{"v_align", c.VAlign})
			for k, p := range c.Paragraphs {
				v.paragraph(fmt.Sprintf("%s.paragraphs[%d]", cp, k), p)
			}
			span += max(c.GridSpan, 1)
		}
		if len(t.Grid) > 0 && span > len(t.Grid) {
			v.add(rp, "spans %d columns but the grid has %d", span, len(t.Grid))
		}
	}
}

func isParaID(id string) bool {
	if len(id) != 8 {
		return false
	}
	for _, c := range id {
		if !strings.ContainsRune("0123456789abcdefABCDEF", c) {
			return false
		}
	}
	return id[0] < '8'
}
