// Package preview renders an element tree as plain text for terminal
// inspection. Paragraphs print one per line, fields print as {PAGE} or
// {NUMPAGES}, and tables print as ASCII grids.
package preview

import (
	"fmt"
	"strings"

	"github.com/benjaminschreck/go-docxgen/pkg/docx"
	"github.com/benjaminschreck/go-docxgen/pkg/docx/xml"
)

// Docx renders the header, body and footer of d, each under a title line.
// Absent header and footer sections are skipped.
func Docx(d docx.Docx) string {
	var sb strings.Builder
	if h, ok := d.HeaderPart(); ok {
		section(&sb, "header", Header(h))
	}
	section(&sb, "body", Document(d.Document()))
	if f, ok := d.FooterPart(); ok {
		section(&sb, "footer", Footer(f))
	}
	return sb.String()
}

func section(sb *strings.Builder, title, body string) {
	fmt.Fprintf(sb, "== %s ==\n", title)
	sb.WriteString(body)
}

// Document renders the body content in reading order.
func Document(d xml.Document) string {
	var sb strings.Builder
	for _, c := range d.Children() {
		writeContent(&sb, c)
	}
	return sb.String()
}

func Header(h xml.Header) string {
	return headerContent(h.Children())
}

func Footer(f xml.Footer) string {
	return headerContent(f.Children())
}

func headerContent(children []xml.HeaderContent) string {
	var sb strings.Builder
	for _, c := range children {
		switch v := c.(type) {
		case xml.FieldCode:
			fmt.Fprintf(&sb, "{%s}\n", v.Kind())
		case xml.Paragraph:
			writeContent(&sb, v)
		case xml.Table:
			writeContent(&sb, v)
		}
	}
	return sb.String()
}

func writeContent(sb *strings.Builder, c xml.DocumentContent) {
	switch v := c.(type) {
	case xml.Paragraph:
		sb.WriteString(v.Text())
		sb.WriteByte('\n')
	case xml.Table:
		sb.WriteString(Table(v))
	}
}

// Table renders t as an ASCII grid. Nested tables are shown as [table].
func Table(t xml.Table) string {
	return gridFromTable(t, cellText).Render()
}

func cellText(c xml.TableCell) string {
	var lines []string
	for _, child := range c.Children() {
		switch v := child.(type) {
		case xml.Paragraph:
			lines = append(lines, strings.TrimRight(v.Text(), "\n"))
		case xml.Table:
			lines = append(lines, "[table]")
		}
	}
	return strings.Join(lines, "\n")
}
