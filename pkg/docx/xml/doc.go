// Package xml provides the typed element model for DOCX parts and renders
// it to WordprocessingML.
//
// Every element is a value. Builder methods take the current value and
// return a new one, so a chain reads top-down while earlier values stay
// untouched:
//
//	p := xml.NewParagraph().
//	    Align(xml.AlignCenter).
//	    AddRun(xml.NewRun().Bold().AddText("Hello"))
//	doc := xml.NewDocument().AddParagraph(p)
//	out := doc.Build()
//
// # Structure Organization
//
//   - types.go: the closed content unions (DocumentContent, HeaderContent) and helpers
//   - document.go, section_property.go: word/document.xml root and page setup
//   - header.go: header and footer parts
//   - paragraph.go, paragraph_property.go, frame_property.go: paragraphs and their formatting
//   - run.go, run_property.go: runs, text, breaks and field characters
//   - table.go: tables, rows, cells and their properties
//   - field_code.go: PAGE / NUMPAGES fields hosted in structured document tags
//
// # Properties
//
// Property objects (ParagraphProperty, RunProperty, FrameProperty, ...)
// keep every field optional. Each setter is a Merge of a one-field patch,
// so setting one field never clears another:
//
//	f := xml.NewFrameProperty().Wrap("none").XAlign("left")
//	// renders <w:framePr w:wrap="none" w:xAlign="left"/>
//
// Unset fields never appear in the output. Container properties (w:pPr,
// w:rPr, w:tblPr, w:trPr, w:tcPr) are always rendered, even when empty.
//
// # Rendering
//
// Every type implements xmlbuilder.Renderable. Elements render their
// properties first and then their children in insertion order. Rendering
// is deterministic and cannot fail.
package xml
