// Package xmlbuilder provides the low-level markup accumulator used to
// serialize DOCX parts.
//
// Every element of the document model renders itself through an
// XMLBuilder and exposes the result via the Renderable interface, so
// parents can splice a child's markup with AddChild:
//
//	b := xmlbuilder.New().
//	    Declaration(true).
//	    OpenRoot("w:document").
//	    Open("w:body")
//	for _, p := range paragraphs {
//	    b.AddChild(p)
//	}
//	out := b.Close().Close().Build()
//
// # Output policy
//
//   - Open/Close always produce an explicit start/end pair, even when the
//     element ends up empty. Property containers such as w:pPr and w:rPr
//     are required to exist, so they are never self-closed.
//   - Leaf produces a self-closing element for attribute-only markers.
//   - No whitespace or indentation is inserted apart from the newline
//     after the declaration.
package xmlbuilder
