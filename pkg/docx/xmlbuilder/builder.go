package xmlbuilder

import (
	"bytes"
	"fmt"
	"strings"
)

const declaration = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n"

// Renderable is implemented by every element and property type. Build
// returns the complete markup of the value and never fails for a value
// constructed through the element builders.
type Renderable interface {
	Build() []byte
}

// Attr is a single attribute for Leaf.
type Attr struct {
	Name  string
	Value string
}

// XMLBuilder accumulates markup through a small set of primitives.
//
// Tags are closed in strict LIFO order. Misuse (closing with nothing open,
// adding an attribute after content, building with open tags, reusing a
// built builder) is a programming error and panics instead of producing
// broken markup.
//
// Attribute values are written verbatim: callers must supply values that
// are legal inside a double-quoted attribute. Character data written with
// Text or Chars is escaped.
type XMLBuilder struct {
	buf   bytes.Buffer
	stack []string
	// pending is true while the start tag on top of the stack is still
	// accepting attributes.
	pending bool
	built   bool
}

// New returns an empty builder.
func New() *XMLBuilder {
	return &XMLBuilder{}
}

// Declaration writes the XML declaration line when include is true. It must
// be the first call on the builder.
func (b *XMLBuilder) Declaration(include bool) *XMLBuilder {
	b.ensureUsable()
	if b.buf.Len() > 0 {
		panic("xmlbuilder: Declaration must precede all other markup")
	}
	if include {
		b.buf.WriteString(declaration)
	}
	return b
}

// OpenRoot opens a part root element (w:document, w:hdr, w:ftr) carrying
// the full namespace table.
func (b *XMLBuilder) OpenRoot(tag string) *XMLBuilder {
	b.Open(tag)
	for _, ns := range namespaces {
		b.Attr("xmlns:"+ns.Prefix, ns.URI)
	}
	return b.Attr("mc:Ignorable", ignorable)
}

// Open starts a new element scope.
func (b *XMLBuilder) Open(tag string) *XMLBuilder {
	b.ensureUsable()
	b.terminateStart()
	b.buf.WriteByte('<')
	b.buf.WriteString(tag)
	b.stack = append(b.stack, tag)
	b.pending = true
	return b
}

// Attr adds an attribute to the most recently opened element. It panics if
// that element already has content.
func (b *XMLBuilder) Attr(name, value string) *XMLBuilder {
	b.ensureUsable()
	if !b.pending {
		panic(fmt.Sprintf("xmlbuilder: attribute %q has no open start tag", name))
	}
	writeAttr(&b.buf, name, value)
	return b
}

// Leaf writes a self-closing element. It is the only self-closing form:
// elements opened with Open always get an explicit close tag.
func (b *XMLBuilder) Leaf(tag string, attrs ...Attr) *XMLBuilder {
	b.ensureUsable()
	b.terminateStart()
	b.buf.WriteByte('<')
	b.buf.WriteString(tag)
	for _, a := range attrs {
		writeAttr(&b.buf, a.Name, a.Value)
	}
	b.buf.WriteString("/>")
	return b
}

// Text writes a complete text element. When preserveSpace is set the
// element carries xml:space="preserve" so readers keep leading and
// trailing whitespace.
func (b *XMLBuilder) Text(tag, content string, preserveSpace bool) *XMLBuilder {
	b.Open(tag)
	if preserveSpace {
		b.Attr("xml:space", "preserve")
	}
	return b.Chars(content).Close()
}

// Chars writes escaped character data into the current element.
func (b *XMLBuilder) Chars(content string) *XMLBuilder {
	b.ensureUsable()
	b.terminateStart()
	textEscaper.WriteString(&b.buf, content)
	return b
}

// AddChild splices the rendered markup of r at the current position.
func (b *XMLBuilder) AddChild(r Renderable) *XMLBuilder {
	return b.Raw(r.Build())
}

// Raw writes pre-rendered markup unchanged.
func (b *XMLBuilder) Raw(p []byte) *XMLBuilder {
	b.ensureUsable()
	b.terminateStart()
	b.buf.Write(p)
	return b
}

// Close ends the innermost open element.
func (b *XMLBuilder) Close() *XMLBuilder {
	b.ensureUsable()
	if len(b.stack) == 0 {
		panic("xmlbuilder: Close with no open element")
	}
	tag := b.stack[len(b.stack)-1]
	b.stack = b.stack[:len(b.stack)-1]
	b.terminateStart()
	b.buf.WriteString("</")
	b.buf.WriteString(tag)
	b.buf.WriteByte('>')
	return b
}

// Depth reports the number of open elements.
func (b *XMLBuilder) Depth() int {
	return len(b.stack)
}

// Build returns the accumulated markup. The builder cannot be used
// afterwards.
func (b *XMLBuilder) Build() []byte {
	b.ensureUsable()
	if len(b.stack) > 0 {
		panic(fmt.Sprintf("xmlbuilder: Build with unclosed elements %v", b.stack))
	}
	b.built = true
	out := make([]byte, b.buf.Len())
	copy(out, b.buf.Bytes())
	return out
}

func (b *XMLBuilder) ensureUsable() {
	if b.built {
		panic("xmlbuilder: builder used after Build")
	}
}

func (b *XMLBuilder) terminateStart() {
	if b.pending {
		b.buf.WriteByte('>')
		b.pending = false
	}
}

func writeAttr(buf *bytes.Buffer, name, value string) {
	buf.WriteByte(' ')
	buf.WriteString(name)
	buf.WriteString(`="`)
	buf.WriteString(value)
	buf.WriteByte('"')
}

var textEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
)
