package xml

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/benjaminschreck/go-docxgen/pkg/docx/xmlbuilder"
)

// DocumentContent is anything that can appear in a document body or table
// cell. The set is closed: only Paragraph and Table implement it.
type DocumentContent interface {
	xmlbuilder.Renderable
	isDocumentContent()
}

// HeaderContent is anything that can appear in a header or footer:
// Paragraph, Table or FieldCode.
type HeaderContent interface {
	xmlbuilder.Renderable
	isHeaderContent()
}

// AlignmentType is the w:jc value of a paragraph or table.
type AlignmentType string

const (
	AlignLeft       AlignmentType = "left"
	AlignCenter     AlignmentType = "center"
	AlignRight      AlignmentType = "right"
	AlignBoth       AlignmentType = "both"
	AlignStart      AlignmentType = "start"
	AlignEnd        AlignmentType = "end"
	AlignDistribute AlignmentType = "distribute"
)

// renderDocumentContent is the single dispatch point over DocumentContent.
func renderDocumentContent(b *xmlbuilder.XMLBuilder, c DocumentContent) {
	switch v := c.(type) {
	case Paragraph:
		b.AddChild(v)
	case Table:
		b.AddChild(v)
	default:
		panic(fmt.Sprintf("xml: unknown document content %T", c))
	}
}

// renderHeaderContent is the single dispatch point over HeaderContent.
func renderHeaderContent(b *xmlbuilder.XMLBuilder, c HeaderContent) {
	switch v := c.(type) {
	case Paragraph:
		b.AddChild(v)
	case Table:
		b.AddChild(v)
	case FieldCode:
		b.AddChild(v)
	default:
		panic(fmt.Sprintf("xml: unknown header content %T", c))
	}
}

// appendTo returns a new slice holding s followed by v. The builder
// methods use it so the previous value never shares a backing array with
// the new one.
func appendTo[T any](s []T, v T) []T {
	return append(slices.Clip(s), v)
}

func strAttr(attrs []xmlbuilder.Attr, name string, v *string) []xmlbuilder.Attr {
	if v == nil {
		return attrs
	}
	return append(attrs, xmlbuilder.Attr{Name: name, Value: *v})
}

func intAttr(attrs []xmlbuilder.Attr, name string, v *int) []xmlbuilder.Attr {
	if v == nil {
		return attrs
	}
	return append(attrs, xmlbuilder.Attr{Name: name, Value: strconv.Itoa(*v)})
}

// valLeaf writes <tag w:val="..."/> when v is set.
func valLeaf(b *xmlbuilder.XMLBuilder, tag string, v *string) {
	if v == nil {
		return
	}
	b.Leaf(tag, xmlbuilder.Attr{Name: "w:val", Value: *v})
}

// onOffLeaf writes a toggle property: <tag/> for true and
// <tag w:val="false"/> for an explicit false.
func onOffLeaf(b *xmlbuilder.XMLBuilder, tag string, v *bool) {
	if v == nil {
		return
	}
	if *v {
		b.Leaf(tag)
		return
	}
	b.Leaf(tag, xmlbuilder.Attr{Name: "w:val", Value: "false"})
}

func overlay[T any](dst **T, src *T) {
	if src != nil {
		*dst = src
	}
}
