package xml

import (
	stdxml "encoding/xml"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const testDeclaration = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n"

const testRootAttrs = ` xmlns:o="urn:schemas-microsoft-com:office:office"` +
	` xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships"` +
	` xmlns:v="urn:schemas-microsoft-com:vml"` +
	` xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"` +
	` xmlns:w10="urn:schemas-microsoft-com:office:word"` +
	` xmlns:wp="http://schemas.openxmlformats.org/drawingml/2006/wordprocessingDrawing"` +
	` xmlns:wps="http://schemas.microsoft.com/office/word/2010/wordprocessingShape"` +
	` xmlns:wpg="http://schemas.microsoft.com/office/word/2010/wordprocessingGroup"` +
	` xmlns:mc="http://schemas.openxmlformats.org/markup-compatibility/2006"` +
	` xmlns:wp14="http://schemas.microsoft.com/office/word/2010/wordprocessingDrawing"` +
	` xmlns:w14="http://schemas.microsoft.com/office/word/2010/wordml"` +
	` mc:Ignorable="w14 wp14"`

const emptyParagraphProperty = `<w:pPr><w:rPr></w:rPr></w:pPr>`

func assertMarkup(t *testing.T, want string, got []byte) {
	t.Helper()
	if diff := cmp.Diff(want, string(got)); diff != "" {
		t.Errorf("markup mismatch (-want +got):\n%s", diff)
	}
}

// checkBalanced decodes markup and fails unless every start tag has a
// matching end tag in LIFO order.
func checkBalanced(t *testing.T, markup []byte) {
	t.Helper()
	d := stdxml.NewDecoder(strings.NewReader(string(markup)))
	var stack []string
	starts, ends := 0, 0
	for {
		tok, err := d.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			t.Fatalf("markup is not well-formed: %v\n%s", err, markup)
		}
		switch v := tok.(type) {
		case stdxml.StartElement:
			starts++
			stack = append(stack, v.Name.Local)
		case stdxml.EndElement:
			ends++
			if len(stack) == 0 || stack[len(stack)-1] != v.Name.Local {
				t.Fatalf("unbalanced close %q with stack %v", v.Name.Local, stack)
			}
			stack = stack[:len(stack)-1]
		}
	}
	if starts != ends || len(stack) != 0 {
		t.Fatalf("unbalanced markup: %d starts, %d ends, open %v", starts, ends, stack)
	}
}
