// Package manifest reads YAML document descriptions and turns them into
// docx.Docx values.
//
// A manifest has an optional page setup, header and footer, and a body:
//
//	page:
//	  width: 11906
//	  height: 16838
//	header:
//	  - page_number:
//	      align: right
//	      frame: {wrap: none, x_align: right}
//	body:
//	  - paragraph:
//	      style: Title
//	      runs:
//	        - {text: "Quarterly Report", bold: true}
//	  - table:
//	      grid: [3000, 3000]
//	      rows:
//	        - cells: [{text: Region}, {text: Revenue}]
package manifest

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Manifest is the root of a document description.
type Manifest struct {
	Page   *Page   `yaml:"page"`
	Header []Block `yaml:"header"`
	Footer []Block `yaml:"footer"`
	Body   []Block `yaml:"body"`
}

// Page is the page setup. Zero values keep the A4 defaults.
type Page struct {
	Width     int     `yaml:"width"`
	Height    int     `yaml:"height"`
	Landscape bool    `yaml:"landscape"`
	Margin    *Margin `yaml:"margin"`
}

// Margin holds page margins in twips.
type Margin struct {
	Top    int `yaml:"top"`
	Right  int `yaml:"right"`
	Bottom int `yaml:"bottom"`
	Left   int `yaml:"left"`
	Header int `yaml:"header"`
	Footer int `yaml:"footer"`
	Gutter int `yaml:"gutter"`
}

// Block is one content element. Exactly one field must be set.
type Block struct {
	Paragraph  *Paragraph `yaml:"paragraph"`
	Table      *Table     `yaml:"table"`
	PageNumber *Field     `yaml:"page_number"`
	NumPages   *Field     `yaml:"num_pages"`
}

// Paragraph describes a paragraph. Text is shorthand for a single plain run
// placed before Runs.
type Paragraph struct {
	ID              string `yaml:"id"`
	Text            string `yaml:"text"`
	Style           string `yaml:"style"`
	Align           string `yaml:"align"`
	KeepNext        bool   `yaml:"keep_next"`
	PageBreakBefore bool   `yaml:"page_break_before"`
	SpacingBefore   *int   `yaml:"spacing_before"`
	SpacingAfter    *int   `yaml:"spacing_after"`
	IndentLeft      *int   `yaml:"indent_left"`
	IndentRight     *int   `yaml:"indent_right"`
	FirstLine       *int   `yaml:"first_line"`
	Hanging         *int   `yaml:"hanging"`
	Frame           *Frame `yaml:"frame"`
	Runs            []Run  `yaml:"runs"`
}

// Run describes a run of text. Tab and Break append after the text.
type Run struct {
	Text      string `yaml:"text"`
	Style     string `yaml:"style"`
	Font      string `yaml:"font"`
	Bold      bool   `yaml:"bold"`
	Italic    bool   `yaml:"italic"`
	Caps      bool   `yaml:"caps"`
	Strike    bool   `yaml:"strike"`
	Color     string `yaml:"color"`
	Size      int    `yaml:"size"`
	Highlight string `yaml:"highlight"`
	Underline string `yaml:"underline"`
	VertAlign string `yaml:"vert_align"`
	Tab       bool   `yaml:"tab"`
	Break     string `yaml:"break"`
}

// Field describes a PAGE or NUMPAGES field.
type Field struct {
	Align string `yaml:"align"`
	Frame *Frame `yaml:"frame"`
}

// Frame describes a floating frame. Unset keys are omitted.
type Frame struct {
	Wrap    string `yaml:"wrap"`
	VAnchor string `yaml:"v_anchor"`
	HAnchor string `yaml:"h_anchor"`
	HRule   string `yaml:"h_rule"`
	XAlign  string `yaml:"x_align"`
	YAlign  string `yaml:"y_align"`
	HSpace  *int   `yaml:"h_space"`
	VSpace  *int   `yaml:"v_space"`
	X       *int   `yaml:"x"`
	Y       *int   `yaml:"y"`
	Width   *int   `yaml:"width"`
	Height  *int   `yaml:"height"`
}

// Table describes a table.
type Table struct {
	Style   string `yaml:"style"`
	Width   int    `yaml:"width"`
	Align   string `yaml:"align"`
	Borders string `yaml:"borders"`
	Layout  string `yaml:"layout"`
	Grid    []int  `yaml:"grid"`
	Rows    []Row  `yaml:"rows"`
}

// Row describes a table row.
type Row struct {
	Header    bool   `yaml:"header"`
	CantSplit bool   `yaml:"cant_split"`
	Height    int    `yaml:"height"`
	Cells     []Cell `yaml:"cells"`
}

// Cell describes a table cell. Text is shorthand for one plain paragraph.
type Cell struct {
	Text       string      `yaml:"text"`
	Paragraphs []Paragraph `yaml:"paragraphs"`
	Width      int         `yaml:"width"`
	GridSpan   int         `yaml:"grid_span"`
	VMerge     string      `yaml:"v_merge"`
	Shading    string      `yaml:"shading"`
	VAlign     string      `yaml:"v_align"`
}

// Parse decodes a manifest. Unknown keys are rejected so typos surface
// instead of being ignored.
func Parse(data []byte) (*Manifest, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, errors.New("manifest: document is empty")
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var m Manifest
	if err := dec.Decode(&m); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("manifest: parse: %w", err)
	}
	return &m, nil
}

// Load reads and parses the manifest at path.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("manifest: read %s: %w", path, err)
	}
	m, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}
