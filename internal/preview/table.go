package preview

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/benjaminschreck/go-docxgen/pkg/docx/xml"
)

// Cell is one visible cell of a table grid. Merged cells cover more than
// one row or column.
type Cell struct {
	Row     int
	Col     int
	Text    string
	RowSpan int
	ColSpan int
}

// Grid is a table flattened to positioned cells.
type Grid struct {
	Rows  int
	Cols  int
	Cells []*Cell
}

// gridFromTable positions the cells of t. Horizontal spans come from
// w:gridSpan and vertical spans from w:vMerge restart/continue pairs.
// Rows shorter than the widest row are padded with empty cells.
func gridFromTable(t xml.Table, text func(xml.TableCell) string) *Grid {
	g := &Grid{}
	rows := t.Rows()
	g.Rows = len(rows)

	// merging[col] is the restart cell a continue cell in that column joins
	merging := make(map[int]*Cell)
	for r, row := range rows {
		col := 0
		for _, c := range row.Cells() {
			span := c.Span()
			state, merged := c.VMergeState()

			if merged && state == xml.VMergeContinue {
				if owner := merging[col]; owner != nil {
					owner.RowSpan++
					col += span
					continue
				}
			}

			cell := &Cell{Row: r, Col: col, Text: text(c), RowSpan: 1, ColSpan: span}
			g.Cells = append(g.Cells, cell)
			if merged && state == xml.VMergeRestart {
				merging[col] = cell
			} else {
				delete(merging, col)
			}
			col += span
		}
		g.Cols = max(g.Cols, col)
	}

	owned := make([][]bool, g.Rows)
	for i := range owned {
		owned[i] = make([]bool, g.Cols)
	}
	for _, c := range g.Cells {
		for r := c.Row; r < c.Row+c.RowSpan && r < g.Rows; r++ {
			for col := c.Col; col < c.Col+c.ColSpan && col < g.Cols; col++ {
				owned[r][col] = true
			}
		}
	}
	for r := range owned {
		for col := range owned[r] {
			if !owned[r][col] {
				g.Cells = append(g.Cells, &Cell{Row: r, Col: col, RowSpan: 1, ColSpan: 1})
			}
		}
	}
	return g
}

// layout holds the computed geometry of a grid.
type layout struct {
	grid    *Grid
	owner   [][]*Cell
	widths  []int
	heights []int
	lines   map[*Cell][]string
}

// Render draws the grid as ASCII art. Widths are display widths, so East
// Asian wide characters take two columns.
func (g *Grid) Render() string {
	if g.Rows == 0 || g.Cols == 0 {
		return ""
	}
	return g.layout().render()
}

func (g *Grid) layout() *layout {
	l := &layout{
		grid:    g,
		owner:   make([][]*Cell, g.Rows),
		widths:  make([]int, g.Cols),
		heights: make([]int, g.Rows),
		lines:   make(map[*Cell][]string, len(g.Cells)),
	}
	for i := range l.owner {
		l.owner[i] = make([]*Cell, g.Cols)
	}
	for _, c := range g.Cells {
		for r := 0; r < c.RowSpan && c.Row+r < g.Rows; r++ {
			for col := 0; col < c.ColSpan && c.Col+col < g.Cols; col++ {
				l.owner[c.Row+r][c.Col+col] = c
			}
		}
		l.lines[c] = strings.Split(c.Text, "\n")
	}

	l.computeWidths()
	l.computeHeights()
	return l
}

func (l *layout) textWidth(c *Cell) int {
	w := 0
	for _, line := range l.lines[c] {
		w = max(w, runewidth.StringWidth(line))
	}
	return w
}

func (l *layout) computeWidths() {
	for i := range l.widths {
		l.widths[i] = 1
	}

	for _, c := range l.grid.Cells {
		if c.ColSpan == 1 {
			l.widths[c.Col] = max(l.widths[c.Col], l.textWidth(c))
		}
	}

	// spanning cells widen their columns evenly when they do not fit;
	// separators between spanned columns add three characters each
	for _, c := range l.grid.Cells {
		if c.ColSpan <= 1 {
			continue
		}
		avail := (c.ColSpan - 1) * 3
		for i := 0; i < c.ColSpan; i++ {
			avail += l.widths[c.Col+i]
		}
		need := l.textWidth(c)
		if need <= avail {
			continue
		}
		extra := need - avail
		for i := 0; i < c.ColSpan; i++ {
			l.widths[c.Col+i] += extra / c.ColSpan
			if i < extra%c.ColSpan {
				l.widths[c.Col+i]++
			}
		}
	}
}

func (l *layout) computeHeights() {
	for r := range l.heights {
		l.heights[r] = 1
	}
	for _, c := range l.grid.Cells {
		l.heights[c.Row] = max(l.heights[c.Row], len(l.lines[c]))
	}
}

func (l *layout) render() string {
	var sb strings.Builder
	sb.WriteString(l.border(-1))
	sb.WriteByte('\n')
	for r := 0; r < l.grid.Rows; r++ {
		for line := 0; line < l.heights[r]; line++ {
			sb.WriteString(l.content(r, line))
			sb.WriteByte('\n')
		}
		sb.WriteString(l.border(r))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// border draws the horizontal rule below row r, or the top rule for -1.
// The rule is left open where a cell continues into the next row.
func (l *layout) border(r int) string {
	last := l.grid.Rows - 1
	closed := func(col int) bool {
		return r == -1 || r == last || l.owner[r][col] != l.owner[r+1][col]
	}

	var sb strings.Builder
	sb.WriteByte('+')
	for col := 0; col < l.grid.Cols; col++ {
		fill := " "
		if closed(col) {
			fill = "-"
		}
		sb.WriteString(strings.Repeat(fill, l.widths[col]+2))

		if col < l.grid.Cols-1 {
			junction := false
			if r >= 0 {
				junction = l.owner[r][col] != l.owner[r][col+1]
			}
			if r < last {
				junction = junction || l.owner[r+1][col] != l.owner[r+1][col+1]
			}
			if junction {
				sb.WriteByte('+')
			} else {
				sb.WriteString(fill)
			}
		}
	}
	sb.WriteByte('+')
	return sb.String()
}

// content draws display line n of row r.
func (l *layout) content(r, n int) string {
	var sb strings.Builder
	sb.WriteByte('|')
	for col := 0; col < l.grid.Cols; {
		c := l.owner[r][col]
		width := (c.ColSpan - 1) * 3
		for i := 0; i < c.ColSpan; i++ {
			width += l.widths[col+i]
		}

		text := ""
		if c.Row == r && n < len(l.lines[c]) {
			text = l.lines[c][n]
		}
		sb.WriteByte(' ')
		sb.WriteString(runewidth.FillRight(text, width))
		sb.WriteByte(' ')

		col += c.ColSpan
		if col < l.grid.Cols {
			sb.WriteByte('|')
		}
	}
	sb.WriteByte('|')
	return sb.String()
}
