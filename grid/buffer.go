package grid

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Cell is a single styled character in a Buffer. A wide rune occupies its
// own cell plus the one to its right, which is marked as a continuation.
type Cell struct {
	Rune  rune
	Style lipgloss.Style

	continuation bool
}

// Buffer is an in-memory CellGrid. Create one with New; the zero value has
// no cells.
type Buffer struct {
	width  int
	height int
	cells  [][]Cell // [row][col]
}

// New creates a Buffer of the given size filled with unstyled spaces.
// Negative dimensions are treated as zero.
func New(width, height int) *Buffer {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	b := &Buffer{width: width, height: height, cells: make([][]Cell, height)}
	for y := range b.cells {
		row := make([]Cell, width)
		for x := range row {
			row[x] = Cell{Rune: ' '}
		}
		b.cells[y] = row
	}
	return b
}

// Size returns the buffer dimensions.
func (b *Buffer) Size() (int, int) { return b.width, b.height }

// InBounds reports whether (x, y) is inside the buffer.
func (b *Buffer) InBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Cell returns the cell at (x, y), or a zero Cell when out of bounds.
func (b *Buffer) Cell(x, y int) Cell {
	if !b.InBounds(x, y) {
		return Cell{}
	}
	return b.cells[y][x]
}

// SetCell writes a styled rune at (x, y). Out-of-bounds writes are ignored.
// A wide rune also claims the cell to its right; overwriting either half of
// an existing wide rune blanks the other half. A wide rune set in the last
// column has no room for its second half and leaves a styled blank instead.
func (b *Buffer) SetCell(x, y int, r rune, style lipgloss.Style) {
	if !b.InBounds(x, y) {
		return
	}
	b.splitWide(x, y)
	if runewidth.RuneWidth(r) == 2 {
		if x+1 >= b.width {
			b.cells[y][x] = Cell{Rune: ' ', Style: style}
			return
		}
		b.splitWide(x+1, y)
		b.cells[y][x] = Cell{Rune: r, Style: style}
		b.cells[y][x+1] = Cell{Style: style, continuation: true}
		return
	}
	b.cells[y][x] = Cell{Rune: r, Style: style}
}

// splitWide blanks the other half of any wide rune that the cell at (x, y)
// is part of, so a partial overwrite never leaves a dangling half-glyph.
func (b *Buffer) splitWide(x, y int) {
	c := b.cells[y][x]
	if c.continuation && x > 0 {
		left := b.cells[y][x-1]
		b.cells[y][x-1] = Cell{Rune: ' ', Style: left.Style}
	}
	if runewidth.RuneWidth(c.Rune) == 2 && x+1 < b.width {
		right := b.cells[y][x+1]
		b.cells[y][x+1] = Cell{Rune: ' ', Style: right.Style}
	}
}

// Row returns the plain text of row y without styling. Continuation cells
// of wide runes contribute nothing; the wide rune itself covers them.
func (b *Buffer) Row(y int) string {
	if y < 0 || y >= b.height {
		return ""
	}
	var sb strings.Builder
	for _, c := range b.cells[y] {
		if c.continuation {
			continue
		}
		sb.WriteRune(c.Rune)
	}
	return sb.String()
}

// StyledRow returns row y with each cell's lipgloss style applied.
func (b *Buffer) StyledRow(y int) string {
	if y < 0 || y >= b.height {
		return ""
	}
	var sb strings.Builder
	for _, c := range b.cells[y] {
		if c.continuation {
			continue
		}
		sb.WriteString(c.Style.Render(string(c.Rune)))
	}
	return sb.String()
}

// String returns the plain text of the whole buffer, rows joined by
// newlines.
func (b *Buffer) String() string {
	rows := make([]string, b.height)
	for y := range rows {
		rows[y] = b.Row(y)
	}
	return strings.Join(rows, "\n")
}
