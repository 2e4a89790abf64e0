// Package flexbar implements a single-row status bar widget for terminal
// cell grids. A StatusBar holds an ordered list of styled sections; Render
// partitions a rectangular region between them according to a flex
// distribution strategy and writes each section's text into the target
// grid, truncating content that does not fit its slot.
//
// The widget is deliberately stateless: every Render call is a pure
// function of the bar's configuration, the region, and the target grid.
// The host owns the terminal lifecycle, the event loop, and the grid.
package flexbar

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/holt/flexbar/grid"
	"github.com/holt/flexbar/layout"
	"github.com/holt/flexbar/text"
)

// StatusBar is an ordered, fixed-cardinality list of sections plus layout
// configuration. Construct one with New, configure it with the chaining
// mutators, and draw it with Render once per redraw cycle.
type StatusBar struct {
	sections   []Section
	flex       layout.Flex
	spacing    int
	background *lipgloss.Style
}

// New creates a StatusBar with n default (empty) sections, FlexStart
// distribution, and a spacing of one column. A negative n is treated as
// zero.
func New(n int) *StatusBar {
	if n < 0 {
		n = 0
	}
	return &StatusBar{
		sections: make([]Section, n),
		flex:     layout.FlexStart,
		spacing:  1,
	}
}

// Len returns the number of sections.
func (b *StatusBar) Len() int { return len(b.sections) }

// Flex sets the distribution strategy. Returns the bar for chaining.
func (b *StatusBar) Flex(f layout.Flex) *StatusBar {
	b.flex = f
	return b
}

// Spacing sets the number of blank columns between adjacent sections.
// Strategies that compute their own gaps (FlexSpaceBetween, FlexSpaceAround,
// FlexRatio) ignore it. Negative values are clamped to zero. Returns the
// bar for chaining.
func (b *StatusBar) Spacing(n int) *StatusBar {
	if n < 0 {
		n = 0
	}
	b.spacing = n
	return b
}

// Background sets the style used to blank every cell of the bar row before
// sections are written, so stale content from a previous draw cannot bleed
// through. Without it, cells outside the section rects are left untouched.
// Returns the bar for chaining.
func (b *StatusBar) Background(style lipgloss.Style) *StatusBar {
	b.background = &style
	return b
}

// Section replaces the section at index i. The bar is returned for
// chaining; on an out-of-range index it is returned unchanged along with
// an *IndexOutOfBoundsError.
func (b *StatusBar) Section(i int, s Section) (*StatusBar, error) {
	if i < 0 || i >= len(b.sections) {
		return b, &IndexOutOfBoundsError{Index: i}
	}
	b.sections[i] = s
	return b, nil
}

// Content replaces the content of the section at index i, keeping its
// style and separators.
func (b *StatusBar) Content(i int, line text.Line) (*StatusBar, error) {
	if i < 0 || i >= len(b.sections) {
		return b, &IndexOutOfBoundsError{Index: i}
	}
	b.sections[i].content = line
	return b, nil
}

// Style sets the base style of the section at index i.
func (b *StatusBar) Style(i int, style lipgloss.Style) (*StatusBar, error) {
	if i < 0 || i >= len(b.sections) {
		return b, &IndexOutOfBoundsError{Index: i}
	}
	b.sections[i].style = style
	return b, nil
}

// Render writes the bar into the top row of area on g. An empty area
// performs no writes; sections whose slot has been squeezed to nothing are
// omitted, and content wider than its slot is truncated. Only cells inside
// area are touched, and repeated calls with the same inputs produce the
// same cells.
func (b *StatusBar) Render(area layout.Rect, g grid.CellGrid) {
	if area.Empty() {
		return
	}
	if b.background != nil {
		for x := area.X; x < area.Right(); x++ {
			g.SetCell(x, area.Y, ' ', *b.background)
		}
	}
	if len(b.sections) == 0 {
		return
	}

	widths := make([]int, len(b.sections))
	for i, s := range b.sections {
		widths[i] = s.Width()
	}

	rects := layout.Split(area, widths, b.flex, b.spacing)
	for i, r := range rects {
		b.sections[i].render(r, g)
	}
}
