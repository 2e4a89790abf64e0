// Package text provides styled spans and lines with terminal display-width
// measurement. Width counts terminal columns, not runes or bytes: CJK
// characters and most emoji occupy two columns.
package text

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Span is a run of text rendered with a single style.
type Span struct {
	Content string
	Style   lipgloss.Style
}

// Raw creates an unstyled span.
func Raw(s string) Span {
	return Span{Content: s}
}

// Styled creates a span with the given style.
func Styled(s string, style lipgloss.Style) Span {
	return Span{Content: s, Style: style}
}

// Width returns the display width of the span in terminal columns.
func (s Span) Width() int {
	return runewidth.StringWidth(s.Content)
}

// Line is an ordered sequence of styled spans forming one row of text.
type Line []Span

// Plain creates a single-span line without styling.
func Plain(s string) Line {
	return Line{Raw(s)}
}

// Width returns the total display width of the line.
func (l Line) Width() int {
	total := 0
	for _, s := range l {
		total += s.Width()
	}
	return total
}

// String returns the line's content without styling.
func (l Line) String() string {
	var b strings.Builder
	for _, s := range l {
		b.WriteString(s.Content)
	}
	return b.String()
}
