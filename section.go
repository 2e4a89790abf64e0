package flexbar

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/holt/flexbar/grid"
	"github.com/holt/flexbar/layout"
	"github.com/holt/flexbar/text"
)

// Section is a single slot in a StatusBar: styled content plus optional
// decorative separators written immediately before and after it. A section
// has no identity beyond its index; mutators replace it wholesale.
//
// Builder methods return an updated copy, so sections compose without
// mutating their source:
//
//	sec := flexbar.NewSection("main").
//		PreSeparator(text.Raw(" | ")).
//		PostSeparator(text.Raw(" | "))
type Section struct {
	preSeparator  *text.Span
	content       text.Line
	postSeparator *text.Span
	style         lipgloss.Style
}

// NewSection creates a section with the given plain content and no
// separators.
func NewSection(content string) Section {
	return Section{content: text.Plain(content)}
}

// Content replaces the section content.
func (s Section) Content(line text.Line) Section {
	s.content = line
	return s
}

// Style sets the base style for the section. Span styles inherit from it;
// properties a span sets explicitly win. Styling is cosmetic and never
// affects layout.
func (s Section) Style(style lipgloss.Style) Section {
	s.style = style
	return s
}

// PreSeparator sets the decorative text written immediately before the
// content. Separators count toward the section's display width.
func (s Section) PreSeparator(sep text.Span) Section {
	s.preSeparator = &sep
	return s
}

// PostSeparator sets the decorative text written immediately after the
// content.
func (s Section) PostSeparator(sep text.Span) Section {
	s.postSeparator = &sep
	return s
}

// Width returns the total display width of the section in terminal columns,
// separators included.
func (s Section) Width() int {
	w := s.content.Width()
	if s.preSeparator != nil {
		w += s.preSeparator.Width()
	}
	if s.postSeparator != nil {
		w += s.postSeparator.Width()
	}
	return w
}

// render writes the section into its assigned rect: pre-separator, content,
// post-separator, left to right, stopping once the rect width is used up.
// A wide rune that would straddle the right edge is dropped whole rather
// than cut mid-glyph.
func (s Section) render(r layout.Rect, g grid.CellGrid) {
	if r.Empty() {
		return
	}
	x := r.X
	remaining := r.Width

	write := func(span text.Span) {
		style := span.Style.Inherit(s.style)
		for _, ru := range span.Content {
			w := runewidth.RuneWidth(ru)
			if w == 0 {
				// Zero-width runes (combining marks, controls) have
				// no cell of their own.
				continue
			}
			if w > remaining {
				remaining = 0
				return
			}
			g.SetCell(x, r.Y, ru, style)
			x += w
			remaining -= w
		}
	}

	if s.preSeparator != nil {
		write(*s.preSeparator)
	}
	for _, span := range s.content {
		if remaining == 0 {
			return
		}
		write(span)
	}
	if s.postSeparator != nil {
		write(*s.postSeparator)
	}
}
