// Package layout computes horizontal partitions of a rectangular region.
// Given an ordered list of section widths, a flex strategy, and an
// inter-section spacing, Split produces one single-row sub-rectangle per
// section, clamped to the region.
package layout

// Rect is a rectangular region of a cell grid.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Right returns the first column past the right edge.
func (r Rect) Right() int { return r.X + r.Width }

// Empty reports whether the rect has no area.
func (r Rect) Empty() bool { return r.Width <= 0 || r.Height <= 0 }

// Flex selects how sections are distributed across a region.
type Flex int

const (
	// FlexStart packs sections against the left edge, separated by the
	// configured spacing.
	FlexStart Flex = iota
	// FlexEnd packs sections against the right edge.
	FlexEnd
	// FlexCenter centers the packed sections within the region. An odd
	// remainder leaves the extra column on the right.
	FlexCenter
	// FlexSpaceBetween pins the first section to the left edge and the
	// last to the right, spreading the free space across the interior
	// gaps. With a single section it behaves like FlexStart.
	FlexSpaceBetween
	// FlexSpaceAround spreads the free space across all gaps, outer gaps
	// included. Remainder columns go to the outer gaps first.
	FlexSpaceAround
	// FlexRatio divides the region into equal-width columns regardless of
	// content width, earliest columns absorbing the remainder. Spacing is
	// ignored.
	FlexRatio
)

// Split partitions area into one sub-rect per entry in widths. The result
// has the same length as widths; rects are pairwise disjoint, ordered
// left to right, one row tall (the region's top row), and clamped inside
// area. A section pushed entirely past an edge gets a zero-width rect.
// An empty area or an empty widths slice yields nil.
//
// Spacing applies to FlexStart, FlexEnd, and FlexCenter; the remaining
// strategies compute their own gaps.
func Split(area Rect, widths []int, flex Flex, spacing int) []Rect {
	if area.Empty() || len(widths) == 0 {
		return nil
	}
	if spacing < 0 {
		spacing = 0
	}

	switch flex {
	case FlexEnd:
		start := area.Right() - total(widths, spacing)
		if start < area.X {
			start = area.X
		}
		return pack(area, widths, start, spacing)
	case FlexCenter:
		start := area.X + (area.Width-total(widths, spacing))/2
		if start < area.X {
			start = area.X
		}
		return pack(area, widths, start, spacing)
	case FlexSpaceBetween:
		return splitSpaceBetween(area, widths, spacing)
	case FlexSpaceAround:
		return splitSpaceAround(area, widths)
	case FlexRatio:
		return splitRatio(area, len(widths))
	default:
		return pack(area, widths, area.X, spacing)
	}
}

// pack places sections left to right from start, separated by spacing,
// clamping every rect to the area.
func pack(area Rect, widths []int, start, spacing int) []Rect {
	rects := make([]Rect, 0, len(widths))
	x := start
	for _, w := range widths {
		rects = append(rects, clamp(area, x, w))
		x += w + spacing
	}
	return rects
}

func splitSpaceBetween(area Rect, widths []int, spacing int) []Rect {
	n := len(widths)
	if n == 1 {
		return pack(area, widths, area.X, spacing)
	}
	free := area.Width - total(widths, 0)
	if free < 0 {
		free = 0
	}
	gap := free / (n - 1)
	rem := free % (n - 1)

	rects := make([]Rect, 0, n)
	x := area.X
	for i, w := range widths {
		rects = append(rects, clamp(area, x, w))
		x += w + gap
		// Remainder columns widen the earliest gaps.
		if i < rem {
			x++
		}
	}
	return rects
}

func splitSpaceAround(area Rect, widths []int) []Rect {
	n := len(widths)
	free := area.Width - total(widths, 0)
	if free < 0 {
		free = 0
	}
	gaps := make([]int, n+1)
	for i := range gaps {
		gaps[i] = free / (n + 1)
	}
	// Remainder columns go to the outer gaps first, alternating between
	// the leftmost and rightmost unserved gap.
	lo, hi := 0, n
	for i := 0; i < free%(n+1); i++ {
		if i%2 == 0 {
			gaps[lo]++
			lo++
		} else {
			gaps[hi]++
			hi--
		}
	}

	rects := make([]Rect, 0, n)
	x := area.X + gaps[0]
	for i, w := range widths {
		rects = append(rects, clamp(area, x, w))
		x += w + gaps[i+1]
	}
	return rects
}

func splitRatio(area Rect, n int) []Rect {
	colWidth := area.Width / n
	rem := area.Width % n
	rects := make([]Rect, 0, n)
	x := area.X
	for i := 0; i < n; i++ {
		w := colWidth
		if i < rem {
			w++
		}
		rects = append(rects, Rect{X: x, Y: area.Y, Width: w, Height: 1})
		x += w
	}
	return rects
}

// clamp builds the single-row rect at column x with the given width,
// restricted to the horizontal bounds of area.
func clamp(area Rect, x, width int) Rect {
	if x < area.X {
		width -= area.X - x
		x = area.X
	}
	if x > area.Right() {
		x = area.Right()
	}
	if x+width > area.Right() {
		width = area.Right() - x
	}
	if width < 0 {
		width = 0
	}
	return Rect{X: x, Y: area.Y, Width: width, Height: 1}
}

func total(widths []int, spacing int) int {
	sum := spacing * (len(widths) - 1)
	for _, w := range widths {
		sum += w
	}
	return sum
}
