package layout

import (
	"reflect"
	"testing"
)

func TestSplit(t *testing.T) {
	area := Rect{X: 0, Y: 0, Width: 16, Height: 1}

	tests := []struct {
		name    string
		area    Rect
		widths  []int
		flex    Flex
		spacing int
		want    []Rect
	}{
		{
			name:    "start packs left with spacing",
			area:    area,
			widths:  []int{5, 5},
			flex:    FlexStart,
			spacing: 1,
			want:    []Rect{{0, 0, 5, 1}, {6, 0, 5, 1}},
		},
		{
			name:    "start truncates straddling section",
			area:    Rect{0, 0, 8, 1},
			widths:  []int{5, 5},
			flex:    FlexStart,
			spacing: 1,
			want:    []Rect{{0, 0, 5, 1}, {6, 0, 2, 1}},
		},
		{
			name:    "start omits section past right edge",
			area:    Rect{0, 0, 5, 1},
			widths:  []int{5, 5},
			flex:    FlexStart,
			spacing: 1,
			want:    []Rect{{0, 0, 5, 1}, {5, 0, 0, 1}},
		},
		{
			name:    "end packs against right edge",
			area:    area,
			widths:  []int{5, 5},
			flex:    FlexEnd,
			spacing: 1,
			want:    []Rect{{5, 0, 5, 1}, {11, 0, 5, 1}},
		},
		{
			name:    "end overflow degrades to left packing",
			area:    Rect{0, 0, 8, 1},
			widths:  []int{5, 5},
			flex:    FlexEnd,
			spacing: 1,
			want:    []Rect{{0, 0, 5, 1}, {6, 0, 2, 1}},
		},
		{
			name:    "center splits remainder with extra column right",
			area:    area,
			widths:  []int{5, 5},
			flex:    FlexCenter,
			spacing: 1,
			want:    []Rect{{2, 0, 5, 1}, {8, 0, 5, 1}},
		},
		{
			name:    "center odd remainder stays right",
			area:    Rect{0, 0, 12, 1},
			widths:  []int{5, 5},
			flex:    FlexCenter,
			spacing: 1,
			want:    []Rect{{0, 0, 5, 1}, {6, 0, 5, 1}},
		},
		{
			name:   "space-between pins outer sections to edges",
			area:   area,
			widths: []int{5, 5},
			flex:   FlexSpaceBetween,
			want:   []Rect{{0, 0, 5, 1}, {11, 0, 5, 1}},
		},
		{
			name:   "space-between remainder widens earliest gaps",
			area:   area,
			widths: []int{3, 3, 3},
			flex:   FlexSpaceBetween,
			want:   []Rect{{0, 0, 3, 1}, {7, 0, 3, 1}, {13, 0, 3, 1}},
		},
		{
			name:    "space-between single section behaves like start",
			area:    area,
			widths:  []int{4},
			flex:    FlexSpaceBetween,
			spacing: 2,
			want:    []Rect{{0, 0, 4, 1}},
		},
		{
			name:   "space-around distributes outer gaps",
			area:   area,
			widths: []int{5, 5},
			flex:   FlexSpaceAround,
			want:   []Rect{{2, 0, 5, 1}, {9, 0, 5, 1}},
		},
		{
			name:   "space-around remainder goes to outer gaps first",
			area:   Rect{0, 0, 17, 1},
			widths: []int{5, 5},
			flex:   FlexSpaceAround,
			want:   []Rect{{3, 0, 5, 1}, {10, 0, 5, 1}},
		},
		{
			name:   "space-around two remainder columns go left then right",
			area:   Rect{0, 0, 18, 1},
			widths: []int{5, 5},
			flex:   FlexSpaceAround,
			want:   []Rect{{3, 0, 5, 1}, {10, 0, 5, 1}},
		},
		{
			name:   "ratio splits evenly with earliest columns absorbing remainder",
			area:   Rect{0, 0, 31, 1},
			widths: []int{5, 5},
			flex:   FlexRatio,
			want:   []Rect{{0, 0, 16, 1}, {16, 0, 15, 1}},
		},
		{
			name:   "ratio three columns",
			area:   area,
			widths: []int{1, 1, 1},
			flex:   FlexRatio,
			want:   []Rect{{0, 0, 6, 1}, {6, 0, 5, 1}, {11, 0, 5, 1}},
		},
		{
			name:    "offset area keeps row and origin",
			area:    Rect{X: 3, Y: 7, Width: 10, Height: 2},
			widths:  []int{4, 4},
			flex:    FlexStart,
			spacing: 1,
			want:    []Rect{{3, 7, 4, 1}, {8, 7, 4, 1}},
		},
		{
			name:    "negative spacing treated as zero",
			area:    area,
			widths:  []int{5, 5},
			flex:    FlexStart,
			spacing: -3,
			want:    []Rect{{0, 0, 5, 1}, {5, 0, 5, 1}},
		},
		{
			name:   "zero-width area yields nil",
			area:   Rect{0, 0, 0, 1},
			widths: []int{5},
			flex:   FlexStart,
			want:   nil,
		},
		{
			name:   "zero-height area yields nil",
			area:   Rect{0, 0, 16, 0},
			widths: []int{5},
			flex:   FlexStart,
			want:   nil,
		},
		{
			name:   "no widths yields nil",
			area:   area,
			widths: nil,
			flex:   FlexStart,
			want:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Split(tt.area, tt.widths, tt.flex, tt.spacing)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Split() = %v, want %v", got, tt.want)
			}
		})
	}
}

// TestSplitInvariants checks that every strategy produces ordered,
// pairwise-disjoint rects clamped inside the area, for widths that both fit
// and overflow.
func TestSplitInvariants(t *testing.T) {
	flexes := []Flex{FlexStart, FlexEnd, FlexCenter, FlexSpaceBetween, FlexSpaceAround, FlexRatio}
	areas := []Rect{
		{0, 0, 16, 1},
		{2, 3, 9, 1},
		{0, 0, 1, 1},
	}
	widthSets := [][]int{
		{5},
		{5, 5},
		{3, 7, 2},
		{10, 10, 10},
		{0, 4, 0},
	}

	for _, flex := range flexes {
		for _, area := range areas {
			for _, widths := range widthSets {
				rects := Split(area, widths, flex, 1)
				if len(rects) != len(widths) {
					t.Fatalf("flex %d area %v widths %v: got %d rects, want %d",
						flex, area, widths, len(rects), len(widths))
				}
				for i, r := range rects {
					if r.Height != 1 || r.Y != area.Y {
						t.Errorf("flex %d area %v widths %v: rect %d = %v, want single row at y=%d",
							flex, area, widths, i, r, area.Y)
					}
					if r.X < area.X || r.Right() > area.Right() || r.Width < 0 {
						t.Errorf("flex %d area %v widths %v: rect %d = %v escapes area",
							flex, area, widths, i, r)
					}
					if i > 0 && rects[i-1].Right() > r.X {
						t.Errorf("flex %d area %v widths %v: rect %d = %v overlaps %v",
							flex, area, widths, i, r, rects[i-1])
					}
				}
			}
		}
	}
}

func TestRectHelpers(t *testing.T) {
	r := Rect{X: 2, Y: 1, Width: 5, Height: 1}
	if got := r.Right(); got != 7 {
		t.Errorf("Right() = %d, want 7", got)
	}
	if r.Empty() {
		t.Error("Empty() = true for non-empty rect")
	}
	if !(Rect{X: 0, Y: 0, Width: 0, Height: 1}).Empty() {
		t.Error("Empty() = false for zero-width rect")
	}
	if !(Rect{X: 0, Y: 0, Width: 4, Height: 0}).Empty() {
		t.Error("Empty() = false for zero-height rect")
	}
}
