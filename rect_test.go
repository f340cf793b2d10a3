package tui

import "testing"

func TestRange(t *testing.T) {
	type tc struct {
		r        Range
		wantLen  int
		contains []int
		excludes []int
	}

	tests := map[string]tc{
		"standard": {r: Range{2, 5}, wantLen: 3, contains: []int{2, 4}, excludes: []int{1, 5}},
		"empty":    {r: Range{3, 3}, wantLen: 0, excludes: []int{3}},
		"inverted": {r: Range{5, 2}, wantLen: 0, excludes: []int{3}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.r.Len(); got != tt.wantLen {
				t.Errorf("Len() = %d, want %d", got, tt.wantLen)
			}
			for _, i := range tt.contains {
				if !tt.r.Contains(i) {
					t.Errorf("Contains(%d) = false, want true", i)
				}
			}
			for _, i := range tt.excludes {
				if tt.r.Contains(i) {
					t.Errorf("Contains(%d) = true, want false", i)
				}
			}
		})
	}
}

func TestRange_Intersect(t *testing.T) {
	if got, want := (Range{0, 10}).Intersect(Range{5, 20}), (Range{5, 10}); got != want {
		t.Errorf("Intersect() = %v, want %v", got, want)
	}
	if got := (Range{0, 3}).Intersect(Range{5, 8}); !got.Empty() {
		t.Errorf("Intersect() of disjoint ranges = %v, want empty", got)
	}
}

func TestCanvas_Split(t *testing.T) {
	c := NewCanvas(nil, Span(2, 10), Span(1, 4))

	type tc struct {
		at          int
		height      bool
		first, rest Region
	}

	tests := map[string]tc{
		"width in middle": {
			at:    3,
			first: Region{X: Range{2, 5}, Y: Range{1, 5}},
			rest:  Region{X: Range{5, 12}, Y: Range{1, 5}},
		},
		"width clamped high": {
			at:    50,
			first: Region{X: Range{2, 12}, Y: Range{1, 5}},
			rest:  Region{X: Range{12, 12}, Y: Range{1, 5}},
		},
		"width clamped low": {
			at:    -4,
			first: Region{X: Range{2, 2}, Y: Range{1, 5}},
			rest:  Region{X: Range{2, 12}, Y: Range{1, 5}},
		},
		"height in middle": {
			at:     1,
			height: true,
			first:  Region{X: Range{2, 12}, Y: Range{1, 2}},
			rest:   Region{X: Range{2, 12}, Y: Range{2, 5}},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var a, b Canvas
			if tt.height {
				a, b = c.SplitHeight(tt.at)
			} else {
				a, b = c.SplitWidth(tt.at)
			}
			if a.Region() != tt.first || b.Region() != tt.rest {
				t.Errorf("split(%d) = %v, %v, want %v, %v", tt.at, a.Region(), b.Region(), tt.first, tt.rest)
			}
		})
	}

	if c.Region() != (Region{X: Range{2, 12}, Y: Range{1, 5}}) {
		t.Errorf("splitting modified the original canvas: %v", c.Region())
	}
}

func TestCanvas_Shrink(t *testing.T) {
	c := NewCanvas(nil, Span(0, 10), Span(0, 6))

	type tc struct {
		top, bottom, left, right int
		want                     Region
	}

	tests := map[string]tc{
		"border inset": {1, 1, 1, 1, Region{X: Range{1, 9}, Y: Range{1, 5}}},
		"asymmetric":   {0, 2, 3, 0, Region{X: Range{3, 10}, Y: Range{0, 4}}},
		"oversized":    {4, 4, 7, 7, Region{X: Range{7, 7}, Y: Range{4, 4}}},
		"negative":     {-1, -1, -1, -1, Region{X: Range{0, 10}, Y: Range{0, 6}}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := c.Shrink(tt.top, tt.bottom, tt.left, tt.right)
			if got.Region() != tt.want {
				t.Errorf("Shrink(%d, %d, %d, %d) = %v, want %v",
					tt.top, tt.bottom, tt.left, tt.right, got.Region(), tt.want)
			}
			if got.Width() < 0 || got.Height() < 0 {
				t.Errorf("Shrink produced negative size %dx%d", got.Width(), got.Height())
			}
		})
	}
}

func TestCanvas_PrintClips(t *testing.T) {
	g := NewGrid(10, 3)
	c := NewCanvas(g, Span(2, 4), Span(1, 1))

	c.Print(0, 0, "abcdefgh")
	c.Print(1, 1, "outside")
	c.Print(-1, 0, "outside")
	if got, want := g.String(), "\n  abcd\n"; got != want {
		t.Errorf("screen = %q, want %q", got, want)
	}
}

func TestCanvas_PrintWide(t *testing.T) {
	g := NewGrid(10, 1)
	c := NewCanvas(g, Span(0, 3), Span(0, 1))
	c.Print(0, 0, "世界")
	if got, want := g.Line(0), "世"; got != want {
		t.Errorf("Line(0) = %q, want %q", got, want)
	}
}

func TestCanvas_Fill(t *testing.T) {
	g := NewGrid(5, 3)
	NewCanvas(g, Span(1, 3), Span(1, 2)).Fill('#')
	if got, want := g.String(), "\n ###\n ###"; got != want {
		t.Errorf("screen = %q, want %q", got, want)
	}
}
