package tui

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Range is a half-open interval [Start, End) of cell coordinates.
type Range struct {
	Start, End int
}

// Span returns the Range [start, start+n).
func Span(start, n int) Range {
	return Range{Start: start, End: start + n}
}

// Len returns the number of cells in r, never negative.
func (r Range) Len() int {
	if r.End < r.Start {
		return 0
	}
	return r.End - r.Start
}

// Empty reports whether r contains no cells.
func (r Range) Empty() bool { return r.Len() == 0 }

// Contains reports whether i lies within r.
func (r Range) Contains(i int) bool { return i >= r.Start && i < r.End }

// Intersect returns the overlap of r and o, or an empty range at r.Start.
func (r Range) Intersect(o Range) Range {
	out := Range{Start: max(r.Start, o.Start), End: min(r.End, o.End)}
	if out.End < out.Start {
		return Range{Start: r.Start, End: r.Start}
	}
	return out
}

func (r Range) String() string { return fmt.Sprintf("%d..%d", r.Start, r.End) }

// Region is the rectangle a context is assigned to draw into.
type Region struct {
	X, Y Range
}

// Width returns the number of columns in the region.
func (r Region) Width() int { return r.X.Len() }

// Height returns the number of rows in the region.
func (r Region) Height() int { return r.Y.Len() }

// Empty reports whether the region has no cells.
func (r Region) Empty() bool { return r.X.Empty() || r.Y.Empty() }

func (r Region) String() string { return fmt.Sprintf("(%s, %s)", r.X, r.Y) }

// Canvas is a rectangular view onto a Surface. Splitting and shrinking return
// new canvases and never modify the receiver. Coordinates passed to Print are
// relative to the canvas origin and output is clipped to its bounds.
type Canvas struct {
	s    Surface
	x, y Range
}

// NewCanvas returns a canvas covering x by y on s.
func NewCanvas(s Surface, x, y Range) Canvas {
	if x.End < x.Start {
		x.End = x.Start
	}
	if y.End < y.Start {
		y.End = y.Start
	}
	return Canvas{s: s, x: x, y: y}
}

// Surface returns the underlying surface.
func (c Canvas) Surface() Surface { return c.s }

// Region returns the absolute extent of the canvas.
func (c Canvas) Region() Region { return Region{X: c.x, Y: c.y} }

// Width returns the number of columns in the canvas.
func (c Canvas) Width() int { return c.x.Len() }

// Height returns the number of rows in the canvas.
func (c Canvas) Height() int { return c.y.Len() }

// SplitWidth divides the canvas at column at into a left part of width at and
// the remaining right part. at is clamped to [0, Width()].
func (c Canvas) SplitWidth(at int) (left, right Canvas) {
	at = clamp(at, 0, c.Width())
	mid := c.x.Start + at
	left = Canvas{s: c.s, x: Range{c.x.Start, mid}, y: c.y}
	right = Canvas{s: c.s, x: Range{mid, c.x.End}, y: c.y}
	return left, right
}

// SplitHeight divides the canvas at row at into a top part of height at and
// the remaining bottom part. at is clamped to [0, Height()].
func (c Canvas) SplitHeight(at int) (top, bottom Canvas) {
	at = clamp(at, 0, c.Height())
	mid := c.y.Start + at
	top = Canvas{s: c.s, x: c.x, y: Range{c.y.Start, mid}}
	bottom = Canvas{s: c.s, x: c.x, y: Range{mid, c.y.End}}
	return top, bottom
}

// Shrink returns the canvas inset by the given number of cells on each side.
// Insets larger than the canvas collapse it to an empty canvas rather than
// inverting it.
func (c Canvas) Shrink(top, bottom, left, right int) Canvas {
	x0 := c.x.Start + clamp(left, 0, c.Width())
	x1 := max(x0, c.x.End-clamp(right, 0, c.Width()))
	y0 := c.y.Start + clamp(top, 0, c.Height())
	y1 := max(y0, c.y.End-clamp(bottom, 0, c.Height()))
	return Canvas{s: c.s, x: Range{x0, x1}, y: Range{y0, y1}}
}

// Print writes text at canvas-relative (col, row), truncated to the canvas
// width. Writes outside the canvas are silently dropped.
func (c Canvas) Print(col, row int, text string) error {
	if row < 0 || row >= c.Height() || col < 0 || col >= c.Width() {
		return nil
	}
	text = runewidth.Truncate(text, c.Width()-col, "")
	if text == "" {
		return nil
	}
	if err := c.s.MoveTo(c.x.Start+col, c.y.Start+row); err != nil {
		return err
	}
	return c.s.WriteString(text)
}

// Fill paints every cell of the canvas with r.
func (c Canvas) Fill(r rune) error {
	w := c.Width()
	if w == 0 {
		return nil
	}
	rw := max(runewidth.RuneWidth(r), 1)
	line := strings.Repeat(string(r), w/rw)
	for row := range c.Height() {
		if err := c.Print(0, row, line); err != nil {
			return err
		}
	}
	return nil
}

// Clear fills the canvas with spaces.
func (c Canvas) Clear() error { return c.Fill(' ') }

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
