package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

// cell is one character cell. Wide characters occupy two cells; the second is
// a continuation with width 0.
type cell struct {
	r     rune
	width uint8
}

var blank = cell{r: ' ', width: 1}

func (c cell) continuation() bool { return c.width == 0 }

// Grid is an in-memory Surface: a fixed-size grid of cells with a cursor.
// Escape sequences in written text are discarded, and text reaching the right
// edge is clipped rather than wrapped. Grid is not safe for concurrent use.
type Grid struct {
	width, height int
	cells         []cell
	cx, cy        int
}

var _ Surface = (*Grid)(nil)

// NewGrid returns a blank grid of the given size.
func NewGrid(width, height int) *Grid {
	g := &Grid{}
	g.Resize(width, height)
	return g
}

// Size returns the grid dimensions.
func (g *Grid) Size() (width, height int) { return g.width, g.height }

// Resize changes the dimensions, keeping content in the overlapping area.
func (g *Grid) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	cells := make([]cell, width*height)
	for i := range cells {
		cells[i] = blank
	}
	for y := range min(height, g.height) {
		for x := range min(width, g.width) {
			cells[y*width+x] = g.cells[y*g.width+x]
		}
	}
	// A wide character cut in half at the new right edge becomes a blank.
	if width < g.width && width > 0 {
		for y := range height {
			if c := cells[y*width+width-1]; c.width == 2 {
				cells[y*width+width-1] = blank
			}
		}
	}
	g.width, g.height, g.cells = width, height, cells
}

// Clear blanks every cell and homes the cursor.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = blank
	}
	g.cx, g.cy = 0, 0
}

// MoveTo positions the cursor. Positions outside the grid are allowed; text
// written there is dropped.
func (g *Grid) MoveTo(x, y int) error {
	g.cx, g.cy = x, y
	return nil
}

// Cursor returns the current cursor position.
func (g *Grid) Cursor() (x, y int) { return g.cx, g.cy }

// WriteString writes s at the cursor and advances it by the display width.
func (g *Grid) WriteString(s string) error {
	for _, r := range ansi.Strip(s) {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		g.setRune(g.cx, g.cy, r, w)
		g.cx += w
	}
	return nil
}

func (g *Grid) in(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

func (g *Grid) at(x, y int) cell { return g.cells[y*g.width+x] }

func (g *Grid) set(x, y int, c cell) {
	if g.in(x, y) {
		g.cells[y*g.width+x] = c
	}
}

// unwide blanks the whole wide character covering (x, y), if any.
func (g *Grid) unwide(x, y int) {
	if !g.in(x, y) {
		return
	}
	switch c := g.at(x, y); {
	case c.continuation():
		g.set(x-1, y, blank)
		g.set(x, y, blank)
	case c.width == 2:
		g.set(x, y, blank)
		g.set(x+1, y, blank)
	}
}

func (g *Grid) setRune(x, y int, r rune, w int) {
	if !g.in(x, y) {
		return
	}
	g.unwide(x, y)
	if w == 2 {
		if x+1 >= g.width {
			g.set(x, y, blank)
			return
		}
		g.unwide(x+1, y)
		g.set(x, y, cell{r: r, width: 2})
		g.set(x+1, y, cell{width: 0})
		return
	}
	g.set(x, y, cell{r: r, width: 1})
}

// Rune returns the character at (x, y), or 0 outside the grid or on the
// second half of a wide character.
func (g *Grid) Rune(x, y int) rune {
	if !g.in(x, y) {
		return 0
	}
	return g.at(x, y).r
}

// Line returns row y with trailing spaces removed.
func (g *Grid) Line(y int) string {
	if y < 0 || y >= g.height {
		return ""
	}
	var sb strings.Builder
	for x := range g.width {
		c := g.at(x, y)
		if c.continuation() {
			continue
		}
		sb.WriteRune(c.r)
	}
	return strings.TrimRight(sb.String(), " ")
}

// Lines returns every row with trailing spaces removed.
func (g *Grid) Lines() []string {
	lines := make([]string, g.height)
	for y := range lines {
		lines[y] = g.Line(y)
	}
	return lines
}

// String returns the rows joined by newlines with trailing spaces removed.
func (g *Grid) String() string {
	return strings.Join(g.Lines(), "\n")
}

// GoString helps when a Grid shows up in test failure output.
func (g *Grid) GoString() string {
	return fmt.Sprintf("Grid(%dx%d)\n%s", g.width, g.height, g.String())
}
