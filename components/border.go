package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	tui "github.com/JakeHillion/stateful-tui"
)

// BorderStyle selects the glyphs a Border is drawn with.
type BorderStyle int

const (
	// BorderASCII draws horizontal edges, corners included, with '-' and
	// vertical edges with '|'.
	BorderASCII BorderStyle = iota
	// BorderNormal uses single-line box-drawing characters (─, │, ┌, etc.)
	BorderNormal
	// BorderRounded uses rounded corners (╭, ╮, ╰, ╯)
	BorderRounded
	// BorderThick uses heavy box-drawing characters (━, ┃, ┏, etc.)
	BorderThick
	// BorderDouble uses double-line box-drawing characters (═, ║, ╔, etc.)
	BorderDouble
)

var asciiBorder = lipgloss.Border{
	Top: "-", Bottom: "-", Left: "|", Right: "|",
	TopLeft: "-", TopRight: "-", BottomLeft: "-", BottomRight: "-",
}

// Glyphs returns the lipgloss border definition for the style. Unknown
// styles fall back to BorderASCII.
func (b BorderStyle) Glyphs() lipgloss.Border {
	switch b {
	case BorderNormal:
		return lipgloss.NormalBorder()
	case BorderRounded:
		return lipgloss.RoundedBorder()
	case BorderThick:
		return lipgloss.ThickBorder()
	case BorderDouble:
		return lipgloss.DoubleBorder()
	default:
		return asciiBorder
	}
}

func (b BorderStyle) String() string {
	switch b {
	case BorderASCII:
		return "ascii"
	case BorderNormal:
		return "normal"
	case BorderRounded:
		return "rounded"
	case BorderThick:
		return "thick"
	case BorderDouble:
		return "double"
	default:
		return "unknown"
	}
}

// BorderProps selects which edges of the region a Border draws.
type BorderProps struct {
	Top, Bottom, Left, Right bool
	Style                    BorderStyle
}

// AllSides returns props drawing every edge in style.
func AllSides(style BorderStyle) BorderProps {
	return BorderProps{Top: true, Bottom: true, Left: true, Right: true, Style: style}
}

// Insets returns how many cells the border takes from each side.
func (p BorderProps) Insets() (top, bottom, left, right int) {
	return b2i(p.Top), b2i(p.Bottom), b2i(p.Left), b2i(p.Right)
}

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}

// Border draws the edges of its region and blanks the inside.
type Border struct{}

var _ tui.Component[BorderProps] = Border{}

func (Border) Render(_ *tui.Context[BorderProps], p BorderProps) tui.Drawable {
	return tui.CanvasFunc(func(cv tui.Canvas) error { return drawBorder(cv, p) })
}

func drawBorder(cv tui.Canvas, p BorderProps) error {
	w, h := cv.Width(), cv.Height()
	if w == 0 || h == 0 {
		return nil
	}
	g := p.Style.Glyphs()

	for row := range h {
		switch {
		case row == 0 && p.Top:
			if err := cv.Print(0, row, edge(w, g.Top, p.Left, g.TopLeft, p.Right, g.TopRight)); err != nil {
				return err
			}
		case row == h-1 && p.Bottom:
			if err := cv.Print(0, row, edge(w, g.Bottom, p.Left, g.BottomLeft, p.Right, g.BottomRight)); err != nil {
				return err
			}
		default:
			if p.Left {
				if err := cv.Print(0, row, g.Left); err != nil {
					return err
				}
			}
			if p.Right {
				if err := cv.Print(w-1, row, g.Right); err != nil {
					return err
				}
			}
		}
	}

	top, bottom, left, right := p.Insets()
	return cv.Shrink(top, bottom, left, right).Clear()
}

// edge builds a horizontal edge of width w, swapping in the corner glyphs
// where the adjoining vertical edge is drawn.
func edge(w int, fill string, hasLeft bool, leftCorner string, hasRight bool, rightCorner string) string {
	cells := make([]string, w)
	for i := range cells {
		cells[i] = fill
	}
	if hasLeft {
		cells[0] = leftCorner
	}
	if hasRight {
		cells[w-1] = rightCorner
	}
	return strings.Join(cells, "")
}
