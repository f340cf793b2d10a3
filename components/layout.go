package components

import tui "github.com/JakeHillion/stateful-tui"

// Overlay draws each drawable over the whole region in order, so later ones
// paint over earlier ones.
func Overlay(ds ...tui.Drawable) tui.Drawable {
	return tui.CanvasFunc(func(cv tui.Canvas) error {
		for _, d := range ds {
			if err := drawIn(cv, d); err != nil {
				return err
			}
		}
		return nil
	})
}

// Inset draws d into the region shrunk by the given number of cells.
func Inset(top, bottom, left, right int, d tui.Drawable) tui.Drawable {
	return tui.CanvasFunc(func(cv tui.Canvas) error {
		return drawIn(cv.Shrink(top, bottom, left, right), d)
	})
}

// Bordered draws border over the region and inner inside the edges p draws.
// border is normally the drawable returned by adding a Border child with p.
func Bordered(p BorderProps, border, inner tui.Drawable) tui.Drawable {
	top, bottom, left, right := p.Insets()
	return Overlay(border, Inset(top, bottom, left, right, inner))
}

// Split draws top into the first at rows and bottom into the rest. A
// negative at counts rows from the bottom edge.
func Split(at int, top, bottom tui.Drawable) tui.Drawable {
	return tui.CanvasFunc(func(cv tui.Canvas) error {
		t, b := cv.SplitHeight(resolve(at, cv.Height()))
		if err := drawIn(t, top); err != nil {
			return err
		}
		return drawIn(b, bottom)
	})
}

// SplitColumns draws left into the first at columns and right into the rest.
// A negative at counts columns from the right edge.
func SplitColumns(at int, left, right tui.Drawable) tui.Drawable {
	return tui.CanvasFunc(func(cv tui.Canvas) error {
		l, r := cv.SplitWidth(resolve(at, cv.Width()))
		if err := drawIn(l, left); err != nil {
			return err
		}
		return drawIn(r, right)
	})
}

// Stack gives each drawable one row, top to bottom. Drawables past the last
// row are not drawn.
func Stack(ds ...tui.Drawable) tui.Drawable {
	return tui.CanvasFunc(func(cv tui.Canvas) error {
		rest := cv
		for _, d := range ds {
			if rest.Height() == 0 {
				return nil
			}
			var row tui.Canvas
			row, rest = rest.SplitHeight(1)
			if err := drawIn(row, d); err != nil {
				return err
			}
		}
		return nil
	})
}

func resolve(at, size int) int {
	if at < 0 {
		return size + at
	}
	return at
}

func drawIn(cv tui.Canvas, d tui.Drawable) error {
	if d == nil {
		return nil
	}
	r := cv.Region()
	return d.Draw(cv.Surface(), r.X, r.Y)
}
