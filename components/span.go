package components

import (
	"strings"

	tui "github.com/JakeHillion/stateful-tui"
	"github.com/JakeHillion/stateful-tui/internal/debug"
)

// Span draws its props as text starting at the top left corner of its
// region. Each line of the text takes one row; anything past the region is
// clipped.
type Span struct{}

var _ tui.Component[string] = Span{}

func (Span) Render(_ *tui.Context[string], text string) tui.Drawable {
	return Text(text)
}

// Text returns a drawable that prints text the way Span does.
func Text(text string) tui.Drawable {
	return tui.CanvasFunc(func(cv tui.Canvas) error {
		debug.Tracef("drew a span(%q)", text)
		for row, line := range strings.Split(text, "\n") {
			if row >= cv.Height() {
				break
			}
			if err := cv.Print(0, row, line); err != nil {
				return err
			}
		}
		return nil
	})
}
