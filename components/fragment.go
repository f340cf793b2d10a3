package components

import tui "github.com/JakeHillion/stateful-tui"

// Fragment blanks its region.
type Fragment struct{}

var _ tui.Component[struct{}] = Fragment{}

func (Fragment) Render(*tui.Context[struct{}], struct{}) tui.Drawable {
	return Blank
}

// Blank fills whatever region it is drawn into with spaces.
var Blank tui.Drawable = tui.CanvasFunc(tui.Canvas.Clear)
