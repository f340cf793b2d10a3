package tui

// Drawable is a rendered node. Draw paints it into the x by y rectangle of s;
// the runtime only passes ranges that lie inside the owning context's region.
type Drawable interface {
	Draw(s Surface, x, y Range) error
}

// DrawableFunc adapts an ordinary function to Drawable.
type DrawableFunc func(s Surface, x, y Range) error

// Draw calls f(s, x, y).
func (f DrawableFunc) Draw(s Surface, x, y Range) error { return f(s, x, y) }

// Empty draws nothing.
var Empty Drawable = DrawableFunc(func(Surface, Range, Range) error { return nil })

// CanvasFunc adapts a function that paints onto a Canvas to Drawable.
type CanvasFunc func(c Canvas) error

// Draw builds a canvas over x by y and calls f with it.
func (f CanvasFunc) Draw(s Surface, x, y Range) error {
	return f(NewCanvas(s, x, y))
}
