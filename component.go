package tui

// Component renders one instance of a UI element. Render is called with the
// instance's persistent Context and its current props; hooks may only be
// used during that call. Implementations must be safe to share between
// goroutines.
type Component[P comparable] interface {
	Render(c *Context[P], props P) Drawable
}

// ComponentFunc adapts an ordinary function to Component.
type ComponentFunc[P comparable] func(c *Context[P], props P) Drawable

// Render calls f(c, props).
func (f ComponentFunc[P]) Render(c *Context[P], props P) Drawable { return f(c, props) }
