package tui

// Event is a message consumed by the render loop. The set of events is closed:
// Redraw, Resized, NewEffect and Exit are the only implementations.
type Event interface {
	isEvent()
}

// Redraw asks the render loop to render the root context and flush.
type Redraw struct{}

// Resized carries the new terminal size in cells.
type Resized struct {
	Width, Height int
}

// NewEffect hands a scheduled effect to the effect loop.
type NewEffect struct {
	Effect Effect
}

// Exit stops the runtime.
type Exit struct{}

func (Redraw) isEvent()    {}
func (Resized) isEvent()   {}
func (NewEffect) isEvent() {}
func (Exit) isEvent()      {}

// Effect is a deferred unit of work. It is created synchronously by UseEffect
// and executed later, concurrently with rendering, by the effect loop.
type Effect func()
