package tui

import (
	"sync"
	"sync/atomic"
	"weak"

	"github.com/JakeHillion/stateful-tui/internal/debug"
)

// Context is the persistent state of one component instance: its props,
// assigned region, hook slots and child contexts.
//
// Exactly one owner keeps a Context alive: the runtime for the root, or the
// parent's child table for everything else. State setters only hold a weak
// reference, so a setter that outlives its component is a logged no-op.
type Context[P comparable] struct {
	mu sync.Mutex

	self     weak.Pointer[Context[P]]
	released atomic.Bool
	sink     EventSink

	component Component[P]
	props     P
	region    Region
	drawn     *drawnSnapshot[P]
	rendering bool

	state    stateStore
	effects  effectStore
	children childStore
}

type drawnSnapshot[P comparable] struct {
	props  P
	region Region
}

// NewContext creates the context for a root component. Events it produces,
// such as Redraw after a state change, are sent to sink.
func NewContext[P comparable](component Component[P], props P, sink EventSink) *Context[P] {
	if sink == nil {
		sink = discardSink{}
	}
	c := &Context[P]{
		sink:      sink,
		component: component,
		props:     props,
		children:  newChildStore(),
	}
	c.self = weak.Make(c)
	return c
}

// Props returns the current props.
func (c *Context[P]) Props() P {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.props
}

// Region returns the region assigned by the last UpdateSize.
func (c *Context[P]) Region() Region {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.region
}

// UpdateProps replaces the props and requests a redraw when they differ from
// the props used by the last draw.
func (c *Context[P]) UpdateProps(props P) {
	c.mu.Lock()
	c.props = props
	changed := c.drawn == nil || c.drawn.props != props
	c.mu.Unlock()
	if changed {
		c.emit(Redraw{})
	}
}

// UpdateSize assigns the drawing region and requests a redraw when it differs
// from the region used by the last draw.
func (c *Context[P]) UpdateSize(x, y Range) {
	debug.Debugf("component resized: (%s, %s)", x, y)
	c.mu.Lock()
	c.region = Region{X: x, Y: y}
	changed := c.drawn == nil || c.drawn.region != c.region
	c.mu.Unlock()
	if changed {
		c.emit(Redraw{})
	}
}

// Draw runs a render pass and returns the resulting drawable without
// painting it.
func (c *Context[P]) Draw() Drawable {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.draw()
}

// Render runs a render pass, clears the assigned region of s and paints the
// drawable into it.
func (c *Context[P]) Render(s Surface) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	d := c.draw()
	x, y := c.region.X, c.region.Y
	if err := NewCanvas(s, x, y).Clear(); err != nil {
		return ioErr("clear region", err)
	}
	if d == nil {
		return nil
	}
	return ioErr("draw", d.Draw(s, x, y))
}

// draw must be called with c.mu held.
func (c *Context[P]) draw() Drawable {
	if c.rendering {
		invariant("render of %T re-entered", c.component)
	}
	c.rendering = true
	defer func() { c.rendering = false }()

	c.state.reset()
	c.effects.reset()
	c.children.reset()

	d := c.component.Render(c, c.props)

	c.drawn = &drawnSnapshot[P]{props: c.props, region: c.region}
	c.state.drawn()
	c.children.prune()
	if d == nil {
		d = Empty
	}
	return d
}

func (c *Context[P]) mustRender(hook string) {
	if !c.rendering {
		invariant("%s called outside of Render", hook)
	}
}

func (c *Context[P]) emit(ev Event) {
	if err := c.sink.Send(ev); err != nil {
		debug.Warnf("attempted to send event to closed channel: %v", err)
	}
}

// release marks c and every descendant as destroyed. Setters captured from
// them become no-ops even before the garbage collector clears the weak
// references.
func (c *Context[P]) release() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.released.Swap(true) {
		return
	}
	c.children.releaseAll()
}

type discardSink struct{}

func (discardSink) Send(Event) error { return nil }
