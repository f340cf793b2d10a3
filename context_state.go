package tui

import (
	"reflect"
	"weak"

	"github.com/JakeHillion/stateful-tui/internal/debug"
)

type stateSlot struct {
	value    any
	drawn    any
	hasDrawn bool
	setter   any
}

type stateStore struct {
	cursor int
	slots  []*stateSlot
}

func (s *stateStore) reset() { s.cursor = 0 }

func (s *stateStore) next() int {
	i := s.cursor
	s.cursor++
	if i > len(s.slots) {
		invariant("state store length %d and cursor %d desynced", len(s.slots), i)
	}
	return i
}

// drawn records the current value of every slot as the value on screen.
func (s *stateStore) drawn() {
	for _, slot := range s.slots {
		slot.drawn = slot.value
		slot.hasDrawn = true
	}
}

// UseState returns the value of the next state slot of c, and a setter for
// it. initial is only called the first time the slot is visited.
//
// The setter is safe to call from any goroutine, but not synchronously from
// within Render. It requests a redraw only when the new value differs from
// the value used by the last draw, and does nothing once the component has
// been removed.
func UseState[S comparable, P comparable](c *Context[P], initial func() S) (S, func(S)) {
	c.mustRender("UseState")

	i := c.state.next()
	if i == len(c.state.slots) {
		debug.Tracef("state slot %d created", i)
		c.state.slots = append(c.state.slots, &stateSlot{
			value:  initial(),
			setter: stateSetter[S](c.self, i),
		})
	}

	slot := c.state.slots[i]
	set, ok := slot.setter.(func(S))
	if !ok {
		invariant("UseState slot %d holds %T, called with %v", i, slot.value, reflect.TypeFor[S]())
	}
	// A nil interface value comes back as the zero S.
	v, _ := slot.value.(S)
	return v, set
}

func stateSetter[S comparable, P comparable](self weak.Pointer[Context[P]], i int) func(S) {
	return func(v S) {
		c := self.Value()
		if c == nil || c.released.Load() {
			debug.Warnf("state setter called after its component was removed")
			return
		}
		if c.setState(i, v) {
			c.emit(Redraw{})
		}
	}
}

// setState stores v in slot i and reports whether a redraw is needed.
func (c *Context[P]) setState(i int, v any) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if i >= len(c.state.slots) {
		invariant("state slot %d missing from store of length %d", i, len(c.state.slots))
	}
	slot := c.state.slots[i]
	slot.value = v
	return !slot.hasDrawn || slot.drawn != v
}
