package tui

import (
	"fmt"
	"reflect"
	"runtime"

	"github.com/JakeHillion/stateful-tui/internal/debug"
)

// ChildID identifies a child component among its siblings. Children keep
// their state across renders for as long as their parent adds them under the
// same ChildID on every render.
type ChildID struct {
	File string
	Line int
	Key  string

	// pc tells apart call sites that share a line.
	pc uintptr
}

// Here returns a ChildID for the caller's call site.
func Here() ChildID {
	pc, file, line, _ := runtime.Caller(1)
	return ChildID{File: file, Line: line, pc: pc}
}

// Keyed returns a ChildID for the caller's call site qualified by key, for
// children added in a loop.
func Keyed(key string) ChildID {
	pc, file, line, _ := runtime.Caller(1)
	return ChildID{File: file, Line: line, Key: key, pc: pc}
}

// ID returns a ChildID that does not depend on source position.
func ID(key string) ChildID { return ChildID{Key: key} }

func (id ChildID) String() string {
	if id.File == "" {
		return id.Key
	}
	if id.Key == "" {
		return fmt.Sprintf("%s:%d", id.File, id.Line)
	}
	return fmt.Sprintf("%s:%d[%s]", id.File, id.Line, id.Key)
}

// child is a type-erased entry in a child table. AddChild recovers the
// concrete *Context[P] to check that the props it is handed are its own type.
type child interface {
	release()
}

type childStore struct {
	entries map[ChildID]child
	live    map[ChildID]struct{}
}

func newChildStore() childStore {
	return childStore{
		entries: make(map[ChildID]child),
		live:    make(map[ChildID]struct{}),
	}
}

func (s *childStore) reset() { clear(s.live) }

// prune releases every child that was not added during the last render.
func (s *childStore) prune() {
	for id, ch := range s.entries {
		if _, ok := s.live[id]; ok {
			continue
		}
		debug.Debugf("removing child: %s", id)
		ch.release()
		delete(s.entries, id)
	}
}

func (s *childStore) releaseAll() {
	for id, ch := range s.entries {
		ch.release()
		delete(s.entries, id)
	}
	clear(s.live)
}

// AddChild renders the child identified by id and returns its drawable for
// composition into the caller's output. The child context is created on the
// first call for id and reused, with its state, on later renders. Its props
// and region are refreshed without a separate redraw because it is drawn
// right away. A child is removed when a render of c does not add it.
func AddChild[CP comparable, P comparable](c *Context[P], id ChildID, component Component[CP], props CP) Drawable {
	c.mustRender("AddChild")

	if _, dup := c.children.live[id]; dup {
		invariant("child %s added twice in one render", id)
	}
	c.children.live[id] = struct{}{}

	ch, ok := c.children.entries[id]
	if !ok {
		debug.Debugf("adding child: %s", id)
		ctx := NewContext(component, props, c.sink)
		c.children.entries[id] = ctx
		ch = ctx
	}
	ctx, ok := ch.(*Context[CP])
	if !ok {
		invariant("child props %v reused where %T was added", reflect.TypeFor[CP](), ch)
	}
	return ctx.redraw(component, props, c.region)
}

// LookupChild returns the live child context stored under id.
func LookupChild[CP comparable, P comparable](c *Context[P], id ChildID) (*Context[CP], bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	ch, ok := c.children.entries[id].(*Context[CP])
	return ch, ok
}

// ChildCount returns the number of live children of c.
func (c *Context[P]) ChildCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.children.entries)
}

func (c *Context[P]) redraw(component any, props P, region Region) Drawable {
	if reflect.TypeOf(component) != reflect.TypeOf(c.component) {
		invariant("child component %T reused where %T was added", component, c.component)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.props = props
	c.region = region
	return c.draw()
}
