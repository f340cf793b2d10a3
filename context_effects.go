package tui

import (
	"reflect"

	"github.com/JakeHillion/stateful-tui/internal/debug"
)

// effectStore keeps a *A per slot so that nil interface args keep their type.
type effectStore struct {
	cursor int
	args   []any
}

func (s *effectStore) reset() { s.cursor = 0 }

func (s *effectStore) next() int {
	i := s.cursor
	s.cursor++
	if i > len(s.args) {
		invariant("effect store length %d and cursor %d desynced", len(s.args), i)
	}
	return i
}

// UseEffect schedules the Effect returned by effect(args) the first time this
// slot is visited and on every later render where args differs from the args
// of the previous render. effect itself runs synchronously inside Render;
// the Effect it returns runs later on the effect loop. A nil Effect is not
// scheduled.
func UseEffect[A comparable, P comparable](c *Context[P], effect func(A) Effect, args A) {
	c.mustRender("UseEffect")

	i := c.effects.next()
	if i == len(c.effects.args) {
		debug.Tracef("effect slot %d created", i)
		c.effects.args = append(c.effects.args, &args)
	} else {
		last, ok := c.effects.args[i].(*A)
		if !ok {
			invariant("UseEffect slot %d holds %T, called with %v", i, c.effects.args[i], reflect.TypeFor[*A]())
		}
		if *last == args {
			return
		}
		*last = args
	}

	debug.Debugf("effect slot %d scheduled", i)
	if e := effect(args); e != nil {
		c.emit(NewEffect{Effect: e})
	}
}
