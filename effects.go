package tui

import (
	"context"
	rtdebug "runtime/debug"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/JakeHillion/stateful-tui/internal/debug"
)

// RunEffects executes effects popped from q until q is closed, then waits for
// every running effect to finish. At most limit effects run at once; a limit
// of zero or less is unbounded. A panicking effect stops the loop: no further
// effects are started and the panic is returned as a *PanicError once the
// running ones have finished.
func RunEffects(q *Queue[Effect], limit int) error {
	g, ctx := errgroup.WithContext(context.Background())
	if limit > 0 {
		g.SetLimit(limit)
	}
	var pending atomic.Int64
	for {
		e, ok := q.Pop(ctx)
		if !ok {
			break
		}
		n := pending.Add(1)
		debug.Tracef("effect scheduled, %d pending", n)
		g.Go(func() error {
			defer pending.Add(-1)
			return runEffect(e)
		})
	}
	debug.Tracef("effect loop stopping, draining %d effects", pending.Load())
	return g.Wait()
}

func runEffect(e Effect) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &PanicError{Loop: "effect", Value: r, Stack: rtdebug.Stack()}
		}
	}()
	e()
	return nil
}
