package tui

import (
	"context"
	"errors"
	"io"
	"runtime"
	rtdebug "runtime/debug"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/JakeHillion/stateful-tui/internal/debug"
)

// Spawn runs root on the process terminal until Ctrl+C, end of input, ctx
// cancellation or a fatal I/O error. The terminal is restored before Spawn
// returns. If a loop panicked, the panic is re-raised as a *PanicError after
// the terminal has been restored.
func Spawn[P comparable](ctx context.Context, root Component[P], props P, opts ...Option) (err error) {
	t, err := New(opts...)
	if err != nil {
		return err
	}
	if err := t.Setup(); err != nil {
		return err
	}
	defer func() {
		if cerr := t.Close(); cerr != nil {
			err = errors.Join(err, cerr)
		}
	}()

	err = Run(ctx, t, root, props)

	var pe *PanicError
	if errors.As(err, &pe) {
		t.Close()
		panic(pe)
	}
	return err
}

// Run drives root on t, which must already be set up. It starts the input,
// bridge, effect and render loops and returns when all of them have exited.
// The first loop error is returned; the others are shut down by closing
// their channels.
func Run[P comparable](ctx context.Context, t *Tui, root Component[P], props P) error {
	events := NewSyncChannel(t.eventBuffer)
	queue := NewQueue[Event]()
	effects := NewQueue[Effect]()
	rootCtx := NewContext(root, props, events)

	var once sync.Once
	shutdown := func() {
		once.Do(func() {
			debug.Debugf("shutting down runtime loops")
			events.Close()
			queue.Close()
			effects.Close()
			if t.reader != nil {
				t.reader.Cancel()
			}
		})
	}
	defer shutdown()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(guard("bridge", shutdown, func() error {
		Bridge(events, queue)
		return nil
	}))
	g.Go(guard("input", shutdown, func() error {
		return t.inputLoop(queue)
	}))
	g.Go(guard("effects", shutdown, func() error {
		return RunEffects(effects, t.maxEffects)
	}))
	g.Go(guard("render", shutdown, func() error {
		defer shutdown()
		return renderLoop(gctx, t, rootCtx, queue, effects)
	}))
	return g.Wait()
}

// guard recovers panics from a loop and triggers shutdown when it fails.
func guard(name string, shutdown func(), loop func() error) func() error {
	return func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = &PanicError{Loop: name, Value: r, Stack: rtdebug.Stack()}
			}
			if err != nil {
				debug.Warnf("%s loop failed: %v", name, err)
				shutdown()
			}
		}()
		return loop()
	}
}

// inputLoop translates terminal input into runtime events. Resizes become
// Resized, Ctrl+C and end of input become Exit, and other keys are dropped.
func (t *Tui) inputLoop(queue *Queue[Event]) error {
	if t.reader == nil {
		return nil
	}
	for {
		in, err := t.reader.ReadEvent()
		switch {
		case errors.Is(err, ErrReaderClosed):
			return nil
		case errors.Is(err, io.EOF):
			debug.Infof("input closed, exiting")
			queue.Push(Exit{})
			return nil
		case err != nil:
			return ioErr("read input", err)
		}

		var ev Event
		switch in := in.(type) {
		case ResizeEvent:
			ev = Resized{Width: in.Width, Height: in.Height}
		case KeyEvent:
			if in.IsInterrupt() {
				debug.Infof("received Ctrl+C, exiting")
				ev = Exit{}
			}
		}
		if ev == nil {
			continue
		}
		if !queue.Push(ev) {
			return nil
		}
	}
}

// screenClearer is implemented by devices that can blank the whole screen.
type screenClearer interface {
	Clear() error
}

// renderLoop is the only goroutine that renders the root context. Events are
// handled strictly in arrival order.
func renderLoop[P comparable](ctx context.Context, t *Tui, root *Context[P], queue *Queue[Event], effects *Queue[Effect]) error {
	w, h, err := t.device.Size()
	if err != nil {
		return ioErr("get terminal size", err)
	}
	root.UpdateSize(Span(0, w), Span(0, h))

	for {
		ev, ok := queue.Pop(ctx)
		if !ok {
			return nil
		}
		switch ev := ev.(type) {
		case Exit:
			debug.Infof("exit requested")
			return nil
		case Redraw:
			if err := root.Render(t.device); err != nil {
				return err
			}
			if err := t.device.Flush(); err != nil {
				return ioErr("flush", err)
			}
		case Resized:
			debug.Debugf("terminal resized to %dx%d", ev.Width, ev.Height)
			region := Region{X: Span(0, ev.Width), Y: Span(0, ev.Height)}
			if root.Region() == region {
				break
			}
			// Content outside the new region would otherwise linger.
			if sc, ok := t.device.(screenClearer); ok {
				if err := sc.Clear(); err != nil {
					return ioErr("clear screen", err)
				}
			}
			root.UpdateSize(region.X, region.Y)
		case NewEffect:
			if !effects.Push(ev.Effect) {
				debug.Warnf("effect dropped: effect loop has stopped")
			}
		}
		runtime.Gosched()
	}
}
