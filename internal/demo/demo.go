// Package demo holds the example applications run by cmd/stui.
package demo

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	tui "github.com/JakeHillion/stateful-tui"
	"github.com/JakeHillion/stateful-tui/components"
	"github.com/JakeHillion/stateful-tui/internal/config"
	"github.com/JakeHillion/stateful-tui/internal/debug"
	"github.com/JakeHillion/stateful-tui/teahost"
)

// Pets starts with a count of zero and sets it to 104 from an effect keyed on
// the count. The count is shown in a span nested inside a border.
var Pets = tui.ComponentFunc[struct{}](func(c *tui.Context[struct{}], _ struct{}) tui.Drawable {
	count, setCount := tui.UseState(c, func() int { return 0 })
	tui.UseEffect(c, func(int) tui.Effect {
		return func() {
			debug.Infof("setting count to 104")
			setCount(104)
		}
	}, count)

	box := components.AllSides(components.BorderASCII)
	border := tui.AddChild(c, tui.Here(), components.Border{}, box)
	span := tui.AddChild(c, tui.Here(), components.Span{}, fmt.Sprintf("nested span (%d)", count))
	return components.Bordered(box, border, span)
})

var spinnerKinds = []struct {
	kind  components.SpinnerKind
	label string
}{
	{components.SpinnerLine, "line"},
	{components.SpinnerDot, "dot"},
	{components.SpinnerMiniDot, "mini dot"},
	{components.SpinnerPulse, "pulse"},
	{components.SpinnerPoints, "points"},
	{components.SpinnerMeter, "meter"},
}

// Spinners shows one spinner per frame set, each animating on its own
// effect chain.
var Spinners = tui.ComponentFunc[struct{}](func(c *tui.Context[struct{}], _ struct{}) tui.Drawable {
	rows := []tui.Drawable{components.Text("spinners (Ctrl+C to quit)")}
	for _, s := range spinnerKinds {
		props := components.SpinnerProps{Kind: s.kind, Label: s.label}
		rows = append(rows, tui.AddChild(c, tui.Keyed(s.label), components.Spinner{}, props))
	}

	box := components.AllSides(components.BorderRounded)
	border := tui.AddChild(c, tui.Here(), components.Border{}, box)
	return components.Bordered(box, border, components.Stack(rows...))
})

// CounterProps configures Counter.
type CounterProps struct {
	Interval time.Duration
}

// Counter counts up once per interval. The tick is an effect keyed on the
// count, so each increment schedules the next one.
var Counter = tui.ComponentFunc[CounterProps](func(c *tui.Context[CounterProps], p CounterProps) tui.Drawable {
	count, setCount := tui.UseState(c, func() int { return 0 })
	tui.UseEffect(c, func(n int) tui.Effect {
		return func() {
			time.Sleep(p.Interval)
			setCount(n + 1)
		}
	}, count)

	status := tui.AddChild(c, tui.Here(), components.Span{}, "Ctrl+C to quit")
	return components.Split(-1,
		components.Text(fmt.Sprintf("count: %d", count)),
		status,
	)
})

var demos = map[string]func(ctx context.Context, host config.Host, opts []tui.Option) error{
	"pets": func(ctx context.Context, host config.Host, opts []tui.Option) error {
		return run(ctx, host, Pets, struct{}{}, opts)
	},
	"spinners": func(ctx context.Context, host config.Host, opts []tui.Option) error {
		return run(ctx, host, Spinners, struct{}{}, opts)
	},
	"counter": func(ctx context.Context, host config.Host, opts []tui.Option) error {
		return run(ctx, host, Counter, CounterProps{Interval: time.Second}, opts)
	},
}

// Names returns the available demos in sorted order.
func Names() []string {
	names := make([]string, 0, len(demos))
	for name := range demos {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Run runs the named demo until it exits. opts apply to the terminal host
// only.
func Run(ctx context.Context, name string, host config.Host, opts ...tui.Option) error {
	d, ok := demos[name]
	if !ok {
		return fmt.Errorf("unknown demo %q (want one of %s)", name, strings.Join(Names(), ", "))
	}
	debug.Infof("running demo %s on %s", name, host)
	return d(ctx, host, opts)
}

func run[P comparable](ctx context.Context, host config.Host, root tui.Component[P], props P, opts []tui.Option) error {
	if host == config.HostBubbletea {
		return teahost.Run(ctx, root, props)
	}
	return tui.Spawn(ctx, root, props, opts...)
}
