// Package tui is a reactive runtime for text terminals.
//
// Components are plain values with a Render method. Each one receives a
// persistent, per-instance *Context and returns a Drawable. Inside Render a
// component may use the hooks UseState, UseEffect and AddChild. These give it
// local state, effects that run when their arguments change, and keyed child
// components.
//
// A minimal program:
//
//	type counter struct{}
//
//	func (counter) Render(c *tui.Context[struct{}], _ struct{}) tui.Drawable {
//	    n, setN := tui.UseState(c, func() int { return 0 })
//	    tui.UseEffect(c, func(n int) tui.Effect {
//	        return func() {
//	            time.Sleep(time.Second)
//	            setN(n + 1)
//	        }
//	    }, n)
//	    return components.Text(fmt.Sprintf("%d seconds", n))
//	}
//
//	func main() {
//	    err := tui.Spawn(context.Background(), counter{}, struct{}{})
//	    ...
//	}
//
// # Runtime
//
// Spawn puts the terminal into raw mode and switches to the alternate screen.
// It then runs four loops until Ctrl+C, end of input, or a fatal I/O error:
//
//   - input: blocking terminal reads translated into events
//   - bridge: relays the bounded channel used by state setters into the
//     unbounded render queue
//   - render: the only goroutine that mutates the root Context
//   - effects: executes scheduled Effects concurrently
//
// The terminal is restored exactly once on the way out, including when a
// loop panics.
//
// # Hooks
//
// Hooks are addressed by call order, so a component must call them in the
// same order on every render. Calling UseState with a different type at the
// same position, or reusing a child key with a different props type, panics
// with an *InvariantError.
package tui
