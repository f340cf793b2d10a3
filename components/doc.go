// Package components provides the built-in leaf components and a few
// drawables for composing child output.
//
// Leaves are ordinary components and are added with tui.AddChild:
//
//	label := tui.AddChild(c, tui.Here(), components.Span{}, "hello")
//	box := tui.AddChild(c, tui.Here(), components.Border{}, components.AllSides(components.BorderRounded))
//	return components.Bordered(components.AllSides(components.BorderRounded), box, label)
//
// Layout is explicit region splitting; there is no layout engine.
package components
