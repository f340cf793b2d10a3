package tui

import "strconv"

// escBuilder accumulates ANSI escape sequences in a reusable buffer.
type escBuilder struct {
	buf []byte
}

func newEscBuilder(capacity int) *escBuilder {
	return &escBuilder{buf: make([]byte, 0, capacity)}
}

// Reset clears the buffer for reuse.
func (e *escBuilder) Reset() { e.buf = e.buf[:0] }

// Bytes returns the built sequence.
func (e *escBuilder) Bytes() []byte { return e.buf }

func (e *escBuilder) writeCSI() { e.buf = append(e.buf, '\x1b', '[') }

func (e *escBuilder) writeInt(n int) { e.buf = strconv.AppendInt(e.buf, int64(n), 10) }

func (e *escBuilder) writePrivate(mode string, set bool) {
	e.writeCSI()
	e.buf = append(e.buf, '?')
	e.buf = append(e.buf, mode...)
	if set {
		e.buf = append(e.buf, 'h')
	} else {
		e.buf = append(e.buf, 'l')
	}
}

// MoveTo moves the cursor to the 0-indexed cell (x, y).
func (e *escBuilder) MoveTo(x, y int) {
	e.writeCSI()
	e.writeInt(y + 1)
	e.buf = append(e.buf, ';')
	e.writeInt(x + 1)
	e.buf = append(e.buf, 'H')
}

// ClearScreen clears the entire screen.
func (e *escBuilder) ClearScreen() {
	e.writeCSI()
	e.buf = append(e.buf, '2', 'J')
}

// ResetStyle clears all SGR attributes.
func (e *escBuilder) ResetStyle() {
	e.writeCSI()
	e.buf = append(e.buf, '0', 'm')
}

func (e *escBuilder) HideCursor()     { e.writePrivate("25", false) }
func (e *escBuilder) ShowCursor()     { e.writePrivate("25", true) }
func (e *escBuilder) EnterAltScreen() { e.writePrivate("1049", true) }
func (e *escBuilder) ExitAltScreen()  { e.writePrivate("1049", false) }
