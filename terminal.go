package tui

import (
	"bufio"
	"io"
	"os"
	"sync"

	"github.com/mattn/go-isatty"
)

// Surface is the write side of a drawing target: an addressable grid of cells.
type Surface interface {
	// MoveTo positions the cursor at the 0-indexed cell (x, y).
	MoveTo(x, y int) error
	// WriteString writes s starting at the cursor.
	WriteString(s string) error
}

// Device is a terminal the runtime can own for the lifetime of a program.
// All methods report failures of the underlying stream.
type Device interface {
	Surface
	Size() (width, height int, err error)
	Flush() error
	EnterRawMode() error
	ExitRawMode() error
	EnterAltScreen() error
	ExitAltScreen() error
	HideCursor() error
	ShowCursor() error
}

// terminalChecker is implemented by devices that can tell whether their input
// is a real terminal.
type terminalChecker interface {
	IsTerminal() bool
}

// ANSITerminal is a Device that writes ANSI escape sequences to an output
// stream and uses termios on the input stream for raw mode.
// Output is buffered until Flush.
type ANSITerminal struct {
	mu    sync.Mutex
	out   *bufio.Writer
	esc   *escBuilder
	inFd  int
	outFd int
	raw   *savedTermios
}

var _ Device = (*ANSITerminal)(nil)

// NewANSITerminal creates a terminal writing to out. If in or out are
// *os.File their descriptors are used for raw mode and size queries.
func NewANSITerminal(out io.Writer, in io.Reader) *ANSITerminal {
	t := &ANSITerminal{
		out:   bufio.NewWriterSize(out, 32*1024),
		esc:   newEscBuilder(64),
		inFd:  -1,
		outFd: -1,
	}
	if f, ok := out.(*os.File); ok {
		t.outFd = int(f.Fd())
	}
	if f, ok := in.(*os.File); ok {
		t.inFd = int(f.Fd())
	}
	return t
}

// IsTerminal reports whether the input stream is a terminal.
func (t *ANSITerminal) IsTerminal() bool {
	if t.inFd < 0 {
		return false
	}
	fd := uintptr(t.inFd)
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Size returns the terminal dimensions in cells.
func (t *ANSITerminal) Size() (width, height int, err error) {
	fd := t.outFd
	if fd < 0 {
		fd = t.inFd
	}
	w, h, err := windowSize(fd)
	if err != nil {
		return 0, 0, ioErr("get terminal size", err)
	}
	return w, h, nil
}

func (t *ANSITerminal) writeEsc(op string, build func(*escBuilder)) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.esc.Reset()
	build(t.esc)
	_, err := t.out.Write(t.esc.Bytes())
	return ioErr(op, err)
}

// MoveTo moves the cursor to the 0-indexed cell (x, y).
func (t *ANSITerminal) MoveTo(x, y int) error {
	return t.writeEsc("move cursor", func(e *escBuilder) { e.MoveTo(x, y) })
}

// WriteString writes s at the cursor.
func (t *ANSITerminal) WriteString(s string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, err := t.out.WriteString(s)
	return ioErr("write", err)
}

// Clear clears the whole screen and homes the cursor.
func (t *ANSITerminal) Clear() error {
	return t.writeEsc("clear screen", func(e *escBuilder) {
		e.ResetStyle()
		e.MoveTo(0, 0)
		e.ClearScreen()
		e.MoveTo(0, 0)
	})
}

// Flush writes all buffered output to the terminal.
func (t *ANSITerminal) Flush() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return ioErr("flush", t.out.Flush())
}

// HideCursor makes the cursor invisible.
func (t *ANSITerminal) HideCursor() error {
	return t.writeEsc("hide cursor", (*escBuilder).HideCursor)
}

// ShowCursor makes the cursor visible.
func (t *ANSITerminal) ShowCursor() error {
	return t.writeEsc("show cursor", (*escBuilder).ShowCursor)
}

// EnterAltScreen switches to the alternate screen buffer.
func (t *ANSITerminal) EnterAltScreen() error {
	return t.writeEsc("enter alternate screen", (*escBuilder).EnterAltScreen)
}

// ExitAltScreen switches back to the main screen buffer.
func (t *ANSITerminal) ExitAltScreen() error {
	return t.writeEsc("exit alternate screen", (*escBuilder).ExitAltScreen)
}

// EnterRawMode puts the input terminal into raw mode. Calling it while
// already in raw mode is a no-op.
func (t *ANSITerminal) EnterRawMode() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.raw != nil {
		return nil
	}
	saved, err := enterRaw(t.inFd)
	if err != nil {
		return ioErr("enable raw mode", err)
	}
	t.raw = saved
	return nil
}

// ExitRawMode restores the terminal mode saved by EnterRawMode.
func (t *ANSITerminal) ExitRawMode() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.raw == nil {
		return nil
	}
	err := t.raw.restore()
	t.raw = nil
	return ioErr("disable raw mode", err)
}
