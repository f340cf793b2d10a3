package tui

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestANSITerminal_EscapeSequences(t *testing.T) {
	type tc struct {
		op   func(*ANSITerminal) error
		want string
	}

	tests := map[string]tc{
		"move to origin":   {op: func(t *ANSITerminal) error { return t.MoveTo(0, 0) }, want: "\x1b[1;1H"},
		"move to cell":     {op: func(t *ANSITerminal) error { return t.MoveTo(4, 2) }, want: "\x1b[3;5H"},
		"hide cursor":      {op: (*ANSITerminal).HideCursor, want: "\x1b[?25l"},
		"show cursor":      {op: (*ANSITerminal).ShowCursor, want: "\x1b[?25h"},
		"enter alt screen": {op: (*ANSITerminal).EnterAltScreen, want: "\x1b[?1049h"},
		"exit alt screen":  {op: (*ANSITerminal).ExitAltScreen, want: "\x1b[?1049l"},
		"write text":       {op: func(t *ANSITerminal) error { return t.WriteString("héllo") }, want: "héllo"},
		"clear":            {op: (*ANSITerminal).Clear, want: "\x1b[0m\x1b[1;1H\x1b[2J\x1b[1;1H"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var out bytes.Buffer
			term := NewANSITerminal(&out, strings.NewReader(""))
			if err := tt.op(term); err != nil {
				t.Fatalf("op error = %v", err)
			}
			if out.Len() != 0 {
				t.Errorf("output written before Flush: %q", out.String())
			}
			if err := term.Flush(); err != nil {
				t.Fatalf("Flush() error = %v", err)
			}
			if got := out.String(); got != tt.want {
				t.Errorf("output = %q, want %q", got, tt.want)
			}
		})
	}
}

type errWriter struct{ err error }

func (w errWriter) Write([]byte) (int, error) { return 0, w.err }

func TestANSITerminal_FlushError(t *testing.T) {
	boom := errors.New("broken pipe")
	term := NewANSITerminal(errWriter{err: boom}, strings.NewReader(""))
	term.WriteString("x")
	err := term.Flush()
	var ioe *IOError
	if !errors.As(err, &ioe) || ioe.Op != "flush" {
		t.Fatalf("Flush() error = %v, want *IOError for flush", err)
	}
	if !errors.Is(err, boom) {
		t.Errorf("Flush() error = %v, want wrapping %v", err, boom)
	}
}

func TestANSITerminal_NotATerminal(t *testing.T) {
	term := NewANSITerminal(&bytes.Buffer{}, strings.NewReader(""))
	if term.IsTerminal() {
		t.Error("IsTerminal() = true for an in-memory reader")
	}
	if err := term.EnterRawMode(); err == nil {
		t.Error("EnterRawMode() on a non-terminal succeeded")
	}
	if _, _, err := term.Size(); err == nil {
		t.Error("Size() on a non-terminal succeeded")
	}
	if err := term.ExitRawMode(); err != nil {
		t.Errorf("ExitRawMode() without raw mode error = %v", err)
	}
}

func TestIOError(t *testing.T) {
	inner := errors.New("eio")
	err := ioErr("read input", inner)
	if got, want := err.Error(), "tui: read input: eio"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if again := ioErr("flush", err); again != err {
		t.Errorf("ioErr re-wrapped an *IOError: %v", again)
	}
	if ioErr("noop", nil) != nil {
		t.Error("ioErr(nil) != nil")
	}
}
