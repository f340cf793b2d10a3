package tui

import (
	"fmt"
	"io"
)

// Option configures a Tui.
type Option func(*Tui) error

// WithDevice draws to d instead of the process terminal.
func WithDevice(d Device) Option {
	return func(t *Tui) error {
		if d == nil {
			return fmt.Errorf("device must not be nil")
		}
		t.device = d
		return nil
	}
}

// WithEventReader reads input from r instead of stdin. The Tui cancels r on
// shutdown but does not close it.
func WithEventReader(r EventReader) Option {
	return func(t *Tui) error {
		if r == nil {
			return fmt.Errorf("event reader must not be nil")
		}
		if err := t.dropReader(); err != nil {
			return err
		}
		t.reader = r
		t.ownReader = false
		return nil
	}
}

// WithIO uses in and out as the terminal. If they are *os.File their
// descriptors are used for raw mode and window size.
func WithIO(in io.Reader, out io.Writer) Option {
	return func(t *Tui) error {
		if err := t.dropReader(); err != nil {
			return err
		}
		dev := NewANSITerminal(out, in)
		r, err := NewTTYReader(in, dev.Size)
		if err != nil {
			return err
		}
		t.device = dev
		t.reader = r
		t.ownReader = true
		return nil
	}
}

// WithEventBuffer sets the capacity of the bounded channel state setters
// send into. Default is DefaultEventBuffer.
func WithEventBuffer(size int) Option {
	return func(t *Tui) error {
		if size < 1 {
			return fmt.Errorf("event buffer must be at least 1")
		}
		t.eventBuffer = size
		return nil
	}
}

// WithMaxEffects bounds the number of effects running at once.
// Zero, the default, means unbounded.
func WithMaxEffects(n int) Option {
	return func(t *Tui) error {
		if n < 0 {
			return fmt.Errorf("max effects must not be negative")
		}
		t.maxEffects = n
		return nil
	}
}

// WithoutRawMode leaves the terminal in cooked mode.
func WithoutRawMode() Option {
	return func(t *Tui) error {
		t.rawMode = false
		return nil
	}
}

// WithoutAltScreen draws on the main screen instead of the alternate screen.
func WithoutAltScreen() Option {
	return func(t *Tui) error {
		t.altScreen = false
		return nil
	}
}
