package tui

import (
	"errors"
	"os"
	"sync"

	"github.com/JakeHillion/stateful-tui/internal/debug"
)

// Tui owns a terminal device and its input for the lifetime of a program.
type Tui struct {
	device      Device
	reader      EventReader
	ownReader   bool
	rawMode     bool
	altScreen   bool
	eventBuffer int
	maxEffects  int

	mu        sync.Mutex
	inRaw     bool
	inAlt     bool
	hidden    bool
	closeOnce sync.Once
	closeErr  error
}

// New creates a runtime for the process terminal, configured by opts.
// The terminal is not touched until Setup.
func New(opts ...Option) (*Tui, error) {
	t := &Tui{
		rawMode:     true,
		altScreen:   true,
		eventBuffer: DefaultEventBuffer,
	}
	for _, opt := range opts {
		if err := opt(t); err != nil {
			return nil, errors.Join(err, t.dropReader())
		}
	}
	if t.device == nil {
		t.device = NewANSITerminal(os.Stdout, os.Stdin)
	}
	return t, nil
}

// dropReader closes the reader if the Tui started it.
func (t *Tui) dropReader() error {
	if !t.ownReader || t.reader == nil {
		return nil
	}
	r := t.reader
	t.reader, t.ownReader = nil, false
	return r.Close()
}

// Device returns the terminal device.
func (t *Tui) Device() Device { return t.device }

// Setup enters raw mode, switches to the alternate screen and hides the
// cursor. On failure every mode entered so far is restored before returning.
func (t *Tui) Setup() error {
	if err := t.setup(); err != nil {
		return errors.Join(err, t.Close())
	}
	return nil
}

func (t *Tui) setup() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.rawMode {
		if tc, ok := t.device.(terminalChecker); ok && !tc.IsTerminal() {
			return &IOError{Op: "enable raw mode", Err: ErrNotTerminal}
		}
		if err := t.device.EnterRawMode(); err != nil {
			return ioErr("enable raw mode", err)
		}
		t.inRaw = true
	}
	if t.altScreen {
		if err := t.device.EnterAltScreen(); err != nil {
			return ioErr("enter alternate screen", err)
		}
		t.inAlt = true
	}
	if err := t.device.HideCursor(); err != nil {
		return ioErr("hide cursor", err)
	}
	t.hidden = true
	if err := t.device.Flush(); err != nil {
		return ioErr("flush", err)
	}

	if t.reader == nil {
		r, err := NewTTYReader(os.Stdin, t.device.Size)
		if err != nil {
			return err
		}
		t.reader = r
		t.ownReader = true
	}
	debug.Debugf("terminal set up (raw=%v, alt=%v)", t.inRaw, t.inAlt)
	return nil
}

// Close restores every terminal mode Setup entered. Only the first call has
// an effect; later calls return the same error.
func (t *Tui) Close() error {
	t.closeOnce.Do(func() {
		t.mu.Lock()
		defer t.mu.Unlock()

		var errs []error
		if t.hidden {
			errs = append(errs, ioErr("show cursor", t.device.ShowCursor()))
			t.hidden = false
		}
		if t.inAlt {
			errs = append(errs, ioErr("exit alternate screen", t.device.ExitAltScreen()))
			t.inAlt = false
		}
		errs = append(errs, ioErr("flush", t.device.Flush()))
		if t.inRaw {
			errs = append(errs, ioErr("disable raw mode", t.device.ExitRawMode()))
			t.inRaw = false
		}
		if t.ownReader && t.reader != nil {
			errs = append(errs, t.reader.Close())
		}
		t.closeErr = errors.Join(errs...)
		debug.Debugf("terminal restored")
	})
	return t.closeErr
}
