package tui

import (
	"errors"
	"fmt"
)

var (
	// ErrChannelClosed is returned when sending to a channel whose consumer is gone.
	ErrChannelClosed = errors.New("tui: event channel closed")

	// ErrReaderClosed is returned by EventReader.ReadEvent after Cancel or Close.
	ErrReaderClosed = errors.New("tui: event reader closed")

	// ErrNotTerminal is returned by Setup when raw mode is requested on a
	// device that is not a terminal.
	ErrNotTerminal = errors.New("tui: not a terminal")
)

// IOError wraps a failure of the terminal device or the OS input stream.
// It is the only error kind the runtime reports to callers.
type IOError struct {
	Op  string
	Err error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("tui: %s: %v", e.Op, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// ioErr wraps err as an *IOError unless it is nil or already one.
func ioErr(op string, err error) error {
	if err == nil {
		return nil
	}
	var ioe *IOError
	if errors.As(err, &ioe) {
		return err
	}
	return &IOError{Op: op, Err: err}
}

// InvariantError describes a programming error in a component, such as hooks
// called in a different order between renders. It is raised with panic and
// never returned.
type InvariantError struct {
	Msg string
}

func (e *InvariantError) Error() string {
	return "tui: invariant violated: " + e.Msg
}

func invariant(format string, args ...any) {
	panic(&InvariantError{Msg: fmt.Sprintf(format, args...)})
}

// PanicError carries a panic recovered from one of the runtime loops so that
// the terminal can be restored before the panic is re-raised.
type PanicError struct {
	Loop  string
	Value any
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("tui: panic in %s loop: %v", e.Loop, e.Value)
}

// Unwrap exposes the panic value when it is itself an error.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}
