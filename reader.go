package tui

import (
	"errors"
	"io"
	"os"
	"sync"

	"github.com/muesli/cancelreader"

	"github.com/JakeHillion/stateful-tui/internal/debug"
)

// EventReader is the blocking source of terminal input used by the input loop.
type EventReader interface {
	// ReadEvent blocks until the next input event. It returns io.EOF at end
	// of input and ErrReaderClosed once Cancel or Close has been called.
	ReadEvent() (InputEvent, error)
	// Cancel unblocks a pending ReadEvent. It is safe to call more than once.
	Cancel()
	// Close cancels the reader and releases its resources.
	Close() error
}

// SizeFunc reports the current terminal size. It is queried on SIGWINCH.
type SizeFunc func() (width, height int, err error)

// TTYReader reads and decodes keys from a terminal. Reads run on a background
// goroutine through a cancelreader so Cancel can interrupt a blocked read.
type TTYReader struct {
	cr     cancelreader.CancelReader
	size   SizeFunc
	chunks chan readResult
	winch  chan os.Signal
	done   chan struct{}
	once   sync.Once

	pending []InputEvent
	partial []byte
	err     error
}

type readResult struct {
	data []byte
	err  error
}

var _ EventReader = (*TTYReader)(nil)

// NewTTYReader starts reading from in. size may be nil, in which case
// window-size changes are not reported.
func NewTTYReader(in io.Reader, size SizeFunc) (*TTYReader, error) {
	cr, err := cancelreader.NewReader(in)
	if err != nil {
		return nil, ioErr("open input", err)
	}
	r := &TTYReader{
		cr:     cr,
		size:   size,
		chunks: make(chan readResult),
		done:   make(chan struct{}),
	}
	if size != nil {
		r.winch = notifyResize()
	}
	go r.pump()
	return r, nil
}

func (r *TTYReader) pump() {
	buf := make([]byte, 4096)
	for {
		n, err := r.cr.Read(buf)
		var res readResult
		if n > 0 {
			res.data = append([]byte(nil), buf[:n]...)
		}
		if err != nil {
			if errors.Is(err, cancelreader.ErrCanceled) {
				err = ErrReaderClosed
			}
			res.err = err
		}
		if res.data == nil && res.err == nil {
			continue
		}
		select {
		case r.chunks <- res:
		case <-r.done:
			return
		}
		if res.err != nil {
			return
		}
	}
}

// ReadEvent returns the next key or resize event.
func (r *TTYReader) ReadEvent() (InputEvent, error) {
	for len(r.pending) == 0 {
		// Events decoded alongside a read error are delivered first.
		if r.err != nil {
			return nil, r.err
		}
		select {
		case <-r.done:
			return nil, ErrReaderClosed
		case <-r.winch:
			w, h, err := r.size()
			if err != nil {
				debug.Warnf("query terminal size after SIGWINCH: %v", err)
				continue
			}
			return ResizeEvent{Width: w, Height: h}, nil
		case res := <-r.chunks:
			if len(res.data) > 0 {
				r.decode(res.data)
			}
			switch {
			case res.err == nil:
			case errors.Is(res.err, ErrReaderClosed), errors.Is(res.err, io.EOF):
				r.err = res.err
			default:
				r.err = ioErr("read input", res.err)
			}
		}
	}
	ev := r.pending[0]
	r.pending = r.pending[1:]
	return ev, nil
}

func (r *TTYReader) decode(data []byte) {
	if len(r.partial) > 0 {
		data = append(r.partial, data...)
		r.partial = nil
	}
	events, rest := parseInput(data)
	if rest > 0 {
		r.partial = append([]byte(nil), data[len(data)-rest:]...)
	}
	r.pending = append(r.pending, events...)
}

// Cancel unblocks ReadEvent and stops the background read.
func (r *TTYReader) Cancel() {
	r.once.Do(func() {
		close(r.done)
		r.cr.Cancel()
		stopResize(r.winch)
	})
}

// Close cancels the reader and closes the underlying cancelreader.
func (r *TTYReader) Close() error {
	r.Cancel()
	return r.cr.Close()
}
