package tui

import (
	"io"
	"sync"
)

// MockCounts records how often a MockDevice switched terminal modes.
type MockCounts struct {
	EnterRaw, ExitRaw int
	EnterAlt, ExitAlt int
	Hide, Show        int
	Flushes           int
	Clears            int
}

// MockDevice is an in-memory Device for tests. It draws into a Grid, counts
// mode transitions, keeps the screen contents at every Flush, and can be
// made to fail individual operations.
type MockDevice struct {
	mu     sync.Mutex
	grid   *Grid
	counts MockCounts
	frames []string
	raw    bool
	alt    bool

	// Err fields, when set, are returned by the matching operation.
	SizeErr     error
	FlushErr    error
	WriteErr    error
	EnterRawErr error
	EnterAltErr error
}

var (
	_ Device        = (*MockDevice)(nil)
	_ screenClearer = (*MockDevice)(nil)
)

// NewMockDevice creates a mock terminal of the given size.
func NewMockDevice(width, height int) *MockDevice {
	return &MockDevice{grid: NewGrid(width, height)}
}

func (m *MockDevice) Size() (int, int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SizeErr != nil {
		return 0, 0, m.SizeErr
	}
	w, h := m.grid.Size()
	return w, h, nil
}

// Resize changes the screen size reported by Size.
func (m *MockDevice) Resize(width, height int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.grid.Resize(width, height)
}

func (m *MockDevice) MoveTo(x, y int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.grid.MoveTo(x, y)
}

func (m *MockDevice) WriteString(s string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.WriteErr != nil {
		return m.WriteErr
	}
	return m.grid.WriteString(s)
}

func (m *MockDevice) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counts.Clears++
	m.grid.Clear()
	return nil
}

func (m *MockDevice) Flush() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FlushErr != nil {
		return m.FlushErr
	}
	m.counts.Flushes++
	m.frames = append(m.frames, m.grid.String())
	return nil
}

func (m *MockDevice) EnterRawMode() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.EnterRawErr != nil {
		return m.EnterRawErr
	}
	m.counts.EnterRaw++
	m.raw = true
	return nil
}

func (m *MockDevice) ExitRawMode() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counts.ExitRaw++
	m.raw = false
	return nil
}

func (m *MockDevice) EnterAltScreen() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.EnterAltErr != nil {
		return m.EnterAltErr
	}
	m.counts.EnterAlt++
	m.alt = true
	return nil
}

func (m *MockDevice) ExitAltScreen() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counts.ExitAlt++
	m.alt = false
	return nil
}

func (m *MockDevice) HideCursor() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counts.Hide++
	return nil
}

func (m *MockDevice) ShowCursor() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counts.Show++
	return nil
}

// Counts returns the mode transition and flush counters.
func (m *MockDevice) Counts() MockCounts {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.counts
}

// InRawMode reports whether raw mode is currently entered.
func (m *MockDevice) InRawMode() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.raw
}

// InAltScreen reports whether the alternate screen is active.
func (m *MockDevice) InAltScreen() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.alt
}

// Screen returns the current contents, trailing spaces trimmed.
func (m *MockDevice) Screen() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.grid.String()
}

// Frames returns the screen contents captured at each successful Flush.
func (m *MockDevice) Frames() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.frames...)
}

// MockEventReader is an EventReader fed by the test.
type MockEventReader struct {
	events chan readItem
	done   chan struct{}
	once   sync.Once
	eof    sync.Once
}

type readItem struct {
	ev  InputEvent
	err error
}

var _ EventReader = (*MockEventReader)(nil)

// NewMockEventReader creates a reader that returns the given events in order
// and then blocks until more are sent or it is cancelled.
func NewMockEventReader(events ...InputEvent) *MockEventReader {
	m := &MockEventReader{
		events: make(chan readItem, len(events)+64),
		done:   make(chan struct{}),
	}
	for _, ev := range events {
		m.events <- readItem{ev: ev}
	}
	return m
}

// Send queues ev. It returns false if the reader has been cancelled.
func (m *MockEventReader) Send(ev InputEvent) bool {
	return m.push(readItem{ev: ev})
}

// Fail makes the next ReadEvent return err.
func (m *MockEventReader) Fail(err error) bool {
	return m.push(readItem{err: err})
}

// EOF makes ReadEvent report the end of input.
func (m *MockEventReader) EOF() {
	m.eof.Do(func() { m.push(readItem{err: io.EOF}) })
}

func (m *MockEventReader) push(it readItem) bool {
	// Cancelled wins over a free slot so that nothing is accepted after Cancel.
	select {
	case <-m.done:
		return false
	default:
	}
	select {
	case m.events <- it:
		return true
	case <-m.done:
		return false
	}
}

func (m *MockEventReader) ReadEvent() (InputEvent, error) {
	select {
	case <-m.done:
		return nil, ErrReaderClosed
	default:
	}
	select {
	case it := <-m.events:
		return it.ev, it.err
	case <-m.done:
		return nil, ErrReaderClosed
	}
}

func (m *MockEventReader) Cancel() {
	m.once.Do(func() { close(m.done) })
}

// Cancelled reports whether Cancel has been called.
func (m *MockEventReader) Cancelled() bool {
	select {
	case <-m.done:
		return true
	default:
		return false
	}
}

func (m *MockEventReader) Close() error {
	m.Cancel()
	return nil
}
