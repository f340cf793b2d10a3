// Package teahost runs a component tree inside a bubbletea program instead
// of on a terminal owned by tui.Spawn. bubbletea owns the terminal, input and
// window size; the component tree keeps its own state, effects and redraw
// scheduling and is rendered into an in-memory grid that becomes the View.
package teahost

import (
	"context"
	"errors"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	tui "github.com/JakeHillion/stateful-tui"
	"github.com/JakeHillion/stateful-tui/internal/debug"
)

type eventMsg struct{ ev tui.Event }

type closedMsg struct{}

type effectsDoneMsg struct{ err error }

// Model adapts a root component to tea.Model.
type Model[P comparable] struct {
	ctx     context.Context
	root    *tui.Context[P]
	events  *tui.SyncChannel
	queue   *tui.Queue[tui.Event]
	effects *tui.Queue[tui.Effect]
	limit   int

	grid  *tui.Grid
	frame string
	err   error

	start    sync.Once
	stop     sync.Once
	effectsc chan error
}

var _ tea.Model = (*Model[struct{}])(nil)

// New returns a model rendering component with props. maxEffects bounds how
// many effects run at once; zero or less is unbounded.
func New[P comparable](ctx context.Context, component tui.Component[P], props P, maxEffects int) *Model[P] {
	events := tui.NewSyncChannel(tui.DefaultEventBuffer)
	return &Model[P]{
		ctx:      ctx,
		root:     tui.NewContext(component, props, events),
		events:   events,
		queue:    tui.NewQueue[tui.Event](),
		effects:  tui.NewQueue[tui.Effect](),
		limit:    maxEffects,
		grid:     tui.NewGrid(0, 0),
		effectsc: make(chan error, 1),
	}
}

// Init starts the event bridge and the effect runner.
func (m *Model[P]) Init() tea.Cmd {
	m.start.Do(func() {
		go tui.Bridge(m.events, m.queue)
		go func() { m.effectsc <- tui.RunEffects(m.effects, m.limit) }()
	})
	return tea.Batch(m.waitEvent, m.waitEffects)
}

func (m *Model[P]) waitEvent() tea.Msg {
	ev, ok := m.queue.Pop(m.ctx)
	if !ok {
		return closedMsg{}
	}
	return eventMsg{ev}
}

func (m *Model[P]) waitEffects() tea.Msg {
	return effectsDoneMsg{<-m.effectsc}
}

// Update implements tea.Model.
func (m *Model[P]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m.quit(nil)
		}
		return m, nil

	case eventMsg:
		switch ev := msg.ev.(type) {
		case tui.Redraw:
			if err := m.root.Render(m.grid); err != nil {
				return m.quit(err)
			}
			m.frame = m.grid.String()
		case tui.Resized:
			m.resize(ev.Width, ev.Height)
		case tui.NewEffect:
			m.effects.Push(ev.Effect)
		case tui.Exit:
			return m.quit(nil)
		}
		return m, m.waitEvent

	case effectsDoneMsg:
		if msg.err != nil {
			return m.quit(msg.err)
		}
		return m, nil

	case closedMsg:
		return m, nil
	}
	return m, nil
}

// View returns the last rendered frame.
func (m *Model[P]) View() string { return m.frame }

// Err returns the error that ended the program, if any.
func (m *Model[P]) Err() error { return m.err }

// Close stops the bridge and lets running effects finish in the background.
func (m *Model[P]) Close() {
	m.stop.Do(func() {
		m.events.Close()
		m.queue.Close()
		m.effects.Close()
	})
}

func (m *Model[P]) resize(w, h int) {
	if r := m.root.Region(); r.Width() == w && r.Height() == h {
		return
	}
	debug.Debugf("host resized to %dx%d", w, h)
	m.grid.Resize(w, h)
	m.grid.Clear()
	m.root.UpdateSize(tui.Span(0, w), tui.Span(0, h))
}

func (m *Model[P]) quit(err error) (tea.Model, tea.Cmd) {
	if err != nil && m.err == nil {
		m.err = err
	}
	m.Close()
	return m, tea.Quit
}

// Run runs component with props in a full-screen bubbletea program until
// Ctrl+C, an Exit event, a failure or ctx being done. Extra program options
// are applied after the defaults.
func Run[P comparable](ctx context.Context, component tui.Component[P], props P, opts ...tea.ProgramOption) error {
	m := New(ctx, component, props, 0)
	defer m.Close()

	opts = append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, opts...)
	_, err := tea.NewProgram(m, opts...).Run()
	if err != nil && ctx.Err() != nil && errors.Is(err, tea.ErrProgramKilled) {
		err = nil
	}
	return errors.Join(err, m.Err())
}
