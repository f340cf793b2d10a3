package demo

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"testing"
	"time"

	tui "github.com/JakeHillion/stateful-tui"
	"github.com/JakeHillion/stateful-tui/internal/config"
)

func waitUntil(t *testing.T, dev *tui.MockDevice, what string, cond func(screen string) bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for !cond(dev.Screen()) {
		if time.Now().After(deadline) {
			t.Fatalf("screen never showed %s; last screen:\n%s", what, dev.Screen())
		}
		time.Sleep(time.Millisecond)
	}
}

func waitForScreen(t *testing.T, dev *tui.MockDevice, want string) {
	t.Helper()
	waitUntil(t, dev, strconv.Quote(want), func(screen string) bool {
		return strings.Contains(screen, want)
	})
}

func spawn[P comparable](t *testing.T, root tui.Component[P], props P, w, h int) (*tui.MockDevice, func()) {
	t.Helper()
	dev := tui.NewMockDevice(w, h)
	reader := tui.NewMockEventReader()
	done := make(chan error, 1)
	go func() {
		done <- tui.Spawn(context.Background(), root, props, tui.WithDevice(dev), tui.WithEventReader(reader))
	}()
	stop := func() {
		t.Helper()
		reader.Send(tui.KeyEvent{Key: tui.KeyCtrlC})
		select {
		case err := <-done:
			if err != nil {
				t.Errorf("Spawn() error = %v", err)
			}
		case <-time.After(2 * time.Second):
			t.Fatal("Spawn() did not exit on Ctrl+C")
		}
	}
	return dev, stop
}

func TestPets(t *testing.T) {
	dev, stop := spawn(t, Pets, struct{}{}, 24, 3)
	waitForScreen(t, dev, "nested span (104)")
	stop()

	want := strings.Join([]string{
		"------------------------",
		"|nested span (104)     |",
		"------------------------",
	}, "\n")
	if got := dev.Screen(); got != want {
		t.Errorf("screen =\n%s\nwant\n%s", got, want)
	}

	frames := dev.Frames()
	for _, f := range frames {
		if strings.Contains(f, "nested span (0)") {
			return
		}
	}
	t.Errorf("no frame showed the initial count; frames = %q", frames)
}

func TestSpinners(t *testing.T) {
	dev, stop := spawn(t, Spinners, struct{}{}, 32, 9)
	for _, s := range spinnerKinds {
		waitForScreen(t, dev, s.label)
	}
	stop()

	lines := strings.Split(dev.Screen(), "\n")
	if !strings.HasPrefix(lines[0], "╭") || !strings.HasPrefix(lines[len(lines)-1], "╰") {
		t.Errorf("screen is not framed by a rounded border:\n%s", dev.Screen())
	}
}

func TestCounter(t *testing.T) {
	dev, stop := spawn(t, Counter, CounterProps{Interval: 5 * time.Millisecond}, 20, 3)
	waitUntil(t, dev, "a count of at least 3", func(screen string) bool {
		var n int
		_, err := fmt.Sscanf(screen, "count: %d", &n)
		return err == nil && n >= 3
	})
	stop()

	if !strings.HasSuffix(dev.Screen(), "Ctrl+C to quit") {
		t.Errorf("status line missing from bottom row:\n%s", dev.Screen())
	}
}

func TestRun_UnknownDemo(t *testing.T) {
	err := Run(context.Background(), "kittens", config.HostTerminal)
	if err == nil || !strings.Contains(err.Error(), "pets") {
		t.Errorf("Run(kittens) error = %v, want it to list the demos", err)
	}
}

func TestNames(t *testing.T) {
	got := strings.Join(Names(), ",")
	if want := "counter,pets,spinners"; got != want {
		t.Errorf("Names() = %q, want %q", got, want)
	}
}
