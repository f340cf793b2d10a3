package components

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"

	tui "github.com/JakeHillion/stateful-tui"
)

// SpinnerKind selects one of the bubbles spinner frame sets.
type SpinnerKind int

const (
	SpinnerLine SpinnerKind = iota
	SpinnerDot
	SpinnerMiniDot
	SpinnerJump
	SpinnerPulse
	SpinnerPoints
	SpinnerGlobe
	SpinnerMoon
	SpinnerMeter
	SpinnerEllipsis
)

var spinners = map[SpinnerKind]spinner.Spinner{
	SpinnerLine:     spinner.Line,
	SpinnerDot:      spinner.Dot,
	SpinnerMiniDot:  spinner.MiniDot,
	SpinnerJump:     spinner.Jump,
	SpinnerPulse:    spinner.Pulse,
	SpinnerPoints:   spinner.Points,
	SpinnerGlobe:    spinner.Globe,
	SpinnerMoon:     spinner.Moon,
	SpinnerMeter:    spinner.Meter,
	SpinnerEllipsis: spinner.Ellipsis,
}

// Frames returns the frames and default interval of the kind. Unknown kinds
// use SpinnerLine.
func (k SpinnerKind) Frames() ([]string, time.Duration) {
	s, ok := spinners[k]
	if !ok {
		s = spinner.Line
	}
	return s.Frames, s.FPS
}

// SpinnerProps configures a Spinner.
type SpinnerProps struct {
	Kind  SpinnerKind
	Label string
	// Interval between frames. Zero uses the frame set's own rate.
	Interval time.Duration
}

// Spinner draws an animated frame followed by its label. The current frame
// is component state; an effect keyed on the frame waits one interval and
// advances it, which schedules the next effect.
type Spinner struct{}

var _ tui.Component[SpinnerProps] = Spinner{}

func (Spinner) Render(c *tui.Context[SpinnerProps], p SpinnerProps) tui.Drawable {
	frames, interval := p.Kind.Frames()
	if p.Interval > 0 {
		interval = p.Interval
	}

	frame, setFrame := tui.UseState(c, func() int { return 0 })
	frame %= len(frames)

	tui.UseEffect(c, func(f int) tui.Effect {
		if len(frames) < 2 {
			return nil
		}
		return func() {
			time.Sleep(interval)
			setFrame((f + 1) % len(frames))
		}
	}, frame)

	text := frames[frame]
	if p.Label != "" {
		text += " " + p.Label
	}
	return Text(text)
}
