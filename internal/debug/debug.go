package debug

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

// Level orders log messages by severity.
type Level int

const (
	LevelTrace Level = iota
	LevelDebug
	LevelInfo
	LevelWarn
	LevelOff
)

// String returns the lowercase level name used in config files and log lines.
func (l Level) String() string {
	switch l {
	case LevelTrace:
		return "trace"
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelOff:
		return "off"
	default:
		return fmt.Sprintf("Level(%d)", int(l))
	}
}

// ParseLevel converts a level name into a Level. The empty string is debug.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return LevelTrace, nil
	case "", "debug":
		return LevelDebug, nil
	case "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "off", "none":
		return LevelOff, nil
	}
	return LevelOff, fmt.Errorf("unknown log level %q", s)
}

var (
	mu    sync.Mutex
	out   io.Writer
	file  *os.File
	level = LevelOff
	now   = time.Now
)

// Init opens path for appending and starts logging at min and above.
// Any previously opened log file is closed first.
func Init(path string, min Level) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open debug log: %w", err)
	}
	mu.Lock()
	defer mu.Unlock()
	closeLocked()
	file = f
	out = f
	level = min
	return nil
}

// InitFromEnv initialises logging from STUI_DEBUG and STUI_LOG_LEVEL.
// It does nothing when STUI_DEBUG is unset.
func InitFromEnv() error {
	path := os.Getenv("STUI_DEBUG")
	if path == "" {
		return nil
	}
	min, err := ParseLevel(os.Getenv("STUI_LOG_LEVEL"))
	if err != nil {
		return err
	}
	return Init(path, min)
}

// SetOutput directs logging to w. Pass nil to disable logging.
func SetOutput(w io.Writer, min Level) {
	mu.Lock()
	defer mu.Unlock()
	closeLocked()
	out = w
	level = min
	if w == nil {
		level = LevelOff
	}
}

// Close flushes and closes the log file, if any, and disables logging.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	return closeLocked()
}

func closeLocked() error {
	var err error
	if file != nil {
		err = file.Close()
		file = nil
	}
	out = nil
	level = LevelOff
	return err
}

// Enabled reports whether messages at l would be written.
func Enabled(l Level) bool {
	mu.Lock()
	defer mu.Unlock()
	return out != nil && l >= level && l < LevelOff
}

func logf(l Level, format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()
	if out == nil || l < level || l >= LevelOff {
		return
	}
	fmt.Fprintf(out, "%s %-5s %s\n", now().Format("15:04:05.000"), l, fmt.Sprintf(format, args...))
}

// Log writes a debug-level message.
func Log(format string, args ...any) { logf(LevelDebug, format, args...) }

func Tracef(format string, args ...any) { logf(LevelTrace, format, args...) }
func Debugf(format string, args ...any) { logf(LevelDebug, format, args...) }
func Infof(format string, args ...any)  { logf(LevelInfo, format, args...) }
func Warnf(format string, args ...any)  { logf(LevelWarn, format, args...) }
