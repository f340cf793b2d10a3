package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	tui "github.com/JakeHillion/stateful-tui"
	"github.com/JakeHillion/stateful-tui/internal/debug"
)

// Host selects what owns the terminal.
type Host string

const (
	HostTerminal  Host = "terminal"
	HostBubbletea Host = "bubbletea"
)

// ParseHost validates a host name. The empty string is HostTerminal.
func ParseHost(s string) (Host, error) {
	switch h := Host(strings.ToLower(strings.TrimSpace(s))); h {
	case "", HostTerminal:
		return HostTerminal, nil
	case HostBubbletea, "tea":
		return HostBubbletea, nil
	default:
		return "", fmt.Errorf("unknown host %q", s)
	}
}

// Config is the resolved configuration.
type Config struct {
	EventBuffer int
	MaxEffects  int
	RawMode     bool
	AltScreen   bool
	Host        Host
	LogFile     string
	LogLevel    debug.Level
}

const defaultConfigPath = "~/.config/stateful-tui/config.toml"

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		EventBuffer: tui.DefaultEventBuffer,
		RawMode:     true,
		AltScreen:   true,
		Host:        HostTerminal,
		LogLevel:    debug.LevelDebug,
	}
}

// Load locates and parses the config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		EventBuffer *int   `toml:"event_buffer"`
		MaxEffects  *int   `toml:"max_effects"`
		RawMode     *bool  `toml:"raw_mode"`
		AltScreen   *bool  `toml:"alt_screen"`
		Host        string `toml:"host"`
		Log         struct {
			File  string `toml:"file"`
			Level string `toml:"level"`
		} `toml:"log"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if raw.EventBuffer != nil {
		if *raw.EventBuffer < 1 {
			return Config{}, fmt.Errorf("parse config: event_buffer must be at least 1, got %d", *raw.EventBuffer)
		}
		cfg.EventBuffer = *raw.EventBuffer
	}
	if raw.MaxEffects != nil {
		cfg.MaxEffects = max(*raw.MaxEffects, 0)
	}
	if raw.RawMode != nil {
		cfg.RawMode = *raw.RawMode
	}
	if raw.AltScreen != nil {
		cfg.AltScreen = *raw.AltScreen
	}
	if cfg.Host, err = ParseHost(raw.Host); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if cfg.LogLevel, err = debug.ParseLevel(raw.Log.Level); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if logFile := strings.TrimSpace(raw.Log.File); logFile != "" {
		cfg.LogFile = mustExpand(logFile)
	}

	return cfg, nil
}

// Options returns the runtime options the configuration asks for.
func (c Config) Options() []tui.Option {
	var opts []tui.Option
	if c.EventBuffer > 0 {
		opts = append(opts, tui.WithEventBuffer(c.EventBuffer))
	}
	if c.MaxEffects > 0 {
		opts = append(opts, tui.WithMaxEffects(c.MaxEffects))
	}
	if !c.RawMode {
		opts = append(opts, tui.WithoutRawMode())
	}
	if !c.AltScreen {
		opts = append(opts, tui.WithoutAltScreen())
	}
	return opts
}

// StartLogging opens the configured log file. It does nothing when no file
// is configured.
func (c Config) StartLogging() error {
	if c.LogFile == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(c.LogFile), 0o755); err != nil {
		return fmt.Errorf("create log dir: %w", err)
	}
	return debug.Init(c.LogFile, c.LogLevel)
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
