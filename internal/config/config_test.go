package config

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tui "github.com/JakeHillion/stateful-tui"
	"github.com/JakeHillion/stateful-tui/internal/debug"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestLoad_MissingConfigFallsBackToDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load(filepath.Join(home, "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("Load() = %+v, want defaults %+v", cfg, Default())
	}
	if cfg.EventBuffer != tui.DefaultEventBuffer {
		t.Errorf("EventBuffer = %d, want %d", cfg.EventBuffer, tui.DefaultEventBuffer)
	}
}

func TestLoad_DefaultPathUnderHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".config", "stateful-tui")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte("max_effects = 3\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.MaxEffects != 3 {
		t.Errorf("MaxEffects = %d, want 3", cfg.MaxEffects)
	}
}

func TestLoad_ParsesAndTrimsConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := writeConfig(t, `
event_buffer = 8
max_effects = -4
raw_mode = false
alt_screen = false
host = "  Bubbletea "

[log]
file = "  ~/logs/stui.log  "
level = "trace"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	want := Config{
		EventBuffer: 8,
		MaxEffects:  0,
		RawMode:     false,
		AltScreen:   false,
		Host:        HostBubbletea,
		LogFile:     filepath.Join(home, "logs", "stui.log"),
		LogLevel:    debug.LevelTrace,
	}
	if cfg != want {
		t.Fatalf("Load() = %+v, want %+v", cfg, want)
	}
}

func TestLoad_Errors(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	tests := map[string]string{
		"bad toml":     "event_buffer = [",
		"zero buffer":  "event_buffer = 0",
		"unknown host": `host = "x11"`,
		"bad level":    "[log]\nlevel = \"loud\"",
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeConfig(t, body))
			if err == nil {
				t.Fatal("Load returned nil error")
			}
			if !strings.Contains(err.Error(), "parse config") {
				t.Errorf("error = %v, want it to mention parse config", err)
			}
		})
	}
}

func TestParseHost(t *testing.T) {
	tests := map[string]Host{
		"":          HostTerminal,
		"terminal":  HostTerminal,
		"bubbletea": HostBubbletea,
		"tea":       HostBubbletea,
	}
	for in, want := range tests {
		got, err := ParseHost(in)
		if err != nil || got != want {
			t.Errorf("ParseHost(%q) = %q, %v, want %q", in, got, err, want)
		}
	}
	if _, err := ParseHost("sixel"); err == nil {
		t.Error("ParseHost(sixel) returned nil error")
	}
}

func TestConfig_Options(t *testing.T) {
	cfg := Default()
	cfg.RawMode = false
	cfg.AltScreen = false
	cfg.MaxEffects = 2

	dev := tui.NewMockDevice(10, 2)
	reader := tui.NewMockEventReader()
	reader.EOF()
	root := tui.ComponentFunc[struct{}](func(*tui.Context[struct{}], struct{}) tui.Drawable { return tui.Empty })

	opts := append(cfg.Options(), tui.WithDevice(dev), tui.WithEventReader(reader))
	if err := tui.Spawn(context.Background(), root, struct{}{}, opts...); err != nil {
		t.Fatalf("Spawn() error = %v", err)
	}
	c := dev.Counts()
	if c.EnterRaw != 0 || c.EnterAlt != 0 {
		t.Errorf("raw/alt entered %d/%d times, want 0/0 when disabled", c.EnterRaw, c.EnterAlt)
	}

	if n := len(Default().Options()); n != 1 {
		t.Errorf("len(Default().Options()) = %d, want 1", n)
	}
}

func TestConfig_StartLogging(t *testing.T) {
	t.Cleanup(func() { debug.Close() })

	if err := (Config{}).StartLogging(); err != nil {
		t.Fatalf("StartLogging() without a file: %v", err)
	}

	path := filepath.Join(t.TempDir(), "nested", "debug.log")
	cfg := Config{LogFile: path, LogLevel: debug.LevelInfo}
	if err := cfg.StartLogging(); err != nil {
		t.Fatalf("StartLogging() error = %v", err)
	}
	debug.Infof("hello from config")
	debug.Debugf("filtered out")
	debug.Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(data), "hello from config") || strings.Contains(string(data), "filtered out") {
		t.Errorf("log file = %q", data)
	}
}
