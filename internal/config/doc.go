// Package config loads the stui TOML configuration.
//
// # Configuration Discovery
//
// Load uses the path it is given, or ~/.config/stateful-tui/config.toml when
// the path is empty. A missing file is not an error: defaults are used, and
// fields that are absent or blank in the file keep their defaults.
//
// # TOML Format
//
//	event_buffer = 32
//	max_effects = 0
//	raw_mode = true
//	alt_screen = true
//	host = "terminal"
//
//	[log]
//	file = "~/.local/state/stateful-tui/debug.log"
//	level = "debug"
//
// host is "terminal" to drive the terminal directly or "bubbletea" to run
// inside a bubbletea program. The log file path supports tilde expansion.
// Logging stays off when no file is configured.
package config
