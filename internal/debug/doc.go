// Package debug provides optional file-based debug logging.
//
// The terminal is owned by the runtime while it runs, so nothing may be
// written to stdout or stderr. When the STUI_DEBUG environment variable is set
// to a file path, messages at or above STUI_LOG_LEVEL (default "debug") are
// appended to that file. Otherwise, logging is a no-op.
package debug
