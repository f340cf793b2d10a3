//go:build !unix

package tui

import "os"

// Without SIGWINCH a nil channel disables resize reporting.
func notifyResize() chan os.Signal { return nil }

func stopResize(chan os.Signal) {}
