//go:build !unix

package tui

import "errors"

var errUnsupported = errors.New("terminal control is not supported on this platform")

type savedTermios struct{}

func enterRaw(int) (*savedTermios, error) { return nil, errUnsupported }

func (*savedTermios) restore() error { return nil }

func windowSize(int) (int, int, error) { return 0, 0, errUnsupported }
