//go:build !linux

package system

import "errors"

var errUnsupported = errors.New("terminal raw mode is only supported on linux")

type RawMode struct{}

func EnableRawMode(fd int) (*RawMode, error) { return nil, errUnsupported }

func EnableRawModeWithLog(fd int, l logger) (*RawMode, error) {
	logResult(l, errUnsupported, "", "raw mode failed")
	return nil, errUnsupported
}

func (m *RawMode) Read(p []byte) (int, error) { return 0, errUnsupported }
func (m *RawMode) Restore() error             { return nil }
func (m *RawMode) Close() error               { return nil }
