//go:build !linux

package system

import "errors"

type GraphicsConsole struct{}

func AcquireGraphicsConsole(l logger) (*GraphicsConsole, error) {
	err := errors.New("console graphics mode is only supported on linux")
	logResult(l, err, "", "KD_GRAPHICS failed")
	return &GraphicsConsole{}, err
}

func (c *GraphicsConsole) Restore() error { return nil }
