//go:build linux

package system

import (
	"fmt"
	"os"
	"sync"

	"golang.org/x/sys/unix"
)

// KD console modes from linux/kd.h
const (
	kdText     = 0x00
	kdGraphics = 0x01
	kdSetMode  = 0x4B3A // KDSETMODE ioctl
)

var consolePaths = []string{"/dev/tty", "/dev/tty0"}

// GraphicsConsole keeps the virtual terminal in KD_GRAPHICS so the text
// cursor does not blink over frames blitted to /dev/fb0.
type GraphicsConsole struct {
	logger logger
	once   sync.Once
	err    error
}

// AcquireGraphicsConsole switches the active VT to graphics mode and hides
// the cursor. Failures are logged; the returned console is always usable.
func AcquireGraphicsConsole(l logger) (*GraphicsConsole, error) {
	err := setConsoleMode(kdGraphics)
	logResult(l, err, "KD_GRAPHICS set", "KD_GRAPHICS failed")
	cerr := writeVT("\x1b[?25l")
	logResult(l, cerr, "cursor hidden", "hide cursor failed")
	if err == nil {
		err = cerr
	}
	return &GraphicsConsole{logger: l}, err
}

// Restore shows the cursor and returns to text mode. Only the first call has effect.
func (c *GraphicsConsole) Restore() error {
	c.once.Do(func() {
		cerr := writeVT("\x1b[?25h")
		logResult(c.logger, cerr, "cursor shown", "show cursor failed")
		err := setConsoleMode(kdText)
		logResult(c.logger, err, "KD_TEXT set", "KD_TEXT failed")
		if err == nil {
			err = cerr
		}
		c.err = err
	})
	return c.err
}

func setConsoleMode(mode int) error {
	var lastErr error
	for _, p := range consolePaths {
		fd, err := unix.Open(p, unix.O_RDONLY|unix.O_CLOEXEC, 0)
		if err != nil {
			lastErr = fmt.Errorf("open %s: %w", p, err)
			continue
		}
		err = unix.IoctlSetInt(fd, kdSetMode, mode)
		_ = unix.Close(fd)
		if err != nil {
			lastErr = fmt.Errorf("KDSETMODE %d on %s: %w", mode, p, err)
			continue
		}
		return nil
	}
	return lastErr
}

func writeVT(s string) error {
	var lastErr error
	for _, p := range consolePaths {
		f, err := os.OpenFile(p, os.O_WRONLY, 0)
		if err != nil {
			lastErr = err
			continue
		}
		_, err = f.WriteString(s)
		_ = f.Close()
		if err == nil {
			return nil
		}
		lastErr = err
	}
	return fmt.Errorf("write VT failed: %w", lastErr)
}
