//go:build linux

package system

import (
	"errors"
	"fmt"
	"io"
	"sync"

	"golang.org/x/sys/unix"
)

// RawMode holds a terminal in non-canonical, no-echo mode with a one
// decisecond read timeout and restores the saved attributes on Restore.
type RawMode struct {
	fd    int
	saved unix.Termios

	once       sync.Once
	restoreErr error
}

// EnableRawMode switches fd to raw input. Reads on the returned RawMode
// return (0, nil) when no key arrived within the timeout.
func EnableRawMode(fd int) (*RawMode, error) {
	saved, err := unix.IoctlGetTermios(fd, unix.TCGETS)
	if err != nil {
		return nil, fmt.Errorf("get termios: %w", err)
	}

	raw := *saved
	raw.Lflag &^= unix.ECHO | unix.ICANON
	raw.Cc[unix.VMIN] = 0
	raw.Cc[unix.VTIME] = 1
	// TCSETSF flushes pending input like TCSAFLUSH.
	if err := unix.IoctlSetTermios(fd, unix.TCSETSF, &raw); err != nil {
		return nil, fmt.Errorf("set raw termios: %w", err)
	}
	return &RawMode{fd: fd, saved: *saved}, nil
}

func EnableRawModeWithLog(fd int, l logger) (*RawMode, error) {
	m, err := EnableRawMode(fd)
	logResult(l, err, "raw mode enabled", "raw mode failed")
	return m, err
}

// Read reads straight from the descriptor so a timeout surfaces as a zero
// length read instead of io.EOF. A zero length read on a hung up terminal
// or closed pipe looks the same, so it is told apart with poll and
// reported as io.EOF.
func (m *RawMode) Read(p []byte) (int, error) {
	n, err := unix.Read(m.fd, p)
	if err != nil {
		if errors.Is(err, unix.EINTR) || errors.Is(err, unix.EAGAIN) {
			return 0, nil
		}
		return 0, err
	}
	if n == 0 && len(p) > 0 && m.hungUp() {
		return 0, io.EOF
	}
	return n, nil
}

func (m *RawMode) hungUp() bool {
	fds := []unix.PollFd{{Fd: int32(m.fd), Events: unix.POLLIN}}
	n, err := unix.Poll(fds, 0)
	if err != nil || n == 0 {
		return false
	}
	return fds[0].Revents&(unix.POLLHUP|unix.POLLERR|unix.POLLNVAL) != 0
}

// Restore puts the saved attributes back. Only the first call has effect.
func (m *RawMode) Restore() error {
	m.once.Do(func() {
		if err := unix.IoctlSetTermios(m.fd, unix.TCSETSF, &m.saved); err != nil {
			m.restoreErr = fmt.Errorf("restore termios: %w", err)
		}
	})
	return m.restoreErr
}

// Close is Restore, so a RawMode can be handed to io.Closer consumers.
func (m *RawMode) Close() error { return m.Restore() }
