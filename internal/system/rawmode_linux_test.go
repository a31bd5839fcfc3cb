//go:build linux

package system

import (
	"io"
	"os"
	"testing"

	"golang.org/x/sys/unix"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnableRawModeRejectsNonTerminal(t *testing.T) {
	r, w, err := os.Pipe()
	require.NoError(t, err)
	defer r.Close()
	defer w.Close()

	_, err = EnableRawMode(int(r.Fd()))
	assert.Error(t, err)
}

func TestRawModeReadAndRestoreOnce(t *testing.T) {
	r, w, err := os.Pipe()
	require.NoError(t, err)
	defer r.Close()
	defer w.Close()

	_, err = w.Write([]byte("q"))
	require.NoError(t, err)

	m := &RawMode{fd: int(r.Fd())}
	buf := make([]byte, 1)
	n, err := m.Read(buf)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, byte('q'), buf[0])

	// A pipe has no termios, so restoring fails, and keeps reporting the first error.
	first := m.Restore()
	assert.Error(t, first)
	assert.Equal(t, first, m.Restore())
	assert.Equal(t, first, m.Close())
}

func TestRawModeReadTimeoutVersusHangup(t *testing.T) {
	r, w, err := os.Pipe()
	require.NoError(t, err)
	defer r.Close()

	fd := int(r.Fd())
	require.NoError(t, unix.SetNonblock(fd, true))
	m := &RawMode{fd: fd}
	buf := make([]byte, 1)

	// Nothing to read yet: same as the terminal's read timeout.
	n, err := m.Read(buf)
	require.NoError(t, err)
	assert.Zero(t, n)

	require.NoError(t, w.Close())
	n, err = m.Read(buf)
	assert.Zero(t, n)
	assert.ErrorIs(t, err, io.EOF)
}
