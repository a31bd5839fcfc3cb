package main

import (
	"image"
	"image/png"
	"math"
	"net"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rook-computer/sharpmenu/internal/fb"
	"github.com/rook-computer/sharpmenu/internal/sink"
	"github.com/rook-computer/sharpmenu/internal/state"
	"github.com/rook-computer/sharpmenu/internal/wire"
)

func startDisplayServer(t *testing.T) (*DisplayServer, *sink.SocketSink) {
	t.Helper()
	dir, err := os.MkdirTemp("", "sim")
	require.NoError(t, err)
	t.Cleanup(func() { _ = os.RemoveAll(dir) })

	srv := NewDisplayServer(filepath.Join(dir, "display.sock"), state.NewStore(), nil)
	require.NoError(t, srv.Listen())
	done := make(chan error, 1)
	go func() { done <- srv.Serve() }()
	t.Cleanup(func() {
		require.NoError(t, srv.Close())
		require.NoError(t, <-done)
	})

	client := sink.NewSocketSink(srv.Path)
	require.NoError(t, client.Connect())
	return srv, client
}

func countBlack(b *fb.Buffer) int {
	n := 0
	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			if b.Pixel(x, y) {
				n++
			}
		}
	}
	return n
}

func TestRawBufferRoundTrip(t *testing.T) {
	srv, client := startDisplayServer(t)

	frame := fb.New()
	frame.SetPixel(0, 0, true)
	frame.SetPixel(399, 239, true)
	require.NoError(t, client.SendBuffer(frame.Bytes()))

	snap := srv.Store.Snapshot()
	assert.Equal(t, frame.Bytes(), snap.Frame)
	assert.Equal(t, wire.CmdRawBuf, snap.LastCommand)
	assert.Equal(t, wire.StatusOK, snap.LastStatus)

	require.NoError(t, client.Clear())
	assert.Equal(t, make([]byte, fb.Size), srv.Store.Snapshot().Frame)
}

func TestRectReplacesScreen(t *testing.T) {
	srv, client := startDisplayServer(t)

	frame := fb.New()
	frame.SetPixel(300, 200, true)
	require.NoError(t, client.SendBuffer(frame.Bytes()))

	require.NoError(t, client.DrawRect(10, 10, 4, 4, true))
	got := srv.Store.FrameBuffer()
	assert.False(t, got.Pixel(300, 200))
	assert.True(t, got.Pixel(10, 10))
	assert.True(t, got.Pixel(14, 14))
	assert.Equal(t, 25, countBlack(got))

	require.NoError(t, client.DrawRect(10, 10, 4, 4, false))
	got = srv.Store.FrameBuffer()
	assert.False(t, got.Pixel(12, 12))
	assert.Equal(t, 16, countBlack(got))
}

func TestHugeRectIsClippedNotWalked(t *testing.T) {
	srv, client := startDisplayServer(t)

	done := make(chan error, 1)
	go func() {
		done <- client.DrawRect(-math.MaxInt32, -math.MaxInt32, math.MaxInt32, math.MaxInt32, true)
	}()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("RECT with huge extents did not finish")
	}

	require.NoError(t, client.DrawRect(0, 0, math.MaxInt32-1, math.MaxInt32-1, false))
	got := srv.Store.FrameBuffer()
	assert.Equal(t, fb.Width+fb.Height-1, countBlack(got))
	require.NoError(t, client.Clear())
}

func TestTextIsRendered(t *testing.T) {
	srv, client := startDisplayServer(t)

	require.NoError(t, client.DrawText(20, 20, 24, "Hello"))
	got := srv.Store.FrameBuffer()
	assert.Positive(t, countBlack(got))
	for y := 0; y < 15; y++ {
		for x := 0; x < fb.Width; x++ {
			assert.False(t, got.Pixel(x, y), "ink above the line at (%d,%d)", x, y)
		}
	}

	assert.Error(t, client.DrawText(0, 0, 0, "x"))
	assert.Error(t, client.DrawText(0, 0, math.MaxInt32, "x"))
	assert.Equal(t, wire.StatusError, srv.Store.Snapshot().LastStatus)
}

func TestImageCentered(t *testing.T) {
	srv, client := startDisplayServer(t)

	// A zero Gray image is solid black.
	src := image.NewGray(image.Rect(0, 0, 10, 10))
	path := filepath.Join(t.TempDir(), "logo.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, src))
	require.NoError(t, f.Close())

	require.NoError(t, client.SendImage(path, -1, -1))
	got := srv.Store.FrameBuffer()
	assert.Equal(t, 100, countBlack(got))
	assert.True(t, got.Pixel(195, 115))
	assert.True(t, got.Pixel(204, 124))

	// A cached decode survives the file going away.
	require.NoError(t, os.Remove(path))
	require.NoError(t, client.SendImage(path, 0, 0))
	assert.True(t, srv.Store.FrameBuffer().Pixel(0, 0))

	assert.Error(t, client.SendImage(filepath.Join(t.TempDir(), "nope.png"), 0, 0))
}

func TestWrongSizedFrameIsAnError(t *testing.T) {
	srv, _ := startDisplayServer(t)
	status := rawExchange(t, srv.Path, wire.Request{Command: wire.CmdRawBuf, Payload: []byte{1, 2, 3}})
	assert.Equal(t, wire.StatusError, status)
}

func TestUnknownCommand(t *testing.T) {
	srv, _ := startDisplayServer(t)
	status := rawExchange(t, srv.Path, wire.Request{Command: "BLINK"})
	assert.Equal(t, wire.StatusUnknown, status)
	assert.Equal(t, "BLINK", srv.Store.Snapshot().LastCommand)
}

func rawExchange(t *testing.T, path string, req wire.Request) string {
	t.Helper()
	conn, err := net.Dial("unix", path)
	require.NoError(t, err)
	defer conn.Close()
	require.NoError(t, wire.WriteRequest(conn, req))
	status, err := wire.ReadStatus(conn)
	require.NoError(t, err)
	return status
}
