package sink

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rook-computer/sharpmenu/internal/fb"
	"github.com/rook-computer/sharpmenu/internal/render"
)

func TestMemorySink(t *testing.T) {
	m := &MemorySink{}
	assert.ErrorIs(t, m.SendBuffer(make([]byte, fb.Size)), ErrNotConnected)

	require.NoError(t, m.Connect())
	assert.True(t, m.Connected())

	frame := fb.New()
	frame.SetPixel(3, 4, true)
	require.NoError(t, m.SendBuffer(frame.Bytes()))
	frame.SetPixel(3, 4, false)

	frames := m.Frames()
	require.Len(t, frames, 1)
	assert.True(t, frames[0].Pixel(3, 4), "sink must keep its own copy")

	require.NoError(t, m.Clear())
	require.NoError(t, m.SendImage("logo.bmp", -1, 10))
	assert.Equal(t, 1, m.Clears())
	assert.Equal(t, []ImageRequest{{Path: "logo.bmp", X: -1, Y: 10}}, m.Images())

	require.NoError(t, m.Disconnect())
	assert.False(t, m.Connected())
}

func TestMemorySinkConnectError(t *testing.T) {
	boom := errors.New("boom")
	m := &MemorySink{ConnectErr: boom}
	assert.ErrorIs(t, m.Connect(), boom)
	assert.False(t, m.Connected())
}

func TestFBSinkNotConnected(t *testing.T) {
	s := NewFBSink("")
	assert.Equal(t, DefaultFBDevice, s.Device)
	assert.ErrorIs(t, s.Clear(), ErrNotConnected)
	assert.ErrorIs(t, s.SendBuffer(make([]byte, fb.Size)), ErrNotConnected)
	assert.NoError(t, s.Disconnect())
}

func TestBlitScalesNearestNeighbor(t *testing.T) {
	frame := fb.New()
	frame.SetPixel(0, 0, true)
	frame.SetPixel(399, 239, true)

	dst := image.NewRGBA(image.Rect(0, 0, 800, 480))
	blit(dst, render.Tint(frame))

	black := color.RGBAModel.Convert(render.Foreground)
	white := color.RGBAModel.Convert(render.Background)
	assert.Equal(t, black, dst.At(0, 0))
	assert.Equal(t, black, dst.At(1, 1))
	assert.Equal(t, white, dst.At(2, 0))
	assert.Equal(t, black, dst.At(799, 479))
	assert.Equal(t, black, dst.At(798, 478))
	assert.Equal(t, white, dst.At(797, 479))
}
