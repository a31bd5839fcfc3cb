package sink

import (
	"fmt"
	"image"
	"image/color"
	"sync"

	framebuffer "github.com/gonutz/framebuffer"

	"github.com/rook-computer/sharpmenu/internal/fb"
	"github.com/rook-computer/sharpmenu/internal/render"
)

// DefaultFBDevice is the framebuffer used when none is configured.
const DefaultFBDevice = "/dev/fb0"

// FBSink shows frames on a local Linux framebuffer, scaled with nearest
// neighbor sampling to the device resolution.
type FBSink struct {
	Device string
	Logger Logger

	mu  sync.Mutex
	dev *framebuffer.Device
}

func NewFBSink(device string) *FBSink {
	if device == "" {
		device = DefaultFBDevice
	}
	return &FBSink{Device: device, Logger: noopLogger{}}
}

func (s *FBSink) Connect() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.dev != nil {
		return nil
	}
	dev, err := framebuffer.Open(s.Device)
	if err != nil {
		return fmt.Errorf("open %s: %w", s.Device, err)
	}
	s.dev = dev
	if s.Logger != nil {
		bounds := dev.Bounds()
		s.Logger.Infof("sink", "framebuffer open, bounds=%dx%d", bounds.Dx(), bounds.Dy())
	}
	return nil
}

func (s *FBSink) Disconnect() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.dev != nil {
		s.dev.Close()
		s.dev = nil
	}
	return nil
}

func (s *FBSink) Clear() error {
	frame := fb.New()
	defer frame.Release()
	return s.show(frame)
}

func (s *FBSink) SendBuffer(data []byte) error {
	mustBeFrame(data)
	frame, err := fb.FromBytes(data)
	if err != nil {
		return err
	}
	defer frame.Release()
	return s.show(frame)
}

func (s *FBSink) SendImage(path string, x, y int) error {
	img, err := render.LoadImage(path)
	if err != nil {
		return err
	}
	frame := fb.New()
	defer frame.Release()
	render.PlaceImage(frame, img, x, y)
	return s.show(frame)
}

func (s *FBSink) show(frame *fb.Buffer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.dev == nil {
		return ErrNotConnected
	}
	blit(s.dev, render.Tint(frame))
	return nil
}

type pixelSetter interface {
	Bounds() image.Rectangle
	Set(x, y int, c color.Color)
}

// blit scales src over the whole of dst.
func blit(dst pixelSetter, src image.Image) {
	bounds := dst.Bounds()
	srcBounds := src.Bounds()
	dstWidth, dstHeight := bounds.Dx(), bounds.Dy()
	if dstWidth <= 0 || dstHeight <= 0 {
		return
	}
	for y := 0; y < dstHeight; y++ {
		sy := srcBounds.Min.Y + (y*srcBounds.Dy())/dstHeight
		for x := 0; x < dstWidth; x++ {
			sx := srcBounds.Min.X + (x*srcBounds.Dx())/dstWidth
			dst.Set(bounds.Min.X+x, bounds.Min.Y+y, src.At(sx, sy))
		}
	}
}
