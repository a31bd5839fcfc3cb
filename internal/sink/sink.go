// Package sink delivers finished frames to a display.
package sink

import (
	"errors"
	"fmt"

	"github.com/rook-computer/sharpmenu/internal/fb"
)

var (
	ErrNotConnected = errors.New("display sink not connected")
	ErrRejected     = errors.New("display sink rejected command")
)

// Sink is the display transport.
//
// SendBuffer takes exactly fb.Size bytes; any other length is a programming
// error and panics. SendImage places an image file on the display, with -1
// on an axis meaning centered.
type Sink interface {
	Connect() error
	Disconnect() error
	Clear() error
	SendBuffer(data []byte) error
	SendImage(path string, x, y int) error
}

type Logger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

type noopLogger struct{}

func (noopLogger) Infof(string, string, ...interface{})  {}
func (noopLogger) Errorf(string, string, ...interface{}) {}

func mustBeFrame(data []byte) {
	if len(data) != fb.Size {
		panic(fmt.Sprintf("sink: frame must be %d bytes, got %d", fb.Size, len(data)))
	}
}

// NoopSink accepts everything and shows nothing.
type NoopSink struct{}

func (NoopSink) Connect() error    { return nil }
func (NoopSink) Disconnect() error { return nil }
func (NoopSink) Clear() error      { return nil }

func (NoopSink) SendBuffer(data []byte) error {
	mustBeFrame(data)
	return nil
}

func (NoopSink) SendImage(path string, x, y int) error { return nil }
