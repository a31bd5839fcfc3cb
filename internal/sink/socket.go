package sink

import (
	"fmt"
	"net"
	"sync"
	"time"

	"github.com/rook-computer/sharpmenu/internal/wire"
)

// DefaultSocketPath is where the display server listens.
const DefaultSocketPath = "/tmp/display_server.sock"

const defaultSocketTimeout = 5 * time.Second

// SocketSink talks to the display server over its unix socket.
// The server serves one command per connection, so Connect only proves
// the server is reachable and every command dials anew.
type SocketSink struct {
	Path    string
	Timeout time.Duration
	Logger  Logger

	mu        sync.Mutex
	connected bool
}

func NewSocketSink(path string) *SocketSink {
	if path == "" {
		path = DefaultSocketPath
	}
	return &SocketSink{Path: path, Timeout: defaultSocketTimeout, Logger: noopLogger{}}
}

func (s *SocketSink) Connect() error {
	conn, err := s.dial()
	if err != nil {
		return fmt.Errorf("connect %s: %w", s.Path, err)
	}
	_ = conn.Close()

	s.mu.Lock()
	s.connected = true
	s.mu.Unlock()
	s.logger().Infof("sink", "display server reachable at %s", s.Path)
	return nil
}

func (s *SocketSink) Disconnect() error {
	s.mu.Lock()
	s.connected = false
	s.mu.Unlock()
	return nil
}

func (s *SocketSink) Clear() error {
	return s.do(wire.CmdClear, nil)
}

func (s *SocketSink) SendBuffer(data []byte) error {
	mustBeFrame(data)
	return s.do(wire.CmdRawBuf, data)
}

func (s *SocketSink) SendImage(path string, x, y int) error {
	return s.do(wire.CmdImage, wire.ImagePayload(x, y, path))
}

// DrawText asks the server to render text with its own font.
func (s *SocketSink) DrawText(x, y, size int, text string) error {
	return s.do(wire.CmdText, wire.TextPayload(x, y, size, text))
}

// DrawRect asks the server to draw a single rectangle on a blank screen.
func (s *SocketSink) DrawRect(x, y, w, h int, fill bool) error {
	return s.do(wire.CmdRect, wire.RectPayload(x, y, w, h, fill))
}

func (s *SocketSink) do(command string, payload []byte) error {
	s.mu.Lock()
	connected := s.connected
	s.mu.Unlock()
	if !connected {
		return ErrNotConnected
	}

	conn, err := s.dial()
	if err != nil {
		return fmt.Errorf("%s: %w", command, err)
	}
	defer conn.Close()

	if s.Timeout > 0 {
		_ = conn.SetDeadline(time.Now().Add(s.Timeout))
	}
	if err := wire.WriteRequest(conn, wire.Request{Command: command, Payload: payload}); err != nil {
		return fmt.Errorf("%s: write: %w", command, err)
	}
	status, err := wire.ReadStatus(conn)
	if err != nil {
		return fmt.Errorf("%s: read status: %w", command, err)
	}
	if status != wire.StatusOK {
		s.logger().Errorf("sink", "%s answered %q", command, status)
		return fmt.Errorf("%w: %s answered %q", ErrRejected, command, status)
	}
	return nil
}

func (s *SocketSink) dial() (net.Conn, error) {
	timeout := s.Timeout
	if timeout <= 0 {
		timeout = defaultSocketTimeout
	}
	return net.DialTimeout("unix", s.Path, timeout)
}

func (s *SocketSink) logger() Logger {
	if s.Logger == nil {
		return noopLogger{}
	}
	return s.Logger
}
