package sink

import (
	"sync"

	"github.com/rook-computer/sharpmenu/internal/fb"
)

// ImageRequest records one SendImage call.
type ImageRequest struct {
	Path string
	X, Y int
}

// MemorySink keeps copies of everything it is sent.
type MemorySink struct {
	// ConnectErr, when set, is returned by Connect.
	ConnectErr error

	mu        sync.Mutex
	connected bool
	frames    [][]byte
	images    []ImageRequest
	clears    int
}

func (m *MemorySink) Connect() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ConnectErr != nil {
		return m.ConnectErr
	}
	m.connected = true
	return nil
}

func (m *MemorySink) Disconnect() error {
	m.mu.Lock()
	m.connected = false
	m.mu.Unlock()
	return nil
}

func (m *MemorySink) Connected() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.connected
}

func (m *MemorySink) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.connected {
		return ErrNotConnected
	}
	m.clears++
	return nil
}

func (m *MemorySink) SendBuffer(data []byte) error {
	mustBeFrame(data)
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.connected {
		return ErrNotConnected
	}
	m.frames = append(m.frames, append([]byte(nil), data...))
	return nil
}

func (m *MemorySink) SendImage(path string, x, y int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.connected {
		return ErrNotConnected
	}
	m.images = append(m.images, ImageRequest{Path: path, X: x, Y: y})
	return nil
}

// Frames returns the frames received so far, oldest first.
func (m *MemorySink) Frames() []*fb.Buffer {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*fb.Buffer, 0, len(m.frames))
	for _, raw := range m.frames {
		frame, _ := fb.FromBytes(raw)
		out = append(out, frame)
	}
	return out
}

func (m *MemorySink) Images() []ImageRequest {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]ImageRequest(nil), m.images...)
}

func (m *MemorySink) Clears() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.clears
}
