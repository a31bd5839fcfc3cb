// Package state holds what the simulated display currently shows.
package state

import (
	"sync"
	"time"

	"github.com/rook-computer/sharpmenu/internal/fb"
)

// Display is a snapshot of the simulated panel.
type Display struct {
	Frame       []byte
	Commands    int
	Frames      int
	LastCommand string
	LastStatus  string
	UpdatedAt   time.Time
}

type Store struct {
	mu      sync.RWMutex
	display Display
	now     func() time.Time
}

func NewStore() *Store {
	return &Store{display: Display{Frame: make([]byte, fb.Size)}, now: time.Now}
}

// Snapshot returns a copy that is safe to keep.
func (store *Store) Snapshot() Display {
	store.mu.RLock()
	defer store.mu.RUnlock()
	snap := store.display
	snap.Frame = append([]byte(nil), store.display.Frame...)
	return snap
}

// FrameBuffer returns the current frame as a fresh buffer.
func (store *Store) FrameBuffer() *fb.Buffer {
	store.mu.RLock()
	defer store.mu.RUnlock()
	frame, _ := fb.FromBytes(store.display.Frame)
	return frame
}

// SetFrame replaces the shown frame. frame must be fb.Size bytes.
func (store *Store) SetFrame(frame []byte) {
	store.mu.Lock()
	copy(store.display.Frame, frame)
	store.display.Frames++
	store.display.UpdatedAt = store.now()
	store.mu.Unlock()
}

// Clear blanks the panel.
func (store *Store) Clear() {
	store.mu.Lock()
	clear(store.display.Frame)
	store.display.Frames++
	store.display.UpdatedAt = store.now()
	store.mu.Unlock()
}

// RecordCommand notes a handled protocol command and its reply.
func (store *Store) RecordCommand(command, status string) {
	store.mu.Lock()
	store.display.Commands++
	store.display.LastCommand = command
	store.display.LastStatus = status
	store.mu.Unlock()
}
