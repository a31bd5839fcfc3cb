// Package fb implements the packed 1-bit-per-pixel frame sent to the display.
//
// A Buffer is allocated per frame, drawn into, handed to a sink and released.
// Bit value 1 is black (foreground), 0 is white (background).
package fb

import "fmt"

// Buffer is a single Width x Height monochrome frame.
type Buffer struct {
	data []byte
}

// New returns a white frame.
func New() *Buffer {
	return &Buffer{data: make([]byte, Size)}
}

// FromBytes copies a packed frame. data must be exactly Size bytes long.
func FromBytes(data []byte) (*Buffer, error) {
	if len(data) != Size {
		return nil, fmt.Errorf("frame must be %d bytes, got %d", Size, len(data))
	}
	b := New()
	copy(b.data, data)
	return b, nil
}

// SetPixel paints (x, y) black or white. Coordinates off the canvas are ignored.
func (b *Buffer) SetPixel(x, y int, black bool) {
	b.mustLive()
	if !InBounds(x, y) {
		return
	}
	bit := BitIndex(x, y)
	if black {
		b.data[ByteIndex(bit)] |= BitMask(bit)
	} else {
		b.data[ByteIndex(bit)] &^= BitMask(bit)
	}
}

// Pixel reports whether (x, y) is black. Off-canvas reads are white.
func (b *Buffer) Pixel(x, y int) bool {
	b.mustLive()
	if !InBounds(x, y) {
		return false
	}
	bit := BitIndex(x, y)
	return b.data[ByteIndex(bit)]&BitMask(bit) != 0
}

// Clear resets every pixel to white.
func (b *Buffer) Clear() {
	b.mustLive()
	clear(b.data)
}

// Bytes exposes the packed frame. The slice aliases the buffer.
func (b *Buffer) Bytes() []byte {
	b.mustLive()
	return b.data
}

// Release drops the backing storage. The buffer must not be used afterwards.
func (b *Buffer) Release() {
	b.data = nil
}

// Released reports whether Release has been called.
func (b *Buffer) Released() bool { return b.data == nil }

func (b *Buffer) mustLive() {
	if b.data == nil {
		panic("fb: use of released buffer")
	}
}
