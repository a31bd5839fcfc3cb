package fb

// Fixed panel geometry of the Sharp memory display.
const (
	Width  = 400
	Height = 240

	// Size is the length in bytes of one packed frame.
	Size = (Width*Height + 7) / 8
)

// InBounds reports whether (x, y) lies on the canvas.
func InBounds(x, y int) bool {
	return x >= 0 && x < Width && y >= 0 && y < Height
}

// BitIndex returns the row-major bit position of pixel (x, y).
// The caller is responsible for checking InBounds first.
func BitIndex(x, y int) int {
	return y*Width + x
}

// ByteIndex returns the byte holding the given bit.
func ByteIndex(bit int) int {
	return bit / 8
}

// BitMask returns the mask selecting the given bit inside its byte.
// Bits are packed most-significant first.
func BitMask(bit int) byte {
	return 1 << (7 - uint(bit%8))
}
