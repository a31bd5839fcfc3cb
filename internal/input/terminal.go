package input

import "io"

const (
	keyEscape = 0x1b
)

// TerminalSource decodes keystrokes from a raw-mode terminal.
//
// The reader is expected to return (0, nil) when its read timeout expires.
// Arrow keys arrive as ESC '[' 'A' (up) and ESC '[' 'B' (down); an
// incomplete or unknown sequence is consumed and reported as None so the
// next read starts on a fresh key.
type TerminalSource struct {
	r      io.Reader
	closer io.Closer
	buf    [1]byte
}

func NewTerminalSource(r io.Reader) *TerminalSource {
	src := &TerminalSource{r: r}
	if c, ok := r.(io.Closer); ok {
		src.closer = c
	}
	return src
}

func (s *TerminalSource) Next() (Event, error) {
	c, ok, err := s.readByte()
	if err != nil || !ok {
		return None, err
	}

	switch c {
	case keyEscape:
		return s.escape()
	case '\r', '\n':
		return Commit, nil
	case 'q', 'Q':
		return Quit, nil
	}
	return None, nil
}

// escape reads at most two more bytes after ESC.
func (s *TerminalSource) escape() (Event, error) {
	c, ok, err := s.readByte()
	if err != nil || !ok || c != '[' {
		return None, err
	}
	c, ok, err = s.readByte()
	if err != nil || !ok {
		return None, err
	}
	switch c {
	case 'A':
		return Up, nil
	case 'B':
		return Down, nil
	}
	return None, nil
}

func (s *TerminalSource) readByte() (byte, bool, error) {
	n, err := s.r.Read(s.buf[:])
	if n == 1 {
		return s.buf[0], true, nil
	}
	return 0, false, err
}

func (s *TerminalSource) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}
