//go:build linux

package input

import (
	"encoding/binary"
	"errors"
	"fmt"

	"golang.org/x/sys/unix"
)

const (
	evKey = 0x01

	// Linux input-event-codes.h
	keyEsc   = 1
	keyQ     = 16
	keyEnter = 28
	keyUp    = 103
	keyDown  = 108
	keyKPEnt = 96

	keyPressed  = 1
	keyRepeated = 2
)

// pollTimeoutMs matches the tty read timeout of one decisecond.
const pollTimeoutMs = 100

// EvdevSource reads key presses from a Linux input device such as
// /dev/input/event0. It works on the console without a controlling tty.
type EvdevSource struct {
	path      string
	fd        int
	eventSize int
	tvSize    int
	buf       []byte
	pending   []Event
}

func OpenEvdev(path string) (*EvdevSource, error) {
	fd, err := unix.Open(path, unix.O_RDONLY|unix.O_NONBLOCK|unix.O_CLOEXEC, 0)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	// input_event = timeval + u16 type + u16 code + s32 value.
	tvSize := binary.Size(unix.Timeval{})
	return &EvdevSource{
		path:      path,
		fd:        fd,
		tvSize:    tvSize,
		eventSize: tvSize + 2 + 2 + 4,
		buf:       make([]byte, 4096),
	}, nil
}

func (s *EvdevSource) Next() (Event, error) {
	if len(s.pending) > 0 {
		return s.pop(), nil
	}

	pollFds := []unix.PollFd{{Fd: int32(s.fd), Events: unix.POLLIN}}
	if _, err := unix.Poll(pollFds, pollTimeoutMs); err != nil {
		if errors.Is(err, unix.EINTR) {
			return None, nil
		}
		return None, fmt.Errorf("poll %s: %w", s.path, err)
	}
	if pollFds[0].Revents&unix.POLLIN == 0 {
		return None, nil
	}

	n, err := unix.Read(s.fd, s.buf)
	if err != nil {
		if errors.Is(err, unix.EAGAIN) || errors.Is(err, unix.EINTR) {
			return None, nil
		}
		return None, fmt.Errorf("read %s: %w", s.path, err)
	}

	s.pending = append(s.pending, decodeEvdev(s.buf[:n], s.tvSize, s.eventSize)...)
	if len(s.pending) == 0 {
		return None, nil
	}
	return s.pop(), nil
}

func (s *EvdevSource) pop() Event {
	ev := s.pending[0]
	s.pending = s.pending[1:]
	return ev
}

func (s *EvdevSource) Close() error {
	if s.fd < 0 {
		return nil
	}
	err := unix.Close(s.fd)
	s.fd = -1
	return err
}

// decodeEvdev parses a run of input_event records. Trailing partial
// records are dropped.
func decodeEvdev(data []byte, tvSize, eventSize int) []Event {
	var events []Event
	for off := 0; off+eventSize <= len(data); off += eventSize {
		rec := data[off : off+eventSize]
		typ := binary.LittleEndian.Uint16(rec[tvSize : tvSize+2])
		code := binary.LittleEndian.Uint16(rec[tvSize+2 : tvSize+4])
		value := int32(binary.LittleEndian.Uint32(rec[tvSize+4 : tvSize+8]))
		if typ != evKey {
			continue
		}
		if ev := evdevKey(code, value); ev != None {
			events = append(events, ev)
		}
	}
	return events
}

// evdevKey maps a key code to an event. Arrows also fire on auto-repeat.
func evdevKey(code uint16, value int32) Event {
	switch code {
	case keyUp:
		if value == keyPressed || value == keyRepeated {
			return Up
		}
	case keyDown:
		if value == keyPressed || value == keyRepeated {
			return Down
		}
	case keyEnter, keyKPEnt:
		if value == keyPressed {
			return Commit
		}
	case keyQ, keyEsc:
		if value == keyPressed {
			return Quit
		}
	}
	return None
}
