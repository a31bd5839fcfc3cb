//go:build !linux

package input

import "errors"

// EvdevSource is only available on Linux.
type EvdevSource struct{}

func OpenEvdev(path string) (*EvdevSource, error) {
	return nil, errors.New("evdev input is only supported on linux")
}

func (s *EvdevSource) Next() (Event, error) { return None, nil }
func (s *EvdevSource) Close() error         { return nil }
