package app

import (
	"errors"
	"os"

	"github.com/rook-computer/sharpmenu/internal/input"
	"github.com/rook-computer/sharpmenu/internal/system"
)

// Session owns the input source and every piece of terminal or console
// state changed to run the menu. Close undoes them in reverse order and is
// safe to call more than once.
type Session struct {
	Input input.Source

	restore []func() error
}

func NewSession(src input.Source, restore ...func() error) *Session {
	return &Session{Input: src, restore: restore}
}

// OpenSession acquires input as configured. A tty input puts stdin in raw
// mode; the fb sink also switches the console to graphics mode.
func OpenSession(cfg Config, logger Logger) (*Session, error) {
	s := &Session{}

	if cfg.Sink == SinkFB {
		console, err := system.AcquireGraphicsConsole(logger)
		if err != nil {
			logger.Errorf("app", "console graphics mode unavailable: %v", err)
		}
		s.restore = append(s.restore, console.Restore)
	}

	if cfg.Input == InputTTY {
		raw, err := system.EnableRawModeWithLog(int(os.Stdin.Fd()), logger)
		if err != nil {
			_ = s.Close()
			return nil, err
		}
		s.restore = append(s.restore, raw.Restore)
		s.Input = input.NewTerminalSource(raw)
		return s, nil
	}

	src, err := input.OpenEvdev(cfg.Input)
	if err != nil {
		_ = s.Close()
		return nil, err
	}
	s.Input = src
	s.restore = append(s.restore, src.Close)
	logger.Infof("input", "reading keys from %s", cfg.Input)
	return s, nil
}

func (s *Session) Close() error {
	var errs []error
	for i := len(s.restore) - 1; i >= 0; i-- {
		if err := s.restore[i](); err != nil {
			errs = append(errs, err)
		}
	}
	s.restore = nil
	return errors.Join(errs...)
}
