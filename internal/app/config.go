package app

import (
	"fmt"
	"os"
	"strings"

	"github.com/rook-computer/sharpmenu/internal/sink"
)

const (
	EnvSink       = "SHARPMENU_SINK"
	EnvSocket     = "SHARPMENU_SOCKET"
	EnvFBDevice   = "SHARPMENU_FBDEV"
	EnvInput      = "SHARPMENU_INPUT"
	EnvCreditsURL = "SHARPMENU_CREDITS_URL"
	EnvStdioLog   = "SHARPMENU_STDIO_LOG"
)

const (
	SinkSocket = "socket"
	SinkFB     = "fb"
	SinkNone   = "none"

	InputTTY = "tty"
)

// Config selects the display sink and input device for a run.
type Config struct {
	Sink       string
	SocketPath string
	FBDevice   string
	// Input is InputTTY or the path of an evdev device.
	Input      string
	CreditsURL string
	StdioLog   string
	Debug      bool
}

// DefaultConfigFromEnv returns the defaults, overridden by environment variables.
func DefaultConfigFromEnv() (Config, error) {
	cfg := Config{
		Sink:       envOr(EnvSink, SinkSocket),
		SocketPath: envOr(EnvSocket, sink.DefaultSocketPath),
		FBDevice:   envOr(EnvFBDevice, sink.DefaultFBDevice),
		Input:      envOr(EnvInput, InputTTY),
		CreditsURL: os.Getenv(EnvCreditsURL),
		StdioLog:   os.Getenv(EnvStdioLog),
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.Sink {
	case SinkSocket, SinkFB, SinkNone:
	default:
		return fmt.Errorf("sink must be one of %s, %s, %s (got %q)", SinkSocket, SinkFB, SinkNone, c.Sink)
	}
	if strings.TrimSpace(c.Input) == "" {
		return fmt.Errorf("input must be %q or an evdev device path", InputTTY)
	}
	return nil
}

// NewSink builds the configured display sink.
func (c Config) NewSink(logger Logger) (sink.Sink, error) {
	switch c.Sink {
	case SinkSocket:
		s := sink.NewSocketSink(c.SocketPath)
		s.Logger = logger
		return s, nil
	case SinkFB:
		s := sink.NewFBSink(c.FBDevice)
		s.Logger = logger
		return s, nil
	case SinkNone:
		return sink.NoopSink{}, nil
	}
	return nil, fmt.Errorf("unknown sink %q", c.Sink)
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
