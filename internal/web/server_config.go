package web

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

const (
	EnvListenAddr = "SHARPMENU_SIM_LISTEN"
	EnvDevMode    = "SHARPMENU_SIM_DEV"
)

// ServerConfig configures the simulator's preview server.
type ServerConfig struct {
	ListenAddr string
	// DevMode enables permissive CORS.
	DevMode bool
}

// DefaultServerConfigFromEnv reads the preview settings from the environment,
// falling back to defaultListenAddr.
func DefaultServerConfigFromEnv(defaultListenAddr string) (ServerConfig, error) {
	cfg := ServerConfig{ListenAddr: defaultListenAddr}
	if addr := strings.TrimSpace(os.Getenv(EnvListenAddr)); addr != "" {
		cfg.ListenAddr = addr
	}
	if raw := strings.TrimSpace(os.Getenv(EnvDevMode)); raw != "" {
		dev, err := strconv.ParseBool(raw)
		if err != nil {
			return ServerConfig{}, fmt.Errorf("%s: want a boolean, got %q: %w", EnvDevMode, raw, err)
		}
		cfg.DevMode = dev
	}
	return cfg, nil
}
