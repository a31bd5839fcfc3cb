package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rook-computer/sharpmenu/internal/app"
	"github.com/rook-computer/sharpmenu/internal/menu"
)

func main() {
	os.Exit(run())
}

func run() int {
	defaults, err := app.DefaultConfigFromEnv()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config error:", err)
		return 2
	}

	// Flags
	sinkKind := flag.String("sink", defaults.Sink, "display sink: socket | fb | none; also configurable via "+app.EnvSink)
	socketPath := flag.String("socket", defaults.SocketPath, "display server socket; also configurable via "+app.EnvSocket)
	fbDevice := flag.String("fbdev", defaults.FBDevice, "framebuffer device for the fb sink; also configurable via "+app.EnvFBDevice)
	inputDev := flag.String("input", defaults.Input, "key input: tty or an evdev device path; also configurable via "+app.EnvInput)
	creditsURL := flag.String("credits-url", defaults.CreditsURL, "QR code payload on the credits screen; also configurable via "+app.EnvCreditsURL)
	debug := flag.Bool("debug", false, "enable debug logging to ./sharpmenu-debug.log")
	stdioLog := flag.String("stdio-log", defaults.StdioLog, "redirect stdout+stderr (including panics) to this file; also configurable via "+app.EnvStdioLog)
	flag.Parse()

	cfg := app.Config{
		Sink:       *sinkKind,
		SocketPath: *socketPath,
		FBDevice:   *fbDevice,
		Input:      *inputDev,
		CreditsURL: *creditsURL,
		StdioLog:   *stdioLog,
		Debug:      *debug,
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, "config error:", err)
		return 2
	}

	if cfg.StdioLog != "" {
		if err := redirectStdIO(cfg.StdioLog); err != nil {
			fmt.Println("stdio log redirect error:", err)
		}
	}

	// Local file logger when debug enabled
	var logger app.Logger = app.NoopLogger{}
	if cfg.Debug {
		f, err := os.OpenFile("./sharpmenu-debug.log", os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err == nil {
			defer f.Close()
			logger = app.NewFileLogger(f)
			logger.Infof("main", "debug logging enabled")
		} else {
			fmt.Println("debug log open error:", err)
		}
	}

	displaySink, err := cfg.NewSink(logger)
	if err != nil {
		fmt.Fprintln(os.Stderr, "sink error:", err)
		return 2
	}

	// Interrupts end the menu loop so the terminal is restored before exit.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := app.New(cfg, displaySink, os.Stdout)
	a.Logger = logger

	fmt.Println("Connecting to display server...")
	a.OnConnected = func() {
		fmt.Println("Menu started!")
		fmt.Println("Use UP/DOWN arrow keys, ENTER to select, Q to quit")
	}

	res, err := a.Run(ctx)
	switch {
	case errors.Is(err, app.ErrSinkUnavailable):
		fmt.Fprintln(os.Stderr, "Failed to connect! Is the display server running?")
		logger.Errorf("main", "%v", err)
		return 1
	case errors.Is(err, context.Canceled):
		return 130
	case err != nil:
		fmt.Fprintln(os.Stderr, "menu error:", err)
		return 1
	}
	if res.Outcome == menu.Committed {
		logger.Infof("main", "committed %q", res.Label)
	}
	return 0
}
