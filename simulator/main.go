// Command simulator stands in for the panel's display server and shows
// what it would display over HTTP.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rook-computer/sharpmenu/internal/app"
	"github.com/rook-computer/sharpmenu/internal/sink"
	"github.com/rook-computer/sharpmenu/internal/state"
	"github.com/rook-computer/sharpmenu/internal/web"
)

func main() {
	defaults, err := web.DefaultServerConfigFromEnv(":8080")
	if err != nil {
		fmt.Println("server config error:", err)
		os.Exit(2)
	}

	socketPath := flag.String("socket", envOr(app.EnvSocket, sink.DefaultSocketPath), "display server socket to serve")
	listenAddr := flag.String("listen", defaults.ListenAddr, "http listen address; also configurable via "+web.EnvListenAddr)
	devMode := flag.Bool("dev", defaults.DevMode, "enable dev mode; also configurable via "+web.EnvDevMode)
	staticDir := flag.String("static-dir", "", "serve preview UI from this directory (optional); when empty, the built-in page is served")
	quiet := flag.Bool("quiet", false, "do not log handled commands")
	flag.Parse()

	var logger app.Logger = app.NewFileLogger(os.Stderr)
	if *quiet {
		logger = app.NoopLogger{}
	}

	processCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store := state.NewStore()

	display := NewDisplayServer(*socketPath, store, logger)
	if err := display.Listen(); err != nil {
		fmt.Println("display server error:", err)
		os.Exit(1)
	}
	go func() {
		if err := display.Serve(); err != nil {
			logger.Errorf("display", "serve: %v", err)
			stop()
		}
	}()

	server := web.NewHTTPServer(web.ServerConfig{ListenAddr: *listenAddr, DevMode: *devMode})
	server.Handler = web.NewDefaultMux(*staticDir, store)
	server.Logger = logger
	if err := server.Start(processCtx); err != nil {
		_ = display.Close()
		fmt.Println("server start error:", err)
		os.Exit(1)
	}

	fmt.Println("Display simulator listening on", *socketPath)
	fmt.Println("Preview: http://" + displayAddr(server.Addr) + "/")

	<-processCtx.Done()
	_ = server.Stop()
	_ = display.Close()
}

func displayAddr(addr string) string {
	if len(addr) > 0 && addr[0] == ':' {
		return "127.0.0.1" + addr
	}
	if len(addr) > 5 && addr[:5] == "[::]:" {
		return "127.0.0.1" + addr[4:]
	}
	return addr
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
