// Package app wires the display sink, the input session and the menu.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/rook-computer/sharpmenu/internal/app/screens"
	"github.com/rook-computer/sharpmenu/internal/fb"
	"github.com/rook-computer/sharpmenu/internal/menu"
	"github.com/rook-computer/sharpmenu/internal/render"
	"github.com/rook-computer/sharpmenu/internal/sink"
)

// ErrSinkUnavailable marks a failed connection to the display at startup.
var ErrSinkUnavailable = errors.New("display sink unavailable")

type App struct {
	Config Config
	Sink   sink.Sink
	Logger Logger
	// Out receives the console feedback lines.
	Out io.Writer

	// OpenSession acquires the input side. Defaults to OpenSession(Config, Logger).
	OpenSession func() (*Session, error)
	// OnConnected runs once the sink accepted the connection.
	OnConnected func()
}

func New(cfg Config, displaySink sink.Sink, out io.Writer) *App {
	return &App{Config: cfg, Sink: displaySink, Logger: NoopLogger{}, Out: out}
}

// Run connects to the sink, runs the menu until commit or quit and releases
// everything it acquired. A connect failure wraps ErrSinkUnavailable and
// nothing is rendered.
func (app *App) Run(ctx context.Context) (menu.Result, error) {
	quit := menu.Result{Outcome: menu.Quit, Index: -1}
	if app.Logger == nil {
		app.Logger = NoopLogger{}
	}
	if app.Out == nil {
		app.Out = io.Discard
	}

	if err := app.Sink.Connect(); err != nil {
		app.Logger.Errorf("app", "connect failed: %v", err)
		return quit, fmt.Errorf("%w: %w", ErrSinkUnavailable, err)
	}
	defer func() {
		if err := app.Sink.Disconnect(); err != nil {
			app.Logger.Errorf("app", "disconnect: %v", err)
		}
	}()
	if app.OnConnected != nil {
		app.OnConnected()
	}

	open := app.OpenSession
	if open == nil {
		open = func() (*Session, error) { return OpenSession(app.Config, app.Logger) }
	}
	session, err := open()
	if err != nil {
		return quit, fmt.Errorf("open input: %w", err)
	}
	defer func() {
		if err := session.Close(); err != nil {
			app.Logger.Errorf("app", "restore terminal: %v", err)
		}
	}()

	m, err := menu.New(menu.DefaultItems...)
	if err != nil {
		return quit, err
	}
	ctrl := menu.NewController(m, app.Sink)
	ctrl.Logger = app.Logger
	ctrl.OnMove = func(index int, label string) {
		fmt.Fprintf(app.Out, "Selected: %s\n", label)
	}
	ctrl.OnCommit = app.commit

	res, err := ctrl.Run(ctx, session.Input)
	if res.Outcome != menu.Committed {
		fmt.Fprintln(app.Out, "Exiting menu...")
		if cerr := app.Sink.Clear(); cerr != nil {
			app.Logger.Errorf("app", "clear on exit: %v", cerr)
		}
	}
	return res, err
}

// commit shows the screen bound to the item. The frame stays on the
// display after the menu exits.
func (app *App) commit(index int, label string) error {
	fmt.Fprintf(app.Out, "Opening %s...\n", label)
	return app.show(screens.ForLabel(label, app.Config.CreditsURL, app.Logger))
}

func (app *App) show(screen render.Screen) error {
	frame := fb.New()
	defer frame.Release()
	screen.Draw(frame)
	return app.Sink.SendBuffer(frame.Bytes())
}
