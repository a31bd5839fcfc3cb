package menu

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/rook-computer/sharpmenu/internal/fb"
	"github.com/rook-computer/sharpmenu/internal/input"
)

// FrameSink receives finished frames.
type FrameSink interface {
	SendBuffer(data []byte) error
}

// Logger is the component-tagged logger used by the controller.
type Logger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

type noopLogger struct{}

func (noopLogger) Infof(string, string, ...interface{})  {}
func (noopLogger) Errorf(string, string, ...interface{}) {}

// Outcome tells how a menu session ended, or that it is still running.
type Outcome int

const (
	Running Outcome = iota
	Committed
	Quit
)

func (o Outcome) String() string {
	switch o {
	case Running:
		return "running"
	case Committed:
		return "committed"
	case Quit:
		return "quit"
	}
	return fmt.Sprintf("outcome(%d)", int(o))
}

// Result is the terminal state of a menu session.
type Result struct {
	Outcome Outcome
	Index   int
	Label   string
}

// Controller redraws the menu on every navigation event.
type Controller struct {
	Menu   *Menu
	Sink   FrameSink
	Logger Logger

	// OnMove is called after each Up or Down with the new selection.
	OnMove func(index int, label string)
	// OnCommit runs the action bound to the committed item.
	OnCommit func(index int, label string) error
}

// NewController drives m and sends its frames to sink.
func NewController(m *Menu, sink FrameSink) *Controller {
	return &Controller{Menu: m, Sink: sink, Logger: noopLogger{}}
}

// RenderFrame builds one frame for the current selection, sends it and
// releases it.
func (c *Controller) RenderFrame() error {
	frame := fb.New()
	defer frame.Release()

	Draw(frame, c.Menu.items, c.Menu.selected)
	if err := c.Sink.SendBuffer(frame.Bytes()); err != nil {
		return fmt.Errorf("send menu frame: %w", err)
	}
	return nil
}

// Handle applies one event. Up and Down re-render; Commit runs OnCommit and
// ends the session; Quit ends it without a selection. None is ignored.
func (c *Controller) Handle(ev input.Event) (Result, error) {
	switch ev {
	case input.Up, input.Down:
		if ev == input.Up {
			c.Menu.Up()
		} else {
			c.Menu.Down()
		}
		c.logger().Infof("menu", "%s -> %d (%s)", ev, c.Menu.Selected(), c.Menu.Label())
		if c.OnMove != nil {
			c.OnMove(c.Menu.Selected(), c.Menu.Label())
		}
		return Result{Outcome: Running, Index: c.Menu.Selected()}, c.RenderFrame()
	case input.Commit:
		res := Result{Outcome: Committed, Index: c.Menu.Selected(), Label: c.Menu.Label()}
		c.logger().Infof("menu", "commit %d (%s)", res.Index, res.Label)
		if c.OnCommit != nil {
			if err := c.OnCommit(res.Index, res.Label); err != nil {
				return res, fmt.Errorf("action %q: %w", res.Label, err)
			}
		}
		return res, nil
	case input.Quit:
		c.logger().Infof("menu", "quit")
		return Result{Outcome: Quit, Index: -1}, nil
	}
	return Result{Outcome: Running, Index: c.Menu.Selected()}, nil
}

// Run draws the initial frame and processes events from src until a
// commit, a quit, an error or ctx cancellation. End of input counts as quit.
func (c *Controller) Run(ctx context.Context, src input.Source) (Result, error) {
	if err := c.RenderFrame(); err != nil {
		return Result{Outcome: Quit, Index: -1}, err
	}
	for {
		if err := ctx.Err(); err != nil {
			return Result{Outcome: Quit, Index: -1}, err
		}
		ev, err := src.Next()
		if errors.Is(err, io.EOF) {
			return Result{Outcome: Quit, Index: -1}, nil
		}
		if err != nil {
			return Result{Outcome: Quit, Index: -1}, fmt.Errorf("read input: %w", err)
		}
		res, err := c.Handle(ev)
		if err != nil || res.Outcome != Running {
			return res, err
		}
	}
}

func (c *Controller) logger() Logger {
	if c.Logger == nil {
		return noopLogger{}
	}
	return c.Logger
}
