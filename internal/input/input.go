// Package input turns raw keyboard data into menu navigation events.
package input

import "fmt"

// Event is one decoded navigation key.
type Event int

const (
	// None means no navigation happened: a read timed out or the key is unbound.
	None Event = iota
	Up
	Down
	Commit
	Quit
)

func (e Event) String() string {
	switch e {
	case None:
		return "none"
	case Up:
		return "up"
	case Down:
		return "down"
	case Commit:
		return "commit"
	case Quit:
		return "quit"
	}
	return fmt.Sprintf("event(%d)", int(e))
}

// Source delivers one event per call. Next blocks for at most a short
// timeout and reports None when nothing arrived.
type Source interface {
	Next() (Event, error)
	Close() error
}

// ScriptedSource replays a fixed list of events and then reports Quit.
type ScriptedSource struct {
	Events []Event
	pos    int
}

// NewScriptedSource replays events in order.
func NewScriptedSource(events ...Event) *ScriptedSource {
	return &ScriptedSource{Events: events}
}

func (s *ScriptedSource) Next() (Event, error) {
	if s.pos >= len(s.Events) {
		return Quit, nil
	}
	ev := s.Events[s.pos]
	s.pos++
	return ev, nil
}

func (s *ScriptedSource) Close() error { return nil }
