package game

import "gridsnake/internal/grid"

type EventKind uint8

const (
	EventKey EventKind = iota
	EventQuit
)

type Key uint8

const (
	KeyDirection Key = iota
	KeyEscape
)

// Event is one discrete input: a quit request or a key press.
type Event struct {
	Kind EventKind
	Key  Key
	Dir  grid.Direction // set for KeyDirection
}

func QuitEvent() Event { return Event{Kind: EventQuit} }

func EscapeEvent() Event { return Event{Kind: EventKey, Key: KeyEscape} }

func TurnEvent(d grid.Direction) Event { return Event{Kind: EventKey, Key: KeyDirection, Dir: d} }

// stops reports whether the event ends the game. Escape counts as quit.
func (e Event) stops() bool {
	return e.Kind == EventQuit || (e.Kind == EventKey && e.Key == KeyEscape)
}

// InputSource returns the events queued since the previous poll without blocking.
type InputSource interface {
	Poll() []Event
}
