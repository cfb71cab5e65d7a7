package term

import (
	"github.com/gdamore/tcell/v2"

	"gridsnake/internal/game"
	"gridsnake/internal/grid"
)

// Input collects tcell events on a goroutine and hands them out on Poll.
type Input struct {
	events chan tcell.Event
	done   chan struct{}
}

// NewInput starts reading s. The reader exits once s is finalized. Events
// arriving while the queue is full are dropped so the reader never blocks
// after the loop stops polling.
func NewInput(s tcell.Screen) *Input {
	in := &Input{
		events: make(chan tcell.Event, 64),
		done:   make(chan struct{}),
	}
	go func() {
		defer close(in.done)
		for {
			ev := s.PollEvent()
			if ev == nil {
				close(in.events)
				return
			}
			select {
			case in.events <- ev:
			default:
			}
		}
	}()
	return in
}

// Poll drains queued events without blocking.
func (in *Input) Poll() []game.Event {
	var out []game.Event
	for {
		select {
		case ev, ok := <-in.events:
			if !ok {
				return append(out, game.QuitEvent())
			}
			if e, ok := translate(ev); ok {
				out = append(out, e)
			}
		default:
			return out
		}
	}
}

func translate(ev tcell.Event) (game.Event, bool) {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return game.Event{}, false
	}

	switch key.Key() {
	case tcell.KeyCtrlC:
		return game.QuitEvent(), true
	case tcell.KeyEscape:
		return game.EscapeEvent(), true
	case tcell.KeyUp:
		return game.TurnEvent(grid.Up), true
	case tcell.KeyDown:
		return game.TurnEvent(grid.Down), true
	case tcell.KeyLeft:
		return game.TurnEvent(grid.Left), true
	case tcell.KeyRight:
		return game.TurnEvent(grid.Right), true
	case tcell.KeyRune:
		if key.Modifiers()&tcell.ModCtrl != 0 && (key.Rune() == 'c' || key.Rune() == 'C') {
			return game.QuitEvent(), true
		}
		switch key.Rune() {
		case 'q', 'Q':
			return game.QuitEvent(), true
		case 'w', 'W':
			return game.TurnEvent(grid.Up), true
		case 's', 'S':
			return game.TurnEvent(grid.Down), true
		case 'a', 'A':
			return game.TurnEvent(grid.Left), true
		case 'd', 'D':
			return game.TurnEvent(grid.Right), true
		}
	}
	return game.Event{}, false
}
