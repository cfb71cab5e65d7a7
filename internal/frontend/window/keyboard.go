package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"gridsnake/internal/game"
	"gridsnake/internal/grid"
)

var keyDirections = map[ebiten.Key]grid.Direction{
	ebiten.KeyArrowUp:    grid.Up,
	ebiten.KeyW:          grid.Up,
	ebiten.KeyArrowDown:  grid.Down,
	ebiten.KeyS:          grid.Down,
	ebiten.KeyArrowLeft:  grid.Left,
	ebiten.KeyA:          grid.Left,
	ebiten.KeyArrowRight: grid.Right,
	ebiten.KeyD:          grid.Right,
}

// Keyboard reports keys pressed since the previous tick. It must be polled
// from inside ebiten's Update.
type Keyboard struct {
	keys []ebiten.Key
}

func (k *Keyboard) Poll() []game.Event {
	var events []game.Event
	if ebiten.IsWindowBeingClosed() {
		events = append(events, game.QuitEvent())
	}

	k.keys = inpututil.AppendJustPressedKeys(k.keys[:0])
	for _, key := range k.keys {
		if ev, ok := keyEvent(key); ok {
			events = append(events, ev)
		}
	}
	return events
}

func keyEvent(key ebiten.Key) (game.Event, bool) {
	if key == ebiten.KeyEscape {
		return game.EscapeEvent(), true
	}
	if d, ok := keyDirections[key]; ok {
		return game.TurnEvent(d), true
	}
	return game.Event{}, false
}
