package headless

import (
	"fmt"
	"strconv"
	"strings"

	"gridsnake/internal/game"
	"gridsnake/internal/grid"
)

// Script replays turns at fixed ticks and asks to quit after a set number of ticks.
type Script struct {
	turns map[int][]grid.Direction
	ticks int
	polls int
}

func NewScript(ticks int, turns map[int][]grid.Direction) *Script {
	return &Script{ticks: ticks, turns: turns}
}

func (s *Script) Poll() []game.Event {
	n := s.polls
	s.polls++
	if n >= s.ticks {
		return []game.Event{game.QuitEvent()}
	}

	var events []game.Event
	for _, d := range s.turns[n] {
		events = append(events, game.TurnEvent(d))
	}
	return events
}

// ParseTurns reads "tick:dir" pairs separated by commas, e.g. "3:up,7:left".
// Directions are the names accepted by grid.ParseDirection.
func ParseTurns(list string) (map[int][]grid.Direction, error) {
	turns := make(map[int][]grid.Direction)
	for _, part := range strings.Split(list, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		at, name, ok := strings.Cut(part, ":")
		if !ok {
			return nil, fmt.Errorf("turn %q: want tick:direction", part)
		}
		tick, err := strconv.Atoi(at)
		if err != nil || tick < 0 {
			return nil, fmt.Errorf("turn %q: bad tick", part)
		}
		d, ok := grid.ParseDirection(name)
		if !ok {
			return nil, fmt.Errorf("turn %q: unknown direction %q", part, name)
		}
		turns[tick] = append(turns[tick], d)
	}
	return turns, nil
}
