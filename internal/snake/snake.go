// Package snake implements the player-controlled snake: heading, movement with
// wraparound, growth and self-collision.
package snake

import (
	"gridsnake/internal/grid"
	"gridsnake/internal/render"
)

// Outcome tells what Advance did.
type Outcome uint8

const (
	Moved Outcome = iota
	Collision
)

func (o Outcome) String() string {
	if o == Collision {
		return "collision"
	}
	return "moved"
}

// MoveOutcome is the result of one Advance. Dropped is only meaningful when
// HasDropped is set, i.e. the tail moved away instead of the snake growing.
type MoveOutcome struct {
	Kind       Outcome
	Dropped    grid.Cell
	HasDropped bool
}

func (m MoveOutcome) Collided() bool {
	return m.Kind == Collision
}

// Snake is an ordered body with the head at index 0.
type Snake struct {
	geom    grid.Geometry
	body    []grid.Cell
	heading grid.Direction
	pending grid.Direction
	target  int
	style   render.Style
}

// New returns a one cell snake at spawn moving in heading.
func New(geom grid.Geometry, spawn grid.Cell, heading grid.Direction, style render.Style) *Snake {
	s := &Snake{geom: geom, style: style}
	s.place(spawn, heading)
	return s
}

func (s *Snake) place(spawn grid.Cell, heading grid.Direction) {
	s.body = append(s.body[:0], spawn)
	s.target = 1
	s.heading = heading
	s.pending = grid.None
}

// Turn buffers a heading change for the next Advance. A reversal of the
// current heading is ignored; a later Turn in the same tick replaces an earlier one.
func (s *Snake) Turn(d grid.Direction) {
	if !d.Valid() || d == s.heading.Opposite() {
		return
	}
	s.pending = d
}

// Advance moves the snake one cell. The new head is tested against the body
// as it was before the move, tail included, and a collision leaves the body untouched.
func (s *Snake) Advance() MoveOutcome {
	if s.pending != grid.None {
		s.heading = s.pending
		s.pending = grid.None
	}

	next := s.geom.WrapAdd(s.Head(), s.heading)
	if s.Occupies(next) {
		return MoveOutcome{Kind: Collision}
	}

	s.body = append(s.body, grid.Cell{})
	copy(s.body[1:], s.body)
	s.body[0] = next

	out := MoveOutcome{Kind: Moved}
	if len(s.body) > s.target {
		last := len(s.body) - 1
		out.Dropped, out.HasDropped = s.body[last], true
		s.body = s.body[:last]
	}
	return out
}

// Grow lengthens the snake by one; the tail stays put on the next Advance.
func (s *Snake) Grow() {
	s.target++
}

// Reset shrinks the snake back to a single cell at spawn with a random heading.
func (s *Snake) Reset(spawn grid.Cell, rng grid.Rand) {
	s.place(spawn, grid.RandomDirection(rng))
}

func (s *Snake) Head() grid.Cell {
	return s.body[0]
}

// Occupies reports whether c is part of the body.
func (s *Snake) Occupies(c grid.Cell) bool {
	for _, b := range s.body {
		if b == c {
			return true
		}
	}
	return false
}

func (s *Snake) Len() int                { return len(s.body) }
func (s *Snake) TargetLength() int       { return s.target }
func (s *Snake) Heading() grid.Direction { return s.heading }
func (s *Snake) Pending() grid.Direction { return s.pending }
func (s *Snake) Style() render.Style     { return s.style }

// Body returns a copy of the cells from head to tail.
func (s *Snake) Body() []grid.Cell {
	out := make([]grid.Cell, len(s.body))
	copy(out, s.body)
	return out
}

// Draw paints every body cell.
func (s *Snake) Draw(r render.Renderer) {
	for _, c := range s.body {
		s.style.Paint(r, c)
	}
}
