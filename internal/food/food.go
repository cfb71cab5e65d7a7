// Package food holds the single piece of food on the board.
package food

import (
	"gridsnake/internal/grid"
	"gridsnake/internal/render"
)

// Occupier reports cells food must not be placed on.
type Occupier interface {
	Occupies(c grid.Cell) bool
}

// Food is one occupied cell that moves somewhere free when eaten.
type Food struct {
	geom  grid.Geometry
	rng   grid.Rand
	pos   grid.Cell
	style render.Style
}

// New returns food at a random cell not covered by forbidden.
func New(geom grid.Geometry, rng grid.Rand, forbidden Occupier, style render.Style) *Food {
	f := &Food{geom: geom, rng: rng, style: style}
	f.Relocate(forbidden)
	return f
}

// NewAt returns food placed at c.
func NewAt(geom grid.Geometry, rng grid.Rand, c grid.Cell, style render.Style) *Food {
	return &Food{geom: geom, rng: rng, pos: c, style: style}
}

func (f *Food) Position() grid.Cell {
	return f.pos
}

// Relocate rolls random cells until one is free. After a long run of misses it
// scans the grid in row order instead. It returns false, leaving the food where
// it was, only when every cell is occupied.
func (f *Food) Relocate(forbidden Occupier) bool {
	for i := 0; i < 4*f.geom.Area(); i++ {
		c := f.geom.RandomCell(f.rng)
		if !forbidden.Occupies(c) {
			f.pos = c
			return true
		}
	}

	for y := 0; y < f.geom.Height; y++ {
		for x := 0; x < f.geom.Width; x++ {
			c := grid.Cell{X: x, Y: y}
			if !forbidden.Occupies(c) {
				f.pos = c
				return true
			}
		}
	}
	return false
}

func (f *Food) Draw(r render.Renderer) {
	f.style.Paint(r, f.pos)
}
