// Package grid maps the playing field onto a discrete cell grid whose edges wrap around.
package grid

import "fmt"

// Rand is the uniform integer source used for placement. Both math/rand and
// golang.org/x/exp/rand generators satisfy it.
type Rand interface {
	Intn(n int) int
}

// Cell is one discrete grid position.
type Cell struct {
	X, Y int
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Geometry holds the grid dimensions in cells.
type Geometry struct {
	Width  int
	Height int
}

// WrapAdd steps one cell from c in direction d. Leaving one edge re-enters from the opposite one.
func (g Geometry) WrapAdd(c Cell, d Direction) Cell {
	dx, dy := d.Delta()
	return Cell{X: floorMod(c.X+dx, g.Width), Y: floorMod(c.Y+dy, g.Height)}
}

// RandomCell returns a uniformly random cell of the whole grid.
func (g Geometry) RandomCell(rng Rand) Cell {
	return Cell{X: rng.Intn(g.Width), Y: rng.Intn(g.Height)}
}

// Center is the spawn cell.
func (g Geometry) Center() Cell {
	return Cell{X: g.Width / 2, Y: g.Height / 2}
}

func (g Geometry) Contains(c Cell) bool {
	return c.X >= 0 && c.X < g.Width && c.Y >= 0 && c.Y < g.Height
}

// Area is the number of cells on the grid.
func (g Geometry) Area() int {
	return g.Width * g.Height
}

func floorMod(a, n int) int {
	m := a % n
	if m < 0 {
		m += n
	}
	return m
}
