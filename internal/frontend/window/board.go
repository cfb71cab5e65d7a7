// Package window runs the game in a desktop window with ebiten.
package window

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"gridsnake/internal/grid"
)

// Board is an offscreen image the loop paints into. Cells persist between
// frames, so only changed cells need to be drawn each tick.
type Board struct {
	img      *ebiten.Image
	cellSize int
}

func NewBoard(geom grid.Geometry, cellSize int) *Board {
	return &Board{
		img:      ebiten.NewImage(geom.Width*cellSize, geom.Height*cellSize),
		cellSize: cellSize,
	}
}

func (b *Board) Clear(bg color.Color) {
	b.img.Fill(bg)
}

func (b *Board) DrawCell(c grid.Cell, fill color.Color) {
	x, y, size := b.rect(c)
	vector.DrawFilledRect(b.img, x, y, size, size, fill, false)
}

func (b *Board) OutlineCell(c grid.Cell, stroke color.Color) {
	x, y, size := b.rect(c)
	vector.StrokeRect(b.img, x+0.5, y+0.5, size-1, size-1, 1, stroke, false)
}

// Present is a no-op; ebiten shows the board from Draw.
func (b *Board) Present() {}

func (b *Board) Image() *ebiten.Image {
	return b.img
}

func (b *Board) rect(c grid.Cell) (x, y, size float32) {
	s := float32(b.cellSize)
	return float32(c.X) * s, float32(c.Y) * s, s
}
