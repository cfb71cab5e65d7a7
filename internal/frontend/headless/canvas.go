// Package headless runs the game without a display: turns come from a script,
// frames are painted into an in-memory image that can be saved as PNG.
package headless

import (
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"

	"gridsnake/internal/grid"
)

// Canvas is a Renderer backed by a gg drawing context.
type Canvas struct {
	dc       *gg.Context
	cellSize int
	frames   int
}

func NewCanvas(geom grid.Geometry, cellSize int) *Canvas {
	return &Canvas{
		dc:       gg.NewContext(geom.Width*cellSize, geom.Height*cellSize),
		cellSize: cellSize,
	}
}

func (c *Canvas) Clear(bg color.Color) {
	c.dc.SetColor(bg)
	c.dc.Clear()
}

func (c *Canvas) DrawCell(cell grid.Cell, fill color.Color) {
	x, y, s := c.rect(cell)
	c.dc.DrawRectangle(x, y, s, s)
	c.dc.SetColor(fill)
	c.dc.Fill()
}

func (c *Canvas) OutlineCell(cell grid.Cell, stroke color.Color) {
	x, y, s := c.rect(cell)
	c.dc.DrawRectangle(x+0.5, y+0.5, s-1, s-1)
	c.dc.SetColor(stroke)
	c.dc.SetLineWidth(1)
	c.dc.Stroke()
}

// Present counts finished frames.
func (c *Canvas) Present() {
	c.frames++
}

func (c *Canvas) Frames() int {
	return c.frames
}

func (c *Canvas) Image() image.Image {
	return c.dc.Image()
}

// SavePNG writes the current frame enlarged scale times with nearest
// neighbour sampling so cell edges stay sharp.
func (c *Canvas) SavePNG(path string, scale int) error {
	img := c.Image()
	if scale > 1 {
		b := img.Bounds()
		img = imaging.Resize(img, b.Dx()*scale, b.Dy()*scale, imaging.NearestNeighbor)
	}
	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

func (c *Canvas) rect(cell grid.Cell) (x, y, size float64) {
	s := float64(c.cellSize)
	return float64(cell.X) * s, float64(cell.Y) * s, s
}
