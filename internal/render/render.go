// Package render defines what the game needs from a drawing surface.
package render

import (
	"image/color"

	"gridsnake/internal/grid"
)

// Renderer draws whole cells onto a surface. Frontends implement it.
type Renderer interface {
	Clear(bg color.Color)
	DrawCell(c grid.Cell, fill color.Color)
	// OutlineCell strokes a one pixel frame inside the cell. Surfaces without
	// sub-cell resolution may ignore it.
	OutlineCell(c grid.Cell, stroke color.Color)
	Present()
}

// Drawable is anything that can paint itself in full.
type Drawable interface {
	Draw(r Renderer)
}

// Style is the fill and border color of an entity.
type Style struct {
	Fill   color.Color
	Border color.Color
}

// Paint fills c and, when a border color is set, outlines it.
func (s Style) Paint(r Renderer, c grid.Cell) {
	r.DrawCell(c, s.Fill)
	if s.Border != nil {
		r.OutlineCell(c, s.Border)
	}
}
