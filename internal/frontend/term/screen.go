// Package term runs the game inside a terminal with tcell.
package term

import (
	"image/color"

	"github.com/gdamore/tcell/v2"

	"gridsnake/internal/grid"
)

// cellCols is how many terminal columns make one grid cell look square.
const cellCols = 2

// Screen draws grid cells as background-colored blocks. The field is offset
// by one row and column to leave room for a frame.
type Screen struct {
	s      tcell.Screen
	geom   grid.Geometry
	border tcell.Style
}

func NewScreen(s tcell.Screen, geom grid.Geometry, border color.Color) *Screen {
	return &Screen{
		s:      s,
		geom:   geom,
		border: tcell.StyleDefault.Foreground(tcellColor(border)),
	}
}

func (sc *Screen) Clear(bg color.Color) {
	sc.s.Fill(' ', tcell.StyleDefault.Background(tcellColor(bg)))
	sc.drawFrame()
}

func (sc *Screen) DrawCell(c grid.Cell, fill color.Color) {
	style := tcell.StyleDefault.Background(tcellColor(fill))
	x, y := sc.origin(c)
	for i := 0; i < cellCols; i++ {
		sc.s.SetContent(x+i, y, ' ', nil, style)
	}
}

// OutlineCell does nothing: a character cell has no room for an outline.
func (sc *Screen) OutlineCell(grid.Cell, color.Color) {}

func (sc *Screen) Present() {
	sc.s.Show()
}

func (sc *Screen) origin(c grid.Cell) (x, y int) {
	return 1 + c.X*cellCols, 1 + c.Y
}

func (sc *Screen) drawFrame() {
	right := 1 + sc.geom.Width*cellCols
	bottom := 1 + sc.geom.Height
	for x := 1; x < right; x++ {
		sc.s.SetContent(x, 0, tcell.RuneHLine, nil, sc.border)
		sc.s.SetContent(x, bottom, tcell.RuneHLine, nil, sc.border)
	}
	for y := 1; y < bottom; y++ {
		sc.s.SetContent(0, y, tcell.RuneVLine, nil, sc.border)
		sc.s.SetContent(right, y, tcell.RuneVLine, nil, sc.border)
	}
	sc.s.SetContent(0, 0, tcell.RuneULCorner, nil, sc.border)
	sc.s.SetContent(right, 0, tcell.RuneURCorner, nil, sc.border)
	sc.s.SetContent(0, bottom, tcell.RuneLLCorner, nil, sc.border)
	sc.s.SetContent(right, bottom, tcell.RuneLRCorner, nil, sc.border)
}

func tcellColor(c color.Color) tcell.Color {
	r, g, b, _ := c.RGBA()
	return tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8))
}
