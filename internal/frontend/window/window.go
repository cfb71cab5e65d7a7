package window

import (
	"context"
	"errors"

	"github.com/hajimehoshi/ebiten/v2"

	"gridsnake/internal/game"
)

// Window adapts a game.Loop to ebiten.Game. Ebiten calls Update at the tick
// rate, so it doubles as the pacer.
type Window struct {
	ctx   context.Context
	loop  *game.Loop
	board *Board
	w, h  int
}

// New adapts loop. Cancelling ctx ends the game on the next Update.
func New(ctx context.Context, loop *game.Loop, board *Board, w, h int) *Window {
	return &Window{ctx: ctx, loop: loop, board: board, w: w, h: h}
}

func (win *Window) Update() error {
	if win.loop.StepContext(win.ctx) == game.Stopped {
		return ebiten.Termination
	}
	return nil
}

func (win *Window) Draw(screen *ebiten.Image) {
	screen.DrawImage(win.board.Image(), &ebiten.DrawImageOptions{})
}

// Layout keeps the logical field size; ebiten scales it to the window.
func (win *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	return win.w, win.h
}

// Run opens the window and blocks until the game stops or ctx is cancelled.
// Closing the window stops the game.
func Run(ctx context.Context, c *game.Context, board *Board, title string) (*game.Loop, error) {
	loop := game.NewLoop(c)
	w, h := c.Config.ScreenSize()

	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizable(true)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(c.Config.TickRate)

	err := ebiten.RunGame(New(ctx, loop, board, w, h))
	if err != nil && !errors.Is(err, ebiten.Termination) {
		return loop, err
	}
	return loop, nil
}
