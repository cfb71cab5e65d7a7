package term

import (
	"context"
	"fmt"
	"log"

	"github.com/gdamore/tcell/v2"

	"gridsnake/internal/config"
	"gridsnake/internal/game"
)

// Build wires a loop onto s. The caller owns s and must finalize it.
func Build(s tcell.Screen, cfg config.Config, seed uint64, pacer game.Pacer, logger *log.Logger) *game.Loop {
	screen := NewScreen(s, cfg.Geometry(), cfg.Colors.Border.Color())
	c := game.NewContext(cfg, seed, screen, NewInput(s), pacer, logger)
	return game.NewLoop(c)
}

// Run takes over the terminal until the player quits or ctx is cancelled.
func Run(ctx context.Context, cfg config.Config, seed uint64, logger *log.Logger) (*game.Loop, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("open terminal: %w", err)
	}
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("init terminal: %w", err)
	}
	defer s.Fini()
	s.HideCursor()

	w, h := s.Size()
	if need := 2 + cfg.GridWidth*cellCols; w < need || h < 2+cfg.GridHeight {
		return nil, fmt.Errorf("terminal is %dx%d, need at least %dx%d", w, h, need, 2+cfg.GridHeight)
	}

	pacer := game.NewTickerPacer(cfg.TickInterval())
	defer pacer.Stop()

	loop := Build(s, cfg, seed, pacer, logger)
	loop.Run(ctx)
	return loop, nil
}
