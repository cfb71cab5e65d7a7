package headless

import (
	"context"
	"log"

	"gridsnake/internal/config"
	"gridsnake/internal/game"
	"gridsnake/internal/grid"
)

// Options control a headless run.
type Options struct {
	Ticks    int
	Turns    map[int][]grid.Direction
	Snapshot string // PNG path for the final frame, empty to skip
	Scale    int
}

// Run plays opts.Ticks ticks as fast as possible.
func Run(ctx context.Context, cfg config.Config, seed uint64, opts Options, logger *log.Logger) (*game.Loop, error) {
	canvas := NewCanvas(cfg.Geometry(), cfg.CellSize)
	c := game.NewContext(cfg, seed, canvas, NewScript(opts.Ticks, opts.Turns), game.NopPacer{}, logger)
	loop := game.NewLoop(c)
	loop.Run(ctx)

	if opts.Snapshot != "" {
		if err := canvas.SavePNG(opts.Snapshot, opts.Scale); err != nil {
			return loop, err
		}
		c.Logger.Printf("snapshot of tick %d written to %s", loop.Tick(), opts.Snapshot)
	}
	return loop, nil
}
