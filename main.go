package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gridsnake/internal/config"
	"gridsnake/internal/frontend/headless"
	"gridsnake/internal/frontend/term"
	"gridsnake/internal/frontend/window"
	"gridsnake/internal/game"
)

const windowTitle = "Snake"

var (
	frontendFlag = flag.String("frontend", "window", "Frontend: window, term, headless")
	configFlag   = flag.String("config", "", "JSON config file (missing file means defaults)")
	logFlag      = flag.String("log", "", "Log file; term logs nowhere unless this is set")

	widthFlag  = flag.Int("width", 0, "Grid width in cells")
	heightFlag = flag.Int("height", 0, "Grid height in cells")
	cellFlag   = flag.Int("cell", 0, "Cell size in pixels")
	tpsFlag    = flag.Int("tps", 0, "Ticks per second")
	seedFlag   = flag.Int64("seed", 0, "Random seed (0 = time based)")

	ticksFlag    = flag.Int("ticks", 200, "headless: ticks to play")
	turnsFlag    = flag.String("turns", "", "headless: turns as tick:dir,... e.g. 3:up,9:left")
	snapshotFlag = flag.String("snapshot", "", "headless: write the final frame to this PNG")
	scaleFlag    = flag.Int("scale", 1, "headless: snapshot scale factor")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		log.Fatal(err)
	}
	applyFlags(&cfg)
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	logger, closeLog, err := setupLogging(*logFlag, *frontendFlag == "term")
	if err != nil {
		log.Fatal(err)
	}
	defer closeLog()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	seed := uint64(time.Now().UnixNano())
	loop, err := run(ctx, cfg, seed, logger)
	if err != nil {
		stop()
		closeLog()
		log.Fatal(err)
	}
	if loop != nil {
		s := loop.Stats()
		logger.Printf("bye: %d ticks, %d eaten, longest %d", s.Ticks, s.Eaten, s.Longest)
	}
}

func run(ctx context.Context, cfg config.Config, seed uint64, logger *log.Logger) (*game.Loop, error) {
	switch *frontendFlag {
	case "window":
		board := window.NewBoard(cfg.Geometry(), cfg.CellSize)
		c := game.NewContext(cfg, seed, board, &window.Keyboard{}, nil, logger)
		return window.Run(ctx, c, board, windowTitle)
	case "term":
		return term.Run(ctx, cfg, seed, logger)
	case "headless":
		turns, err := headless.ParseTurns(*turnsFlag)
		if err != nil {
			return nil, err
		}
		return headless.Run(ctx, cfg, seed, headless.Options{
			Ticks:    *ticksFlag,
			Turns:    turns,
			Snapshot: *snapshotFlag,
			Scale:    *scaleFlag,
		}, logger)
	}
	return nil, fmt.Errorf("unknown frontend %q", *frontendFlag)
}

// applyFlags copies explicitly set flags over the loaded config.
func applyFlags(cfg *config.Config) {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "width":
			cfg.GridWidth = *widthFlag
		case "height":
			cfg.GridHeight = *heightFlag
		case "cell":
			cfg.CellSize = *cellFlag
		case "tps":
			cfg.TickRate = *tpsFlag
		case "seed":
			cfg.Seed = *seedFlag
		}
	})
}

// setupLogging sends logs to path when given. Otherwise logs go to stderr,
// or nowhere when the terminal frontend owns the screen.
func setupLogging(path string, quiet bool) (*log.Logger, func(), error) {
	if path == "" {
		if quiet {
			return log.New(io.Discard, "", 0), func() {}, nil
		}
		return log.New(os.Stderr, "", log.LstdFlags), func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log: %w", err)
	}
	return log.New(f, "", log.LstdFlags|log.Lmicroseconds), func() { f.Close() }, nil
}
