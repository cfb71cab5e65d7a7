package game

import (
	"io"
	"log"

	"github.com/google/uuid"
	"golang.org/x/exp/rand"

	"gridsnake/internal/config"
	"gridsnake/internal/grid"
	"gridsnake/internal/render"
)

// Context carries everything a Loop depends on. It is built once at startup.
// Pacer is only used by Loop.Run; NewContext substitutes NopPacer for nil.
type Context struct {
	Config   config.Config
	Geometry grid.Geometry
	Rand     grid.Rand
	Renderer render.Renderer
	Input    InputSource
	Pacer    Pacer
	Logger   *log.Logger
	Session  string
}

// NewContext wires a context for cfg. A nil logger discards output, a nil
// pacer never waits and a zero seed in cfg is replaced by seed.
func NewContext(cfg config.Config, seed uint64, r render.Renderer, in InputSource, p Pacer, logger *log.Logger) *Context {
	if cfg.Seed != 0 {
		seed = uint64(cfg.Seed)
	}
	session := uuid.NewString()[:8]
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	logger.SetPrefix("[snake " + session + "] ")
	if p == nil {
		p = NopPacer{}
	}

	return &Context{
		Config:   cfg,
		Geometry: cfg.Geometry(),
		Rand:     rand.New(rand.NewSource(seed)),
		Renderer: r,
		Input:    in,
		Pacer:    p,
		Logger:   logger,
		Session:  session,
	}
}
