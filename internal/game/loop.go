// Package game runs the snake: it drains input, advances the snake, handles
// eating and self-collision, and renders the changes once per tick.
package game

import (
	"context"

	"gridsnake/internal/food"
	"gridsnake/internal/grid"
	"gridsnake/internal/render"
	"gridsnake/internal/snake"
)

type State uint8

const (
	Running State = iota
	Resetting
	Stopped
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Resetting:
		return "resetting"
	case Stopped:
		return "stopped"
	}
	return "unknown"
}

// Stats are counters for the current process. They are never persisted.
type Stats struct {
	Ticks   uint64
	Eaten   int
	Resets  int
	Longest int
}

// Loop owns the snake and the food. It is not safe for concurrent use; a
// single goroutine calls Step or Run.
type Loop struct {
	ctx   *Context
	snake *snake.Snake
	food  *food.Food
	state State
	stats Stats

	background render.Style
	redraw     bool
}

// NewLoop places a one cell snake heading right at the grid center and food on a free cell.
func NewLoop(c *Context) *Loop {
	colors := c.Config.Colors
	border := colors.Border.Color()
	s := snake.New(c.Geometry, c.Geometry.Center(), grid.Right,
		render.Style{Fill: colors.Snake.Color(), Border: border})
	f := food.New(c.Geometry, c.Rand, s,
		render.Style{Fill: colors.Food.Color(), Border: border})

	return &Loop{
		ctx:        c,
		snake:      s,
		food:       f,
		background: render.Style{Fill: colors.Background.Color()},
		redraw:     true,
		stats:      Stats{Longest: s.Len()},
	}
}

func (l *Loop) Snake() *snake.Snake { return l.snake }
func (l *Loop) Food() *food.Food    { return l.food }
func (l *Loop) State() State        { return l.state }
func (l *Loop) Stats() Stats        { return l.stats }
func (l *Loop) Tick() uint64        { return l.stats.Ticks }

// Step runs one tick and returns the resulting state. Once Stopped, further
// calls do nothing.
func (l *Loop) Step() State {
	if l.state == Stopped {
		return Stopped
	}

	for _, ev := range l.ctx.Input.Poll() {
		if ev.stops() {
			l.stop()
			return Stopped
		}
		if ev.Kind == EventKey && ev.Key == KeyDirection {
			l.snake.Turn(ev.Dir)
		}
	}

	out := l.snake.Advance()
	if n := l.snake.Len(); n > l.stats.Longest {
		l.stats.Longest = n
	}
	foodMoved := false

	switch {
	case out.Collided():
		l.reset()
	case l.snake.Head() == l.food.Position():
		l.snake.Grow()
		l.stats.Eaten++
		foodMoved = l.relocateFood()
	}

	l.render(out, foodMoved)
	l.stats.Ticks++
	return l.state
}

// StepContext is Step for callers that own a cancellable context. A
// cancelled ctx stops the loop without advancing it.
func (l *Loop) StepContext(ctx context.Context) State {
	select {
	case <-ctx.Done():
		l.stop()
		return Stopped
	default:
	}
	return l.Step()
}

// Run steps until the loop stops or ctx is cancelled, waiting on the pacer
// after every tick. Cancellation is observed between ticks.
func (l *Loop) Run(ctx context.Context) State {
	for l.StepContext(ctx) != Stopped {
		l.ctx.Pacer.Wait()
	}
	return Stopped
}

func (l *Loop) reset() {
	l.state = Resetting
	l.ctx.Logger.Printf("self-collision at %v, length %d, tick %d",
		l.snake.Head(), l.snake.Len(), l.stats.Ticks)

	l.snake.Reset(l.ctx.Geometry.Center(), l.ctx.Rand)
	l.relocateFood()
	l.stats.Resets++
	l.redraw = true
	l.state = Running
}

// relocateFood moves the food off the snake. On a full board the food stays
// under the snake and nothing is drawn for it.
func (l *Loop) relocateFood() bool {
	if l.food.Relocate(l.snake) {
		return true
	}
	l.ctx.Logger.Printf("board full at length %d, food stays at %v",
		l.snake.Len(), l.food.Position())
	return false
}

func (l *Loop) stop() {
	if l.state == Stopped {
		return
	}
	l.state = Stopped
	l.ctx.Logger.Printf("stopped after %d ticks: eaten %d, resets %d, longest %d",
		l.stats.Ticks, l.stats.Eaten, l.stats.Resets, l.stats.Longest)
}

func (l *Loop) render(out snake.MoveOutcome, foodMoved bool) {
	r := l.ctx.Renderer
	if l.redraw {
		r.Clear(l.background.Fill)
		l.snake.Draw(r)
		l.food.Draw(r)
		l.redraw = false
		r.Present()
		return
	}

	l.snake.Style().Paint(r, l.snake.Head())
	if out.HasDropped {
		l.background.Paint(r, out.Dropped)
	}
	if foodMoved {
		l.food.Draw(r)
	}
	r.Present()
}
