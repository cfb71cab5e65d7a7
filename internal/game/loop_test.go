package game

import (
	"context"
	"image/color"
	"testing"
	"time"

	"gridsnake/internal/config"
	"gridsnake/internal/food"
	"gridsnake/internal/grid"
	"gridsnake/internal/render"
)

type paint struct {
	cell  grid.Cell
	color color.Color
}

type fakeRenderer struct {
	clears   int
	fills    []paint
	presents int
}

func (r *fakeRenderer) Clear(color.Color) {
	r.clears++
	r.fills = nil
}
func (r *fakeRenderer) DrawCell(c grid.Cell, fill color.Color) {
	r.fills = append(r.fills, paint{c, fill})
}
func (r *fakeRenderer) OutlineCell(grid.Cell, color.Color) {}
func (r *fakeRenderer) Present()                          { r.presents++ }

// script hands out one batch of events per poll, then nothing
type script struct {
	batches [][]Event
	polls   int
}

func (s *script) Poll() []Event {
	s.polls++
	if len(s.batches) == 0 {
		return nil
	}
	b := s.batches[0]
	s.batches = s.batches[1:]
	return b
}

type countingPacer struct{ waits int }

func (p *countingPacer) Wait() { p.waits++ }

func newTestLoop(batches ...[]Event) (*Loop, *fakeRenderer, *script) {
	r := &fakeRenderer{}
	in := &script{batches: batches}
	c := NewContext(config.Default(), 42, r, in, NopPacer{}, nil)
	return NewLoop(c), r, in
}

// TestScenarioEatAndGrow places food right in front of a fresh snake
func TestScenarioEatAndGrow(t *testing.T) {
	l, r, _ := newTestLoop()
	l.food = food.NewAt(l.ctx.Geometry, l.ctx.Rand, grid.Cell{X: 17, Y: 12}, render.Style{})

	if l.Snake().Head() != (grid.Cell{X: 16, Y: 12}) || l.Snake().Heading() != grid.Right {
		t.Fatalf("unexpected start: head %v heading %v", l.Snake().Head(), l.Snake().Heading())
	}

	l.Step()
	if l.Snake().Head() != (grid.Cell{X: 17, Y: 12}) {
		t.Errorf("head = %v, want (17,12)", l.Snake().Head())
	}
	if l.Snake().TargetLength() != 2 {
		t.Errorf("target length = %d, want 2", l.Snake().TargetLength())
	}
	if l.Snake().Occupies(l.Food().Position()) {
		t.Errorf("food relocated onto the snake at %v", l.Food().Position())
	}
	if l.Stats().Eaten != 1 {
		t.Errorf("eaten = %d, want 1", l.Stats().Eaten)
	}

	r.fills = nil
	l.Step()
	if l.Snake().Len() != 2 {
		t.Errorf("length = %d, want 2", l.Snake().Len())
	}
	bg := l.ctx.Config.Colors.Background.Color()
	for _, p := range r.fills {
		if p.color == bg {
			t.Errorf("cell %v erased on a growth tick", p.cell)
		}
	}
}

func TestFirstTickRedrawsThenDrawsIncrementally(t *testing.T) {
	l, r, _ := newTestLoop()
	l.food = food.NewAt(l.ctx.Geometry, l.ctx.Rand, grid.Cell{X: 0, Y: 0}, render.Style{})

	l.Step()
	if r.clears != 1 || r.presents != 1 {
		t.Fatalf("first tick: clears %d presents %d", r.clears, r.presents)
	}

	r.fills = nil
	l.Step()
	if r.clears != 1 {
		t.Errorf("second tick cleared the board")
	}
	want := []paint{
		{grid.Cell{X: 18, Y: 12}, l.ctx.Config.Colors.Snake.Color()},
		{grid.Cell{X: 17, Y: 12}, l.ctx.Config.Colors.Background.Color()},
	}
	if len(r.fills) != len(want) {
		t.Fatalf("fills = %v, want %v", r.fills, want)
	}
	for i := range want {
		if r.fills[i] != want[i] {
			t.Errorf("fill %d = %v, want %v", i, r.fills[i], want[i])
		}
	}
}

// fixedRand replays values, repeating the last one once exhausted
type fixedRand struct{ vals []int }

func (r *fixedRand) Intn(n int) int {
	v := r.vals[0]
	if len(r.vals) > 1 {
		r.vals = r.vals[1:]
	}
	return v % n
}

func TestRelocatedFoodDrawnOverErasedTail(t *testing.T) {
	l, r, _ := newTestLoop()
	l.food = food.NewAt(l.ctx.Geometry, l.ctx.Rand, grid.Cell{X: 0, Y: 0}, render.Style{})
	l.Step()

	// the next food roll lands on (17,12), the cell the tail leaves this tick
	foodColor := l.ctx.Config.Colors.Food.Color()
	l.food = food.NewAt(l.ctx.Geometry, &fixedRand{vals: []int{17, 12}},
		grid.Cell{X: 18, Y: 12}, render.Style{Fill: foodColor})

	r.fills = nil
	l.Step()
	if r.clears != 1 {
		t.Fatalf("eating tick cleared the board")
	}
	if l.Food().Position() != (grid.Cell{X: 17, Y: 12}) {
		t.Fatalf("food at %v, want (17,12)", l.Food().Position())
	}
	want := []paint{
		{grid.Cell{X: 18, Y: 12}, l.ctx.Config.Colors.Snake.Color()},
		{grid.Cell{X: 17, Y: 12}, l.ctx.Config.Colors.Background.Color()},
		{grid.Cell{X: 17, Y: 12}, foodColor},
	}
	if len(r.fills) != len(want) {
		t.Fatalf("fills = %v, want %v", r.fills, want)
	}
	for i := range want {
		if r.fills[i] != want[i] {
			t.Errorf("fill %d = %v, want %v", i, r.fills[i], want[i])
		}
	}
}

func TestFullBoardLeavesFoodUndrawn(t *testing.T) {
	cfg := config.Default()
	cfg.GridWidth, cfg.GridHeight = 2, 1
	r := &fakeRenderer{}
	l := NewLoop(NewContext(cfg, 3, r, &script{}, nil, nil))

	// a 2x1 board: the snake spawns at (1,0), so the food starts at (0,0)
	if l.Food().Position() != (grid.Cell{X: 0, Y: 0}) {
		t.Fatalf("food at %v, want (0,0)", l.Food().Position())
	}
	l.Step()
	if l.Food().Position() != (grid.Cell{X: 1, Y: 0}) {
		t.Fatalf("food at %v after first meal, want (1,0)", l.Food().Position())
	}

	r.fills = nil
	l.Step()
	if l.Snake().Len() != 2 || l.Stats().Eaten != 2 {
		t.Fatalf("length %d eaten %d, want 2 and 2", l.Snake().Len(), l.Stats().Eaten)
	}
	foodColor := cfg.Colors.Food.Color()
	for _, p := range r.fills {
		if p.color == foodColor {
			t.Errorf("food painted at %v on a full board", p.cell)
		}
	}
	if n := len(r.fills); n == 0 || r.fills[n-1] != (paint{grid.Cell{X: 1, Y: 0}, cfg.Colors.Snake.Color()}) {
		t.Errorf("fills = %v, want the head last", r.fills)
	}
}

func TestQuitStopsBeforeAdvance(t *testing.T) {
	l, r, _ := newTestLoop([]Event{TurnEvent(grid.Up), QuitEvent()})
	head := l.Snake().Head()

	if got := l.Step(); got != Stopped {
		t.Fatalf("Step() = %v, want stopped", got)
	}
	if l.Snake().Head() != head || l.Tick() != 0 || r.presents != 0 {
		t.Errorf("state advanced on the quit tick: head %v tick %d presents %d", l.Snake().Head(), l.Tick(), r.presents)
	}
	if got := l.Step(); got != Stopped || l.Tick() != 0 {
		t.Errorf("stopped loop stepped again: %v tick %d", got, l.Tick())
	}
}

func TestEscapeStops(t *testing.T) {
	l, _, _ := newTestLoop(nil, []Event{EscapeEvent()})
	if got := l.Step(); got != Running {
		t.Fatalf("first Step() = %v", got)
	}
	if got := l.Step(); got != Stopped {
		t.Errorf("Step() after escape = %v, want stopped", got)
	}
}

func TestTurnFromInput(t *testing.T) {
	l, _, _ := newTestLoop([]Event{TurnEvent(grid.Up)}, []Event{TurnEvent(grid.Left)})

	l.Step()
	if l.Snake().Head() != (grid.Cell{X: 16, Y: 11}) {
		t.Errorf("head = %v, want (16,11)", l.Snake().Head())
	}
	l.Step()
	if l.Snake().Head() != (grid.Cell{X: 15, Y: 11}) {
		t.Errorf("head = %v, want (15,11)", l.Snake().Head())
	}
}

func TestCollisionResetsAndRedraws(t *testing.T) {
	l, r, _ := newTestLoop(nil, []Event{TurnEvent(grid.Up)})
	l.food = food.NewAt(l.ctx.Geometry, l.ctx.Rand, grid.Cell{X: 0, Y: 0}, render.Style{})
	l.Step()

	// coil a five cell snake so that turning up bites the body
	s := l.Snake()
	for i := 0; i < 4; i++ {
		s.Grow()
		s.Advance()
	}
	s.Turn(grid.Down)
	s.Advance()
	s.Turn(grid.Left)
	s.Advance()
	if s.Len() != 5 {
		t.Fatalf("setup: length %d", s.Len())
	}

	clears := r.clears
	if got := l.Step(); got != Running {
		t.Fatalf("Step() = %v, want running after reset", got)
	}
	if s.Len() != 1 || s.Head() != l.ctx.Geometry.Center() {
		t.Errorf("after collision: length %d head %v", s.Len(), s.Head())
	}
	if l.Stats().Resets != 1 {
		t.Errorf("resets = %d, want 1", l.Stats().Resets)
	}
	if l.Stats().Longest < 5 {
		t.Errorf("longest = %d, want at least 5", l.Stats().Longest)
	}
	if r.clears != clears+1 {
		t.Errorf("board not cleared on reset")
	}
	if s.Occupies(l.Food().Position()) {
		t.Errorf("food at %v overlaps the reset snake", l.Food().Position())
	}
}

func TestRunUntilQuit(t *testing.T) {
	r := &fakeRenderer{}
	in := &script{batches: [][]Event{nil, nil, nil, nil, {QuitEvent()}}}
	p := &countingPacer{}
	l := NewLoop(NewContext(config.Default(), 1, r, in, p, nil))

	if got := l.Run(context.Background()); got != Stopped {
		t.Fatalf("Run() = %v", got)
	}
	if l.Tick() != 4 || p.waits != 4 {
		t.Errorf("ticks %d waits %d, want 4 each", l.Tick(), p.waits)
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	l, _, in := newTestLoop()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if got := l.Run(ctx); got != Stopped {
		t.Fatalf("Run() = %v", got)
	}
	if l.Tick() != 0 || in.polls != 0 {
		t.Errorf("ran %d ticks after cancellation", l.Tick())
	}
}

func TestStepContextStopsOnCancel(t *testing.T) {
	l, r, in := newTestLoop()
	ctx, cancel := context.WithCancel(context.Background())

	if got := l.StepContext(ctx); got != Running {
		t.Fatalf("StepContext() = %v, want running", got)
	}
	cancel()
	if got := l.StepContext(ctx); got != Stopped {
		t.Fatalf("StepContext() after cancel = %v, want stopped", got)
	}
	if l.Tick() != 1 || in.polls != 1 || r.presents != 1 {
		t.Errorf("cancelled tick advanced: tick %d polls %d presents %d", l.Tick(), in.polls, r.presents)
	}
	if got := l.Step(); got != Stopped {
		t.Errorf("Step() after cancel = %v, want stopped", got)
	}
}

func TestRunWithoutPacer(t *testing.T) {
	in := &script{batches: [][]Event{nil, nil, {QuitEvent()}}}
	l := NewLoop(NewContext(config.Default(), 1, &fakeRenderer{}, in, nil, nil))

	if got := l.Run(context.Background()); got != Stopped {
		t.Fatalf("Run() = %v", got)
	}
	if l.Tick() != 2 {
		t.Errorf("ticks %d, want 2", l.Tick())
	}
}

func TestSeedFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Seed = 77
	a := NewLoop(NewContext(cfg, 1, &fakeRenderer{}, &script{}, NopPacer{}, nil))
	b := NewLoop(NewContext(cfg, 2, &fakeRenderer{}, &script{}, NopPacer{}, nil))
	if a.Food().Position() != b.Food().Position() {
		t.Errorf("same config seed placed food at %v and %v", a.Food().Position(), b.Food().Position())
	}
}

func TestTickerPacer(t *testing.T) {
	p := NewTickerPacer(5 * time.Millisecond)
	defer p.Stop()

	start := time.Now()
	p.Wait()
	p.Wait()
	if elapsed := time.Since(start); elapsed < 5*time.Millisecond {
		t.Errorf("two waits took %v", elapsed)
	}
}
