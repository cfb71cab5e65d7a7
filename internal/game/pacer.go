package game

import "time"

// Pacer blocks until the next tick boundary.
type Pacer interface {
	Wait()
}

// TickerPacer paces at a fixed rate on a time.Ticker. Missed ticks are not
// made up; the ticker drops them.
type TickerPacer struct {
	ticker *time.Ticker
}

func NewTickerPacer(interval time.Duration) *TickerPacer {
	return &TickerPacer{ticker: time.NewTicker(interval)}
}

func (p *TickerPacer) Wait() { <-p.ticker.C }

func (p *TickerPacer) Stop() { p.ticker.Stop() }

// NopPacer never blocks. Headless runs and tests use it.
type NopPacer struct{}

func (NopPacer) Wait() {}
