package loop

import (
	"context"
	"errors"
	"time"
)

// ErrExhausted is returned by a TickSource that has no more frames.
var ErrExhausted = errors.New("loop: tick source exhausted")

// TickSource yields frame timestamps. Next blocks until the next frame is
// due or ctx is done.
type TickSource interface {
	Next(ctx context.Context) (time.Time, error)
}

// FixedStep is a deterministic TickSource that advances a synthetic clock
// by Step on every call. A zero Count means unlimited frames.
type FixedStep struct {
	Start time.Time
	Step  time.Duration
	Count int

	n int
}

// NewFixedStep returns a source of count frames spaced step apart.
func NewFixedStep(step time.Duration, count int) *FixedStep {
	return &FixedStep{Start: time.Unix(0, 0), Step: step, Count: count}
}

// Next returns the next synthetic timestamp without blocking.
func (f *FixedStep) Next(ctx context.Context) (time.Time, error) {
	if err := ctx.Err(); err != nil {
		return time.Time{}, err
	}
	if f.Count > 0 && f.n >= f.Count {
		return time.Time{}, ErrExhausted
	}
	t := f.Start.Add(time.Duration(f.n) * f.Step)
	f.n++
	return t, nil
}

// Ticker is a wall-clock TickSource backed by time.Ticker.
type Ticker struct {
	ticker *time.Ticker
}

// NewTicker returns a wall-clock source firing rate times per second.
func NewTicker(rate int) *Ticker {
	if rate <= 0 {
		rate = 60
	}
	return &Ticker{ticker: time.NewTicker(time.Second / time.Duration(rate))}
}

// Next waits for the next tick.
func (t *Ticker) Next(ctx context.Context) (time.Time, error) {
	select {
	case <-ctx.Done():
		return time.Time{}, ctx.Err()
	case now := <-t.ticker.C:
		return now, nil
	}
}

// Stop releases the underlying timer.
func (t *Ticker) Stop() {
	t.ticker.Stop()
}

// Run drives d from src until ctx is cancelled or src is exhausted.
// Exhaustion is a normal end and returns nil.
func Run(ctx context.Context, src TickSource, d *Driver) error {
	for {
		now, err := src.Next(ctx)
		if errors.Is(err, ErrExhausted) {
			return nil
		}
		if err != nil {
			return err
		}
		d.Frame(now)
	}
}
