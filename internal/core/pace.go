package core

import (
	"context"
	"time"
)

// Pacer blocks between presenting a frame and advancing the simulation.
// Wait returns ctx.Err() if the context is cancelled while waiting.
type Pacer interface {
	Wait(ctx context.Context) error
}

// TickerPacer paces frames in real time with a fixed interval.
type TickerPacer struct {
	ticker *time.Ticker
}

// NewTickerPacer creates a pacer that releases once per interval.
// Call Stop when done to release the underlying ticker.
func NewTickerPacer(interval time.Duration) *TickerPacer {
	if interval <= 0 {
		interval = time.Millisecond
	}
	return &TickerPacer{ticker: time.NewTicker(interval)}
}

// Wait blocks until the next tick or until ctx is cancelled.
func (p *TickerPacer) Wait(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-p.ticker.C:
		return nil
	}
}

// Stop releases the ticker.
func (p *TickerPacer) Stop() {
	p.ticker.Stop()
}

// ManualPacer never sleeps. It counts waits so tests can run a scene for an
// exact number of frames without real time passing.
type ManualPacer struct {
	Waits int
}

// Wait records the call and returns immediately unless ctx is done.
func (p *ManualPacer) Wait(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	p.Waits++
	return nil
}
