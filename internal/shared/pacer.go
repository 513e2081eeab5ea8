package shared

import (
	"context"
	"math/rand"
	"time"
)

// Pacer spaces out consecutive upstream requests. It exists purely for
// politeness toward the search provider, not correctness.
type Pacer interface {
	// Wait blocks for one pacing interval or until the context is done.
	Wait(ctx context.Context)
}

// UniformPacer sleeps for a duration drawn uniformly from [Min, Max].
type UniformPacer struct {
	Min time.Duration
	Max time.Duration
}

// NewUniformPacer creates a pacer from the configured bounds in seconds,
// falling back to the 1-3s window when the bounds are unset or inverted.
func NewUniformPacer(cfg PacingConfig) *UniformPacer {
	min := time.Duration(cfg.MinSeconds * float64(time.Second))
	max := time.Duration(cfg.MaxSeconds * float64(time.Second))
	if min <= 0 || max < min {
		min = time.Second
		max = 3 * time.Second
	}
	return &UniformPacer{Min: min, Max: max}
}

func (p *UniformPacer) Wait(ctx context.Context) {
	delay := p.Min
	if span := p.Max - p.Min; span > 0 {
		delay += time.Duration(rand.Int63n(int64(span)))
	}

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}

// NoopPacer skips pacing entirely. Used by tests and dry runs.
type NoopPacer struct{}

func (NoopPacer) Wait(context.Context) {}
