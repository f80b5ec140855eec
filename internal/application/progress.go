package application

import (
	"context"
	"sync"
	"time"
)

// ProgressTicker advances a progress value monotonically from 0 to 100 over a
// fixed duration and signals completion exactly once. It replaces the
// animation-frame loop of the site's loading screen with an explicit,
// cancellable tick abstraction.
type ProgressTicker struct {
	duration time.Duration
	step     time.Duration

	mu       sync.Mutex
	progress int
	done     chan struct{}
	doneOnce sync.Once
	started  bool
}

// NewProgressTicker creates a ticker that reaches 100 after duration,
// updating every step. A non-positive step defaults to duration/100.
func NewProgressTicker(duration, step time.Duration) *ProgressTicker {
	if duration <= 0 {
		duration = time.Second
	}
	if step <= 0 {
		step = duration / 100
		if step <= 0 {
			step = time.Millisecond
		}
	}
	return &ProgressTicker{
		duration: duration,
		step:     step,
		done:     make(chan struct{}),
	}
}

// Run drives the progress until completion or until ctx is cancelled. It
// blocks; callers that want it in the background run it in a goroutine.
// Cancellation stops the ticker without signalling completion.
func (p *ProgressTicker) Run(ctx context.Context) {
	p.mu.Lock()
	if p.started {
		p.mu.Unlock()
		return
	}
	p.started = true
	p.mu.Unlock()

	start := time.Now()
	ticker := time.NewTicker(p.step)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			elapsed := time.Since(start)
			value := int(elapsed * 100 / p.duration)
			if value > 100 {
				value = 100
			}
			p.advanceTo(value)
			if value >= 100 {
				p.doneOnce.Do(func() { close(p.done) })
				return
			}
		}
	}
}

// advanceTo raises the progress, never lowering it.
func (p *ProgressTicker) advanceTo(value int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if value > p.progress {
		p.progress = value
	}
}

// Progress returns the current value in [0, 100].
func (p *ProgressTicker) Progress() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.progress
}

// Done is closed exactly once, when progress reaches 100. It is never closed
// on cancellation.
func (p *ProgressTicker) Done() <-chan struct{} {
	return p.done
}
