package application

import (
	"context"
	"testing"
	"time"
)

func TestProgressTickerCompletesOnce(t *testing.T) {
	p := NewProgressTicker(50*time.Millisecond, 5*time.Millisecond)

	go p.Run(context.Background())

	select {
	case <-p.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("progress never completed")
	}

	if got := p.Progress(); got != 100 {
		t.Fatalf("Progress() = %d after completion, want 100", got)
	}

	// Done stays closed; a second receive must not block.
	select {
	case <-p.Done():
	default:
		t.Fatal("Done channel not closed after completion")
	}
}

func TestProgressTickerMonotonic(t *testing.T) {
	p := NewProgressTicker(80*time.Millisecond, 5*time.Millisecond)

	go p.Run(context.Background())

	last := 0
	deadline := time.After(2 * time.Second)
	for {
		select {
		case <-p.Done():
			if p.Progress() < last {
				t.Fatalf("progress decreased from %d to %d", last, p.Progress())
			}
			return
		case <-deadline:
			t.Fatal("progress never completed")
		default:
			cur := p.Progress()
			if cur < last {
				t.Fatalf("progress decreased from %d to %d", last, cur)
			}
			last = cur
			time.Sleep(2 * time.Millisecond)
		}
	}
}

func TestProgressTickerCancellation(t *testing.T) {
	p := NewProgressTicker(10*time.Second, time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		p.Run(ctx)
		close(done)
	}()

	time.Sleep(10 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancellation")
	}

	select {
	case <-p.Done():
		t.Fatal("cancellation must not signal completion")
	default:
	}

	if p.Progress() >= 100 {
		t.Fatalf("Progress() = %d after early cancel, want < 100", p.Progress())
	}
}
