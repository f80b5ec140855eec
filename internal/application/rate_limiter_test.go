package application

import (
	"testing"
	"time"
)

func TestRateLimiterBlocksOverLimit(t *testing.T) {
	rl := NewRateLimiter(time.Minute, 3)

	for i := 0; i < 3; i++ {
		ok, err := rl.Allow("203.0.113.7")
		if !ok || err != nil {
			t.Fatalf("request %d should be allowed, got (%v, %v)", i+1, ok, err)
		}
	}

	ok, err := rl.Allow("203.0.113.7")
	if ok || err == nil {
		t.Fatal("fourth request in the window should be blocked")
	}

	// A different identifier has its own window.
	ok, _ = rl.Allow("198.51.100.2")
	if !ok {
		t.Fatal("other identifiers must not be affected")
	}
}

func TestRateLimiterWindowReset(t *testing.T) {
	rl := NewRateLimiter(20*time.Millisecond, 1)

	if ok, _ := rl.Allow("ip"); !ok {
		t.Fatal("first request should pass")
	}
	if ok, _ := rl.Allow("ip"); ok {
		t.Fatal("second request inside the window should be blocked")
	}

	time.Sleep(30 * time.Millisecond)
	if ok, _ := rl.Allow("ip"); !ok {
		t.Fatal("request after window expiry should pass")
	}
}

func TestRateLimiterGetRemaining(t *testing.T) {
	rl := NewRateLimiter(time.Minute, 5)

	if got := rl.GetRemaining("ip"); got != 5 {
		t.Fatalf("GetRemaining = %d before any request, want 5", got)
	}

	rl.Allow("ip")
	rl.Allow("ip")
	if got := rl.GetRemaining("ip"); got != 3 {
		t.Fatalf("GetRemaining = %d after two requests, want 3", got)
	}

	rl.Reset("ip")
	if got := rl.GetRemaining("ip"); got != 5 {
		t.Fatalf("GetRemaining = %d after Reset, want 5", got)
	}
}
