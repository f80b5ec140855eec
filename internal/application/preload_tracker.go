package application

import "sync"

// PreloadTracker records which carousel slides have been marked for eager
// loading. It is an injected dependency rather than package state so each
// carousel (and each test) gets a fresh instance.
type PreloadTracker struct {
	mu     sync.Mutex
	loaded map[int]struct{}
}

func NewPreloadTracker() *PreloadTracker {
	return &PreloadTracker{loaded: make(map[int]struct{})}
}

// Mark records a slide index as loaded. Marking twice is harmless.
func (t *PreloadTracker) Mark(index int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.loaded[index] = struct{}{}
}

// IsLoaded reports whether the slide was marked.
func (t *PreloadTracker) IsLoaded(index int) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, ok := t.loaded[index]
	return ok
}

// Reset forgets all marks.
func (t *PreloadTracker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.loaded = make(map[int]struct{})
}

// Size returns the number of marked slides.
func (t *PreloadTracker) Size() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.loaded)
}
