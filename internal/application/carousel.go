package application

import (
	"sync"
	"time"
)

// DefaultCarouselInterval is the auto-advance period of the featured
// carousel.
const DefaultCarouselInterval = 8 * time.Second

type CarouselState int

const (
	// CarouselIdle: constructed but not started.
	CarouselIdle CarouselState = iota
	// CarouselAdvancing: the auto-advance timer is running.
	CarouselAdvancing
	// CarouselPaused: suspended because the carousel is hovered, focused or
	// out of the viewport. The timer does not fire while paused.
	CarouselPaused
)

// Carousel drives the featured image slideshow: an auto-advance timer that
// suspends while the carousel is hovered/focused or scrolled out of view, and
// resumes when those conditions clear. Manual navigation moves the slide
// immediately without touching the timer's running/paused status.
//
// Stop cancels the timer outright; it must be called when the owning view
// goes away so no goroutine or ticker leaks.
type Carousel struct {
	mu       sync.Mutex
	slides   int
	current  int
	interval time.Duration
	preload  *PreloadTracker
	state    CarouselState
	visible  bool
	hovered  bool
	focused  bool
	ticker   *time.Ticker
	done     chan struct{}
	stopOnce sync.Once
}

func NewCarousel(slides int, interval time.Duration, preload *PreloadTracker) *Carousel {
	if interval <= 0 {
		interval = DefaultCarouselInterval
	}
	if preload == nil {
		preload = NewPreloadTracker()
	}
	c := &Carousel{
		slides:   slides,
		interval: interval,
		preload:  preload,
		visible:  true,
		done:     make(chan struct{}),
	}
	c.markNeighbors()
	return c
}

// Start launches the auto-advance loop. The carousel begins advancing unless
// it is already hovered, focused or hidden.
func (c *Carousel) Start() {
	c.mu.Lock()
	if c.ticker != nil {
		c.mu.Unlock()
		return
	}
	c.ticker = time.NewTicker(c.interval)
	c.applyTimerState()
	c.mu.Unlock()

	go c.loop()
}

// Stop cancels the timer and ends the loop. Idempotent.
func (c *Carousel) Stop() {
	c.stopOnce.Do(func() {
		c.mu.Lock()
		if c.ticker != nil {
			c.ticker.Stop()
		}
		c.state = CarouselIdle
		c.mu.Unlock()
		close(c.done)
	})
}

func (c *Carousel) loop() {
	for {
		select {
		case <-c.done:
			return
		case <-c.ticker.C:
			c.tick()
		}
	}
}

func (c *Carousel) tick() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != CarouselAdvancing || c.slides == 0 {
		return
	}
	c.current = (c.current + 1) % c.slides
	c.markNeighbors()
}

// SetVisible reports viewport visibility. Leaving the viewport suspends the
// timer; re-entering with no hover or focus resumes it.
func (c *Carousel) SetVisible(visible bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.visible = visible
	c.applyTimerState()
}

// SetHovered reports pointer hover over the carousel.
func (c *Carousel) SetHovered(hovered bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.hovered = hovered
	c.applyTimerState()
}

// SetFocused reports keyboard focus within the carousel.
func (c *Carousel) SetFocused(focused bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.focused = focused
	c.applyTimerState()
}

// applyTimerState resolves the advancing/paused state from the visibility and
// interaction flags. Callers hold c.mu. Not started yet means idle regardless
// of flags.
func (c *Carousel) applyTimerState() {
	if c.ticker == nil {
		return
	}
	shouldRun := c.visible && !c.hovered && !c.focused
	switch {
	case shouldRun && c.state != CarouselAdvancing:
		c.state = CarouselAdvancing
		c.ticker.Reset(c.interval)
	case !shouldRun && c.state == CarouselAdvancing:
		c.state = CarouselPaused
		c.ticker.Stop()
	}
}

// Next advances one slide manually.
func (c *Carousel) Next() {
	c.goToLocked(1, true)
}

// Prev steps back one slide manually.
func (c *Carousel) Prev() {
	c.goToLocked(-1, true)
}

// GoTo jumps to a specific slide. Out-of-range indexes are ignored.
func (c *Carousel) GoTo(index int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if index < 0 || index >= c.slides {
		return
	}
	c.current = index
	c.preload.Reset()
	c.markNeighbors()
}

func (c *Carousel) goToLocked(delta int, resetPreload bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.slides == 0 {
		return
	}
	c.current = ((c.current+delta)%c.slides + c.slides) % c.slides
	if resetPreload {
		c.preload.Reset()
	}
	c.markNeighbors()
}

// SetSlides updates the slide count when the featured collection finishes
// loading. The current slide is clamped into the new range.
func (c *Carousel) SetSlides(slides int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.slides = slides
	if slides == 0 {
		c.current = 0
		return
	}
	if c.current >= slides {
		c.current = slides - 1
	}
	c.markNeighbors()
}

// Current returns the active slide index.
func (c *Carousel) Current() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

// State returns the timer state.
func (c *Carousel) State() CarouselState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// markNeighbors eagerly marks the previous, current and next slides for
// preloading. Callers hold c.mu.
func (c *Carousel) markNeighbors() {
	if c.slides == 0 {
		return
	}
	for _, delta := range []int{-1, 0, 1} {
		c.preload.Mark(((c.current+delta)%c.slides + c.slides) % c.slides)
	}
}
