package scheduler

import (
	"context"
	"log"
	"time"

	"github.com/rudhirsetu/website-backend/internal/application"
)

// ContentScheduler keeps the cached CMS content warm: the site settings and
// the featured carousel collection are refreshed on a fixed interval so page
// loads rarely hit a cold cache.
type ContentScheduler struct {
	settings *application.SettingsService
	gallery  *application.GalleryService
	interval time.Duration
	ticker   *time.Ticker
	done     chan struct{}
}

// NewContentScheduler creates the scheduler. A non-positive interval
// defaults to one hour.
func NewContentScheduler(settings *application.SettingsService, gallery *application.GalleryService, interval time.Duration) *ContentScheduler {
	if interval <= 0 {
		interval = time.Hour
	}
	return &ContentScheduler{
		settings: settings,
		gallery:  gallery,
		interval: interval,
		done:     make(chan struct{}),
	}
}

// Start refreshes immediately, then on every interval tick until Stop.
func (s *ContentScheduler) Start() {
	log.Printf("content scheduler started, refreshing every %v", s.interval)

	s.Refresh()

	s.ticker = time.NewTicker(s.interval)
	go func() {
		for {
			select {
			case <-s.done:
				return
			case <-s.ticker.C:
				s.Refresh()
			}
		}
	}()
}

// Stop halts the refresh loop.
func (s *ContentScheduler) Stop() {
	if s.ticker != nil {
		s.ticker.Stop()
	}
	close(s.done)
	log.Println("content scheduler stopped")
}

// Refresh refetches the warm content. Failures are logged and retried on the
// next tick; stale cache entries keep serving in the meantime.
func (s *ContentScheduler) Refresh() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.settings.Refresh(ctx); err != nil {
		log.Printf("content scheduler: settings refresh failed: %v", err)
	}
	if err := s.gallery.RefreshFeatured(ctx); err != nil {
		log.Printf("content scheduler: featured gallery refresh failed: %v", err)
	}
}
