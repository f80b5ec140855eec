package application

import (
	"context"
	"time"

	"github.com/rudhirsetu/website-backend/internal/domain"
)

const (
	// DefaultEventPageSize matches the event listing grid.
	DefaultEventPageSize = 9
	maxEventPageSize     = 50
)

// EventService wraps the event repository with paging defaults and display
// formatting for the camp listings and detail pages.
type EventService struct {
	repo domain.EventRepository
}

func NewEventService(repo domain.EventRepository) *EventService {
	return &EventService{repo: repo}
}

// GetByID returns one event; domain.ErrNotFound when the id is unknown.
func (s *EventService) GetByID(ctx context.Context, id string) (*domain.EventRecord, error) {
	return s.repo.GetByID(ctx, id)
}

// ListUpcoming returns upcoming camps, soonest first.
func (s *EventService) ListUpcoming(ctx context.Context, page, pageSize int) ([]domain.EventRecord, domain.Pagination, error) {
	page, pageSize = normalizePaging(page, pageSize)
	return s.repo.ListUpcoming(ctx, page, pageSize)
}

// ListPast returns completed camps, most recent first.
func (s *EventService) ListPast(ctx context.Context, page, pageSize int) ([]domain.EventRecord, domain.Pagination, error) {
	page, pageSize = normalizePaging(page, pageSize)
	return s.repo.ListPast(ctx, page, pageSize)
}

func normalizePaging(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = DefaultEventPageSize
	}
	if pageSize > maxEventPageSize {
		pageSize = maxEventPageSize
	}
	return page, pageSize
}

// FormatEventDate renders an event timestamp the way the site displays it,
// e.g. "15 March 2025, 9:00 AM".
func FormatEventDate(t time.Time) string {
	return t.Format("2 January 2006, 3:04 PM")
}
