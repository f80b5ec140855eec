package repository

import (
	"context"

	"github.com/rudhirsetu/website-backend/internal/cms"
	"github.com/rudhirsetu/website-backend/internal/domain"
)

// EventRepository adapts the CMS client to the event repository interface.
type EventRepository struct {
	client *cms.Client
}

func NewEventRepository(client *cms.Client) *EventRepository {
	return &EventRepository{client: client}
}

func (r *EventRepository) GetByID(ctx context.Context, id string) (*domain.EventRecord, error) {
	return r.client.FetchEventByID(ctx, id)
}

func (r *EventRepository) ListUpcoming(ctx context.Context, page, pageSize int) ([]domain.EventRecord, domain.Pagination, error) {
	return r.client.FetchUpcomingEvents(ctx, page, pageSize)
}

func (r *EventRepository) ListPast(ctx context.Context, page, pageSize int) ([]domain.EventRecord, domain.Pagination, error) {
	return r.client.FetchPastEvents(ctx, page, pageSize)
}
