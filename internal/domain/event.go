package domain

import (
	"context"
	"time"
)

type EventRecord struct {
	ID                   string    `json:"id"`
	Title                string    `json:"title"`
	Date                 time.Time `json:"date"`
	Location             string    `json:"location"`
	ExpectedParticipants int       `json:"expected_participants,omitempty"`
	ShortDesc            string    `json:"short_desc,omitempty"`
	Desc                 string    `json:"desc,omitempty"`
	ImageURL             string    `json:"image_url,omitempty"`
}

type EventRepository interface {
	// GetByID returns ErrNotFound when no event matches the id.
	GetByID(ctx context.Context, id string) (*EventRecord, error)
	ListUpcoming(ctx context.Context, page, pageSize int) ([]EventRecord, Pagination, error)
	ListPast(ctx context.Context, page, pageSize int) ([]EventRecord, Pagination, error)
}
