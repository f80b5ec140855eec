package domain

import "time"

type ContactStatus string

const (
	ContactStatusNew       ContactStatus = "new"
	ContactStatusResponded ContactStatus = "responded"
)

type CreateContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

type Contact struct {
	ID          int64         `json:"id"`
	ReferenceID string        `json:"reference_id"`
	Name        string        `json:"name"`
	Email       string        `json:"email"`
	Phone       string        `json:"phone"`
	Message     string        `json:"message"`
	Status      ContactStatus `json:"status"`
	SentAt      time.Time     `json:"sent_at"`
	RespondedAt *time.Time    `json:"responded_at,omitempty"`
}
