package repository

import (
	"context"
	"database/sql"

	"github.com/rudhirsetu/website-backend/internal/domain"
)

// ContactRepository persists contact form submissions. This is the only
// site-owned data; everything else lives in the CMS.
type ContactRepository interface {
	Create(ctx context.Context, contact *domain.Contact) error
	List(ctx context.Context) ([]domain.Contact, error)
	UpdateStatus(ctx context.Context, id int64, status domain.ContactStatus) error
}

type contactRepository struct {
	db *sql.DB
}

func NewContactRepository(db *sql.DB) ContactRepository {
	return &contactRepository{db: db}
}

func (r *contactRepository) Create(ctx context.Context, contact *domain.Contact) error {
	query := `
		INSERT INTO contact_submissions (reference_id, name, email, phone, message, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, sent_at
	`
	return r.db.QueryRowContext(ctx, query,
		contact.ReferenceID, contact.Name, contact.Email, contact.Phone, contact.Message, contact.Status,
	).Scan(&contact.ID, &contact.SentAt)
}

func (r *contactRepository) List(ctx context.Context) ([]domain.Contact, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, reference_id, name, email, phone, message, status, sent_at, responded_at
		FROM contact_submissions ORDER BY sent_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var contacts []domain.Contact
	for rows.Next() {
		var c domain.Contact
		if err := rows.Scan(
			&c.ID, &c.ReferenceID, &c.Name, &c.Email,
			&c.Phone, &c.Message, &c.Status, &c.SentAt, &c.RespondedAt,
		); err != nil {
			return nil, err
		}
		contacts = append(contacts, c)
	}
	return contacts, rows.Err()
}

func (r *contactRepository) UpdateStatus(ctx context.Context, id int64, status domain.ContactStatus) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE contact_submissions SET status=$1, responded_at=NOW() WHERE id=$2`,
		status, id)
	if err != nil {
		return err
	}
	affected, _ := result.RowsAffected()
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
