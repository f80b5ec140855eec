package application

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"github.com/rudhirsetu/website-backend/internal/domain"
	"github.com/rudhirsetu/website-backend/internal/email"
	"github.com/rudhirsetu/website-backend/internal/infrastructure/repository"
)

// ErrRateLimited is returned when a client exceeds the contact form window.
var ErrRateLimited = errors.New("too many submissions, try again later")

// ValidationError wraps field validation failures so the handler can answer
// 400 instead of 500.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string { return e.msg }

// ContactService handles contact form submissions: rate limiting, field
// validation, persistence and the notification emails.
type ContactService struct {
	repo        repository.ContactRepository
	emailClient *email.Client
	validator   *Validator
	limiter     *RateLimiter
	notifyEmail string
}

// NewContactService builds the service. emailClient may be nil; submissions
// are then stored without sending mail.
func NewContactService(repo repository.ContactRepository, emailClient *email.Client, limiter *RateLimiter, notifyEmail string) *ContactService {
	return &ContactService{
		repo:        repo,
		emailClient: emailClient,
		validator:   &Validator{},
		limiter:     limiter,
		notifyEmail: notifyEmail,
	}
}

// Create validates and stores a submission, then sends the notification and
// acknowledgement emails in the background. The returned contact carries the
// reference id shown to the sender.
func (s *ContactService) Create(ctx context.Context, req domain.CreateContactRequest, clientIP string) (*domain.Contact, error) {
	if s.limiter != nil {
		if ok, _ := s.limiter.Allow(clientIP); !ok {
			return nil, ErrRateLimited
		}
	}

	if errs := s.validator.ValidateContactRequest(req.Name, req.Email, req.Phone, req.Message); len(errs) > 0 {
		return nil, &ValidationError{msg: s.validator.FormatValidationErrors(errs)}
	}

	contact := &domain.Contact{
		ReferenceID: uuid.NewString(),
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Message:     req.Message,
		Status:      domain.ContactStatusNew,
	}
	if err := s.repo.Create(ctx, contact); err != nil {
		return nil, err
	}

	// Mail delivery must not block or fail the submission.
	if s.emailClient != nil {
		go s.sendEmails(*contact)
	}

	return contact, nil
}

// List returns all submissions, newest first.
func (s *ContactService) List(ctx context.Context) ([]domain.Contact, error) {
	return s.repo.List(ctx)
}

// MarkResponded flags a submission as handled.
func (s *ContactService) MarkResponded(ctx context.Context, id int64) error {
	return s.repo.UpdateStatus(ctx, id, domain.ContactStatusResponded)
}

func (s *ContactService) sendEmails(contact domain.Contact) {
	if s.notifyEmail != "" {
		if err := s.emailClient.SendContactNotification(s.notifyEmail, contact); err != nil {
			log.Printf("contact: notification email failed (ref=%s): %v", contact.ReferenceID, err)
		}
	}
	if err := s.emailClient.SendContactAcknowledgement(contact); err != nil {
		log.Printf("contact: acknowledgement email failed (ref=%s): %v", contact.ReferenceID, err)
	}
}
