// Package services contains the contact form logic. New messages are
// stored and, when a broker is configured, announced to the admin
// notification queue.
package services

import (
	"context"
	"log/slog"

	"github.com/seacatering/sea-catering-backend/internal/models"
	"github.com/seacatering/sea-catering-backend/internal/storage/repository"
)

// ContactRepository describes the contact storage contract.
type ContactRepository interface {
	CreateContact(ctx context.Context, contact models.Contact) (*models.Contact, error)
	ListContacts(ctx context.Context) ([]*models.Contact, error)
	RemoveContact(ctx context.Context, id string) (int, error)
}

// Publisher emits admin notification events. A nil publisher disables
// notifications.
type Publisher interface {
	Publish(routingKey string, message any) error
}

// ContactService implements the contact form operations.
type ContactService struct {
	repo      ContactRepository
	publisher Publisher
	log       *slog.Logger
}

// NewContactService creates a new ContactService. publisher may be nil.
func NewContactService(repo ContactRepository, publisher Publisher, log *slog.Logger) *ContactService {
	return &ContactService{
		repo:      repo,
		publisher: publisher,
		log:       log,
	}
}

// Create stores a contact message and publishes a contact.created event.
// Publishing is best effort; a broker failure never fails the request.
func (s *ContactService) Create(ctx context.Context, req models.DummyContact) (*models.Contact, error) {
	contact, err := s.repo.CreateContact(ctx, models.Contact{
		CompanyName: req.CompanyName,
		Email:       req.Email,
		Message:     req.Message,
		Type:        req.Type,
	})
	if err != nil {
		return nil, err
	}

	if s.publisher != nil {
		if err := s.publisher.Publish("contact.created", contact); err != nil {
			s.log.Warn("failed to publish contact notification",
				slog.String("id", contact.ID), slog.Any("err", err))
		}
	}

	return contact, nil
}

// List returns all contact messages, newest first.
func (s *ContactService) List(ctx context.Context) ([]*models.Contact, error) {
	return s.repo.ListContacts(ctx)
}

// Remove deletes a contact message by ID.
func (s *ContactService) Remove(ctx context.Context, id string) (int, error) {
	count, err := s.repo.RemoveContact(ctx, id)
	if err != nil {
		return 0, err
	}
	if count == 0 {
		return 0, repository.ErrNotFound
	}
	return count, nil
}
