package contact

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/go-playground/validator/v10"
)

var (
	ErrContactNotFound = errors.New("contact not found")
	ErrInvalidInput    = errors.New("invalid input")
)

// Producer publishes contact-received events (NATS in production). A nil
// producer disables notifications without affecting persistence.
type Producer interface {
	SendMessage(value interface{}) error
}

type Service interface {
	CreateContact(ctx context.Context, in CreateInput) (*Contact, error)
	GetAllContacts(ctx context.Context) ([]Contact, error)
	GetContactByID(ctx context.Context, id int) (*Contact, error)
	UpdateContact(ctx context.Context, id int, in UpdateInput) (*Contact, error)
	DeleteContact(ctx context.Context, id int) error
}

type service struct {
	repo     Repository
	producer Producer
	validate *validator.Validate
	logger   *slog.Logger
}

func NewService(repo Repository, producer Producer, logger *slog.Logger) Service {
	return &service{
		repo:     repo,
		producer: producer,
		validate: validator.New(),
		logger:   logger,
	}
}

func (s *service) CreateContact(ctx context.Context, in CreateInput) (*Contact, error) {
	if err := s.validate.Struct(&in); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	contact := &Contact{
		Name:    in.Name,
		Email:   in.Email,
		Subject: in.Subject,
		Message: in.Message,
	}
	created, err := s.repo.Create(ctx, contact)
	if err != nil {
		return nil, err
	}

	// The record is already durable; a failed notification is logged, not
	// surfaced.
	if s.producer != nil {
		event := ReceivedEvent{
			ContactID: created.ID,
			Name:      created.Name,
			Email:     created.Email,
			Subject:   created.Subject,
		}
		if err := s.producer.SendMessage(event); err != nil {
			s.logger.ErrorContext(ctx, "failed to publish contact event", "error", err, "contact_id", created.ID)
		}
	}

	return created, nil
}

func (s *service) GetAllContacts(ctx context.Context) ([]Contact, error) {
	return s.repo.GetAll(ctx)
}

func (s *service) GetContactByID(ctx context.Context, id int) (*Contact, error) {
	if id <= 0 {
		return nil, ErrInvalidInput
	}
	return s.repo.GetByID(ctx, id)
}

func (s *service) UpdateContact(ctx context.Context, id int, in UpdateInput) (*Contact, error) {
	if id <= 0 {
		return nil, ErrInvalidInput
	}
	if err := s.validate.Struct(&in); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	contact, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		contact.Name = *in.Name
	}
	if in.Email != nil {
		contact.Email = *in.Email
	}
	if in.Subject != nil {
		contact.Subject = *in.Subject
	}
	if in.Message != nil {
		contact.Message = *in.Message
	}
	if in.IsRead != nil {
		contact.IsRead = *in.IsRead
	}

	if err := s.repo.Update(ctx, contact); err != nil {
		return nil, err
	}
	return contact, nil
}

func (s *service) DeleteContact(ctx context.Context, id int) error {
	if id <= 0 {
		return ErrInvalidInput
	}
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
