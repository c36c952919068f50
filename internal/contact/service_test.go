package contact_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"portfolio-api/internal/contact"
	"portfolio-api/internal/testdb"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProducer struct {
	events []interface{}
	err    error
}

func (f *fakeProducer) SendMessage(value interface{}) error {
	if f.err != nil {
		return f.err
	}
	f.events = append(f.events, value)
	return nil
}

func setupService(t *testing.T, producer contact.Producer) contact.Service {
	db := testdb.New(t, (*contact.Contact)(nil))
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return contact.NewService(contact.NewRepository(db), producer, logger)
}

func boolPtr(b bool) *bool { return &b }

func strPtr(s string) *string { return &s }

func TestCreateContact(t *testing.T) {
	ctx := context.Background()

	t.Run("NewMessageStartsUnread", func(t *testing.T) {
		service := setupService(t, nil)

		created, err := service.CreateContact(ctx, contact.CreateInput{
			Name:    "Jane Visitor",
			Email:   "jane@example.com",
			Subject: "Project inquiry",
			Message: "I would like a portfolio site.",
		})
		require.NoError(t, err)
		require.NotZero(t, created.ID)
		assert.False(t, created.IsRead)
		assert.False(t, created.CreatedAt.IsZero())
	})

	t.Run("PublishesReceivedEvent", func(t *testing.T) {
		producer := &fakeProducer{}
		service := setupService(t, producer)

		created, err := service.CreateContact(ctx, contact.CreateInput{
			Name:    "Jane Visitor",
			Email:   "jane@example.com",
			Subject: "Project inquiry",
			Message: "Hello",
		})
		require.NoError(t, err)

		require.Len(t, producer.events, 1)
		event, ok := producer.events[0].(contact.ReceivedEvent)
		require.True(t, ok)
		assert.Equal(t, created.ID, event.ContactID)
		assert.Equal(t, "Jane Visitor", event.Name)
		assert.Equal(t, "jane@example.com", event.Email)
		assert.Equal(t, "Project inquiry", event.Subject)
	})

	t.Run("PublishFailureDoesNotFailCreate", func(t *testing.T) {
		producer := &fakeProducer{err: errors.New("broker down")}
		service := setupService(t, producer)

		created, err := service.CreateContact(ctx, contact.CreateInput{
			Name:    "Jane Visitor",
			Email:   "jane@example.com",
			Subject: "Project inquiry",
			Message: "Hello",
		})
		require.NoError(t, err)

		got, err := service.GetContactByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "Hello", got.Message)
	})

	t.Run("MalformedEmail", func(t *testing.T) {
		service := setupService(t, nil)

		_, err := service.CreateContact(ctx, contact.CreateInput{
			Name:    "Bad",
			Email:   "not-an-email",
			Subject: "Hi",
			Message: "Hi",
		})
		assert.ErrorIs(t, err, contact.ErrInvalidInput)
	})
}

func TestUpdateContact(t *testing.T) {
	service := setupService(t, nil)
	ctx := context.Background()

	created, err := service.CreateContact(ctx, contact.CreateInput{
		Name:    "Jane Visitor",
		Email:   "jane@example.com",
		Subject: "Project inquiry",
		Message: "Hello",
	})
	require.NoError(t, err)

	t.Run("MarkAsReadLeavesOtherFieldsAlone", func(t *testing.T) {
		updated, err := service.UpdateContact(ctx, created.ID, contact.UpdateInput{
			IsRead: boolPtr(true),
		})
		require.NoError(t, err)
		assert.True(t, updated.IsRead)
		assert.Equal(t, "Jane Visitor", updated.Name)
		assert.Equal(t, "Project inquiry", updated.Subject)
		assert.Equal(t, "Hello", updated.Message)
	})

	t.Run("SubjectUpdateKeepsReadFlag", func(t *testing.T) {
		updated, err := service.UpdateContact(ctx, created.ID, contact.UpdateInput{
			Subject: strPtr("Follow-up"),
		})
		require.NoError(t, err)
		assert.Equal(t, "Follow-up", updated.Subject)
		assert.True(t, updated.IsRead)
	})

	t.Run("NotFound", func(t *testing.T) {
		_, err := service.UpdateContact(ctx, 1234, contact.UpdateInput{
			IsRead: boolPtr(true),
		})
		require.ErrorIs(t, err, contact.ErrContactNotFound)
		assert.Contains(t, err.Error(), "1234")
	})
}

func TestDeleteContact(t *testing.T) {
	service := setupService(t, nil)
	ctx := context.Background()

	created, err := service.CreateContact(ctx, contact.CreateInput{
		Name:    "Spam",
		Email:   "spam@example.com",
		Subject: "Buy now",
		Message: "spam",
	})
	require.NoError(t, err)

	require.NoError(t, service.DeleteContact(ctx, created.ID))

	_, err = service.GetContactByID(ctx, created.ID)
	assert.ErrorIs(t, err, contact.ErrContactNotFound)

	assert.ErrorIs(t, service.DeleteContact(ctx, created.ID), contact.ErrContactNotFound)
}
