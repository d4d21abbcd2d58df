package repository

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seacatering/sea-catering-backend/internal/models"
)

func TestStorage_Contacts(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	ctx := context.Background()

	t.Run("create returns the stored row", func(t *testing.T) {
		got, err := storage.CreateContact(ctx, models.Contact{
			CompanyName: "Warung Sehat",
			Email:       "owner@warungsehat.id",
			Message:     "Interested in bulk catering",
			Type:        models.ContactGeneral,
		})
		require.NoError(t, err)
		assert.NotEmpty(t, got.ID)
		assert.Equal(t, "Warung Sehat", got.CompanyName)
		assert.False(t, got.CreatedAt.IsZero())
	})

	t.Run("list returns newest first", func(t *testing.T) {
		_, err := storage.CreateContact(ctx, models.Contact{
			CompanyName: "Kantin Kita",
			Email:       "info@kantinkita.id",
			Message:     "Pricing question",
			Type:        models.ContactSupport,
		})
		require.NoError(t, err)

		contacts, err := storage.ListContacts(ctx)
		require.NoError(t, err)
		require.Len(t, contacts, 2)
		assert.Equal(t, "Kantin Kita", contacts[0].CompanyName)
	})

	t.Run("remove deletes the row", func(t *testing.T) {
		contacts, err := storage.ListContacts(ctx)
		require.NoError(t, err)
		require.NotEmpty(t, contacts)

		count, err := storage.RemoveContact(ctx, contacts[0].ID)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("remove unknown id affects zero rows", func(t *testing.T) {
		count, err := storage.RemoveContact(ctx, uuid.NewString())
		require.NoError(t, err)
		assert.Equal(t, 0, count)
	})
}

func TestStorage_Testimonials(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	factory := NewTestDataFactory(storage)
	userID := factory.CreateUser(t, "Budi Santoso", "budi@example.com", nil, "user")

	ctx := context.Background()

	t.Run("create and list joined with the author", func(t *testing.T) {
		id, err := storage.CreateTestimonial(ctx, models.Testimonial{
			UserID:  userID,
			Message: "The ROYAL plan is worth every rupiah",
			Rating:  5,
		})
		require.NoError(t, err)
		require.NotEmpty(t, id)

		list, err := storage.ListTestimonials(ctx)
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, "Budi Santoso", list[0].Name)
		assert.Equal(t, "budi@example.com", list[0].Email)
		assert.Equal(t, 5, list[0].Rating)
	})

	t.Run("deleting the user cascades", func(t *testing.T) {
		_, err := storage.RemoveUser(ctx, userID)
		require.NoError(t, err)

		list, err := storage.ListTestimonials(ctx)
		require.NoError(t, err)
		assert.Empty(t, list)
	})
}
