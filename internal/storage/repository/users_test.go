package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seacatering/sea-catering-backend/internal/models"
)

func TestStorage_Users(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	ctx := context.Background()
	hash := "$2a$10$fakehashfakehashfakehash"

	t.Run("create and get by email", func(t *testing.T) {
		id, err := storage.CreateUser(ctx, models.User{
			Name:         "Budi Santoso",
			Email:        "budi@example.com",
			PasswordHash: &hash,
			Role:         models.RoleUser,
		})
		require.NoError(t, err)
		require.NotEmpty(t, id)

		got, err := storage.GetUserByEmail(ctx, "budi@example.com")
		require.NoError(t, err)
		assert.Equal(t, id, got.ID)
		require.NotNil(t, got.PasswordHash)
		assert.Equal(t, hash, *got.PasswordHash)
		assert.Equal(t, models.RoleUser, got.Role)
	})

	t.Run("duplicate email is a unique violation", func(t *testing.T) {
		_, err := storage.CreateUser(ctx, models.User{
			Name:         "Imposter",
			Email:        "budi@example.com",
			PasswordHash: &hash,
			Role:         models.RoleUser,
		})
		assert.ErrorIs(t, err, ErrUniqueViolation)
	})

	t.Run("oauth account without hash", func(t *testing.T) {
		id, err := storage.CreateUser(ctx, models.User{
			Name:  "Siti Rahma",
			Email: "siti@example.com",
			Role:  models.RoleUser,
		})
		require.NoError(t, err)

		got, err := storage.GetUserByID(ctx, id)
		require.NoError(t, err)
		assert.Nil(t, got.PasswordHash)
	})

	t.Run("unknown email is not found", func(t *testing.T) {
		_, err := storage.GetUserByEmail(ctx, "nobody@example.com")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("list by role", func(t *testing.T) {
		_, err := storage.CreateUser(ctx, models.User{
			Name:         "Admin",
			Email:        "admin@example.com",
			PasswordHash: &hash,
			Role:         models.RoleAdmin,
		})
		require.NoError(t, err)

		users, err := storage.ListUsersByRole(ctx, models.RoleUser)
		require.NoError(t, err)
		require.Len(t, users, 2)
		assert.Equal(t, "budi@example.com", users[0].Email)
		assert.Equal(t, "siti@example.com", users[1].Email)
	})

	t.Run("update keeps the hash when none is given", func(t *testing.T) {
		existing, err := storage.GetUserByEmail(ctx, "budi@example.com")
		require.NoError(t, err)

		count, err := storage.UpdateUser(ctx, existing.ID, models.User{
			Name:  "Budi S.",
			Email: "budi@example.com",
			Role:  models.RoleUser,
		})
		require.NoError(t, err)
		assert.Equal(t, 1, count)

		got, err := storage.GetUserByID(ctx, existing.ID)
		require.NoError(t, err)
		assert.Equal(t, "Budi S.", got.Name)
		require.NotNil(t, got.PasswordHash)
		assert.Equal(t, hash, *got.PasswordHash)
	})

	t.Run("update replaces the hash when given", func(t *testing.T) {
		existing, err := storage.GetUserByEmail(ctx, "budi@example.com")
		require.NoError(t, err)

		newHash := "$2a$10$anotherfakehashanotherfa"
		_, err = storage.UpdateUser(ctx, existing.ID, models.User{
			Name:         "Budi S.",
			Email:        "budi@example.com",
			PasswordHash: &newHash,
			Role:         models.RoleUser,
		})
		require.NoError(t, err)

		got, err := storage.GetUserByID(ctx, existing.ID)
		require.NoError(t, err)
		require.NotNil(t, got.PasswordHash)
		assert.Equal(t, newHash, *got.PasswordHash)
	})

	t.Run("update onto an existing email is a unique violation", func(t *testing.T) {
		existing, err := storage.GetUserByEmail(ctx, "siti@example.com")
		require.NoError(t, err)

		_, err = storage.UpdateUser(ctx, existing.ID, models.User{
			Name:  "Siti Rahma",
			Email: "budi@example.com",
			Role:  models.RoleUser,
		})
		assert.ErrorIs(t, err, ErrUniqueViolation)
	})

	t.Run("remove deletes the row", func(t *testing.T) {
		existing, err := storage.GetUserByEmail(ctx, "siti@example.com")
		require.NoError(t, err)

		count, err := storage.RemoveUser(ctx, existing.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, count)

		_, err = storage.GetUserByID(ctx, existing.ID)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
