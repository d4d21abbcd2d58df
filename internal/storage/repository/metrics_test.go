package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seacatering/sea-catering-backend/internal/models"
)

func TestStorage_Metrics(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	factory := NewTestDataFactory(storage)
	userID := factory.CreateUser(t, "Budi Santoso", "budi@example.com", nil, "user")

	july := time.Date(2025, 7, 15, 0, 0, 0, 0, time.UTC)
	august := time.Date(2025, 8, 10, 0, 0, 0, 0, time.UTC)

	// One ACTIVE row from July, two August rows of which one is CANCELLED.
	factory.CreateSubscription(t, userID, "Budi Santoso", "081234567890",
		models.PlanDiet, models.MealBreakfast, 129000, models.StatusActive, july)
	activeAugust := factory.CreateSubscription(t, userID, "Budi Santoso", "081234567891",
		models.PlanProtein, models.MealLunch, 344000, models.StatusActive, august)
	factory.CreateSubscription(t, userID, "Budi Santoso", "081234567892",
		models.PlanRoyal, models.MealDinner, 258000, models.StatusCancelled, august)

	factory.MarkReactivated(t, activeAugust, time.Date(2025, 8, 20, 0, 0, 0, 0, time.UTC))

	ctx := context.Background()
	augStart := time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)
	augEnd := time.Date(2025, 8, 31, 23, 59, 59, 0, time.UTC)

	t.Run("counts subscriptions created in the window", func(t *testing.T) {
		count, err := storage.CountSubscriptionsCreated(ctx, augStart, augEnd)
		require.NoError(t, err)
		assert.Equal(t, 2, count)
	})

	t.Run("sums only active prices in the window", func(t *testing.T) {
		sum, err := storage.SumActivePrice(ctx, augStart, augEnd)
		require.NoError(t, err)
		assert.InDelta(t, 344000, sum, 0.001)
	})

	t.Run("empty window sums to zero", func(t *testing.T) {
		start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)

		sum, err := storage.SumActivePrice(ctx, start, end)
		require.NoError(t, err)
		assert.Zero(t, sum)
	})

	t.Run("counts reactivations in the window", func(t *testing.T) {
		count, err := storage.CountReactivations(ctx, augStart, augEnd)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("counts active rows created before the cutoff", func(t *testing.T) {
		count, err := storage.CountActiveCreatedBefore(ctx, augEnd)
		require.NoError(t, err)
		assert.Equal(t, 2, count)

		count, err = storage.CountActiveCreatedBefore(ctx, time.Date(2025, 7, 31, 0, 0, 0, 0, time.UTC))
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})
}
