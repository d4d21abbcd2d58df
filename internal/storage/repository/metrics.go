package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/seacatering/sea-catering-backend/internal/models"
)

// CountSubscriptionsCreated counts subscriptions created inside [start, end].
func (s *Storage) CountSubscriptionsCreated(ctx context.Context, start, end time.Time) (int, error) {
	const op = "storage.CountSubscriptionsCreated"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT COUNT(*)
			  FROM subscriptions
			  WHERE created_at >= $1 AND created_at <= $2`
	var count int
	if err := s.DB.QueryRowContext(ctx, query, start, end).Scan(&count); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return count, nil
}

// SumActivePrice sums the price of ACTIVE subscriptions created inside
// [start, end]. This is the MRR figure for the window.
func (s *Storage) SumActivePrice(ctx context.Context, start, end time.Time) (float64, error) {
	const op = "storage.SumActivePrice"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT COALESCE(SUM(price), 0)
			  FROM subscriptions
			  WHERE status = $1 AND created_at >= $2 AND created_at <= $3`
	var sum float64
	if err := s.DB.QueryRowContext(ctx, query, models.StatusActive, start, end).Scan(&sum); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return sum, nil
}

// CountReactivations counts subscriptions whose reactivated_at falls inside
// [start, end].
func (s *Storage) CountReactivations(ctx context.Context, start, end time.Time) (int, error) {
	const op = "storage.CountReactivations"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT COUNT(*)
			  FROM subscriptions
			  WHERE reactivated_at IS NOT NULL
			    AND reactivated_at >= $1 AND reactivated_at <= $2`
	var count int
	if err := s.DB.QueryRowContext(ctx, query, start, end).Scan(&count); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return count, nil
}

// CountActiveCreatedBefore counts ACTIVE subscriptions created on or before
// the cutoff. This is the growth-to-date figure.
func (s *Storage) CountActiveCreatedBefore(ctx context.Context, cutoff time.Time) (int, error) {
	const op = "storage.CountActiveCreatedBefore"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT COUNT(*)
			  FROM subscriptions
			  WHERE status = $1 AND created_at <= $2`
	var count int
	if err := s.DB.QueryRowContext(ctx, query, models.StatusActive, cutoff).Scan(&count); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return count, nil
}
