package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/seacatering/sea-catering-backend/internal/models"
)

const subscriptionColumns = `id, user_id, name, phone_number, plan_type, meal_type,
			      delivery_days, price, status, paused_from, paused_until, reactivated_at, created_at`

// CreateSubscription inserts a new subscription and returns its ID. The
// partial unique index on (phone_number, plan_type, meal_type) makes the
// duplicate guard a single conditional insert; a violation surfaces as
// ErrUniqueViolation.
func (s *Storage) CreateSubscription(ctx context.Context, sub models.Subscription) (string, error) {
	const op = "storage.CreateSubscription"
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	days, err := json.Marshal(sub.DeliveryDays)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	query := `INSERT INTO subscriptions (user_id, name, phone_number, plan_type, meal_type,
			      delivery_days, price, status)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			  RETURNING id`
	var newID string
	err = s.DB.QueryRowContext(ctx, query,
		sub.UserID, sub.Name, sub.PhoneNumber, sub.PlanType, sub.MealType,
		days, sub.Price, sub.Status).Scan(&newID)
	if err != nil {
		if isUniqueViolation(err) {
			return "", fmt.Errorf("%s: %w", op, ErrUniqueViolation)
		}
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// ReadSubscription returns a subscription by its ID.
func (s *Storage) ReadSubscription(ctx context.Context, id string) (*models.Subscription, error) {
	const op = "storage.ReadSubscription"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT ` + subscriptionColumns + `
			  FROM subscriptions WHERE id = $1`
	row := s.DB.QueryRowContext(ctx, query, id)

	result, err := scanSubscription(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// ReadFirstSubscriptionByUser returns the first subscription owned by a user.
func (s *Storage) ReadFirstSubscriptionByUser(ctx context.Context, userID string) (*models.Subscription, error) {
	const op = "storage.ReadFirstSubscriptionByUser"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT ` + subscriptionColumns + `
			  FROM subscriptions
			  WHERE user_id = $1
			  ORDER BY created_at
			  LIMIT 1`
	row := s.DB.QueryRowContext(ctx, query, userID)

	result, err := scanSubscription(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// ListSubscriptions returns all subscriptions with pagination, newest
// first.
func (s *Storage) ListSubscriptions(ctx context.Context, limit, offset int) ([]*models.Subscription, error) {
	const op = "storage.ListSubscriptions"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT ` + subscriptionColumns + `
			  FROM subscriptions
			  ORDER BY created_at DESC
			  LIMIT $1 OFFSET $2`
	rows, err := s.DB.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Subscription
	for rows.Next() {
		item, err := scanSubscription(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, item)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// UpdateSubscription rewrites the mutable fields of a subscription and
// returns the number of affected rows.
func (s *Storage) UpdateSubscription(ctx context.Context, sub models.Subscription, id string) (int, error) {
	const op = "storage.UpdateSubscription"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	days, err := json.Marshal(sub.DeliveryDays)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	query := `UPDATE subscriptions
			  SET name = $1, phone_number = $2, plan_type = $3, meal_type = $4,
			      delivery_days = $5, price = $6
			  WHERE id = $7`
	result, err := s.DB.ExecContext(ctx, query,
		sub.Name, sub.PhoneNumber, sub.PlanType, sub.MealType, days, sub.Price, id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, fmt.Errorf("%s: %w", op, ErrUniqueViolation)
		}
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}

// UpdateSubscriptionStatus writes a status transition. The pause fields and
// reactivated_at are always written together with the status so the
// "pause fields non-null iff PAUSED" invariant holds row by row.
func (s *Storage) UpdateSubscriptionStatus(ctx context.Context, id, status string, pausedFrom, pausedUntil, reactivatedAt *time.Time) (*models.Subscription, error) {
	const op = "storage.UpdateSubscriptionStatus"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE subscriptions
			  SET status = $1, paused_from = $2, paused_until = $3,
			      reactivated_at = COALESCE($4, reactivated_at)
			  WHERE id = $5
			  RETURNING ` + subscriptionColumns
	row := s.DB.QueryRowContext(ctx, query, status, pausedFrom, pausedUntil, reactivatedAt, id)

	result, err := scanSubscription(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%s: %w", op, ErrUniqueViolation)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// RemoveSubscription deletes a subscription by ID and returns the number of
// deleted rows.
func (s *Storage) RemoveSubscription(ctx context.Context, id string) (int, error) {
	const op = "storage.RemoveSubscription"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `DELETE FROM subscriptions WHERE id = $1`
	result, err := s.DB.ExecContext(ctx, query, id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSubscription(row rowScanner) (*models.Subscription, error) {
	var item models.Subscription
	var days []byte
	var pausedFrom, pausedUntil, reactivatedAt sql.NullTime

	if err := row.Scan(&item.ID, &item.UserID, &item.Name, &item.PhoneNumber,
		&item.PlanType, &item.MealType, &days, &item.Price, &item.Status,
		&pausedFrom, &pausedUntil, &reactivatedAt, &item.CreatedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(days, &item.DeliveryDays); err != nil {
		return nil, err
	}
	if pausedFrom.Valid {
		item.PausedFrom = &pausedFrom.Time
	}
	if pausedUntil.Valid {
		item.PausedUntil = &pausedUntil.Time
	}
	if reactivatedAt.Valid {
		item.ReactivatedAt = &reactivatedAt.Time
	}
	return &item, nil
}
