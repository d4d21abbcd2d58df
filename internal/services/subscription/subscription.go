// Package services contains the business logic for the meal-subscription
// lifecycle: creation with server-derived pricing, the status state
// machine, ownership checks and read-through caching.
package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/seacatering/sea-catering-backend/internal/lib/pricing"
	"github.com/seacatering/sea-catering-backend/internal/models"
	"github.com/seacatering/sea-catering-backend/internal/storage/repository"
)

// ErrDuplicate is returned when a non-cancelled subscription with the same
// (phone, plan, meal) already exists.
var ErrDuplicate = errors.New("duplicate subscription")

// ErrForbidden is returned when the caller is neither the owner nor admin.
var ErrForbidden = errors.New("forbidden")

// ErrInvalidTransition is returned when the requested status change is not
// legal from the current status.
var ErrInvalidTransition = errors.New("invalid status transition")

// ErrInvalidDeliveryDay is returned when a delivery day cannot be parsed
// as a date.
var ErrInvalidDeliveryDay = errors.New("invalid delivery day")

// ErrInvalidPauseWindow is returned when the pause dates are malformed,
// out of order or entirely in the past.
var ErrInvalidPauseWindow = errors.New("invalid pause window")

// SubscriptionRepository defines the storage methods for subscriptions.
type SubscriptionRepository interface {
	CreateSubscription(ctx context.Context, sub models.Subscription) (string, error)
	ReadSubscription(ctx context.Context, id string) (*models.Subscription, error)
	ReadFirstSubscriptionByUser(ctx context.Context, userID string) (*models.Subscription, error)
	ListSubscriptions(ctx context.Context, limit, offset int) ([]*models.Subscription, error)
	UpdateSubscription(ctx context.Context, sub models.Subscription, id string) (int, error)
	UpdateSubscriptionStatus(ctx context.Context, id, status string, pausedFrom, pausedUntil, reactivatedAt *time.Time) (*models.Subscription, error)
	RemoveSubscription(ctx context.Context, id string) (int, error)
}

// Cache describes the caching methods used for subscription reads.
type Cache interface {
	Get(key string, result any) (bool, error)
	Set(key string, value any, expiration time.Duration) error
	Invalidate(key string) error
}

// SubscriptionService implements the subscription business rules.
type SubscriptionService struct {
	repo  SubscriptionRepository
	cache Cache
	log   *slog.Logger
}

// NewSubscriptionService creates a new SubscriptionService.
func NewSubscriptionService(repo SubscriptionRepository, cache Cache, log *slog.Logger) *SubscriptionService {
	return &SubscriptionService{
		repo:  repo,
		cache: cache,
		log:   log,
	}
}

// Create validates the delivery days, derives the price on the server and
// inserts a new ACTIVE subscription. A client-submitted price is ignored.
func (s *SubscriptionService) Create(ctx context.Context, userID string, req models.DummySubscription) (*models.Subscription, error) {
	days, err := parseDeliveryDays(req.DeliveryDays)
	if err != nil {
		return nil, err
	}

	price, err := pricing.MonthlyPrice(req.PlanType, len(days))
	if err != nil {
		return nil, err
	}

	sub := models.Subscription{
		UserID:       userID,
		Name:         req.Name,
		PhoneNumber:  req.PhoneNumber,
		PlanType:     req.PlanType,
		MealType:     req.MealType,
		DeliveryDays: days,
		Price:        price,
		Status:       models.StatusActive,
	}

	id, err := s.repo.CreateSubscription(ctx, sub)
	if err != nil {
		if errors.Is(err, repository.ErrUniqueViolation) {
			return nil, ErrDuplicate
		}
		return nil, err
	}
	sub.ID = id
	sub.CreatedAt = time.Now().UTC()

	s.log.Info("created new subscription", slog.String("id", id))

	cacheKey := fmt.Sprintf("subscription:%s", id)
	if err := s.cache.Set(cacheKey, sub, time.Hour); err != nil {
		s.log.Warn("failed to cache subscription", slog.String("key", cacheKey), slog.Any("err", err))
	}

	return &sub, nil
}

// Read returns a subscription by ID, using the cache when possible. Only
// the owner or an admin may read it.
func (s *SubscriptionService) Read(ctx context.Context, id, callerID, callerRole string) (*models.Subscription, error) {
	var result *models.Subscription
	cacheKey := fmt.Sprintf("subscription:%s", id)
	found, err := s.cache.Get(cacheKey, &result)
	if err != nil {
		s.log.Warn("cache read failed", slog.String("key", cacheKey), slog.Any("err", err))
		found = false
	}
	if !found {
		result, err = s.repo.ReadSubscription(ctx, id)
		if err != nil {
			return nil, err
		}
		if err := s.cache.Set(cacheKey, result, time.Hour); err != nil {
			s.log.Warn("failed to cache subscription", slog.String("key", cacheKey), slog.Any("err", err))
		}
	}

	if !canAccess(result, callerID, callerRole) {
		return nil, ErrForbidden
	}
	return result, nil
}

// ReadByUser returns the first subscription owned by userID. Only that user
// or an admin may read it.
func (s *SubscriptionService) ReadByUser(ctx context.Context, userID, callerID, callerRole string) (*models.Subscription, error) {
	if callerRole != models.RoleAdmin && callerID != userID {
		return nil, ErrForbidden
	}
	return s.repo.ReadFirstSubscriptionByUser(ctx, userID)
}

// List returns all subscriptions with pagination. Admin only; the route
// gate enforces the role.
func (s *SubscriptionService) List(ctx context.Context, limit, offset int) ([]*models.Subscription, error) {
	return s.repo.ListSubscriptions(ctx, limit, offset)
}

// Update rewrites the mutable fields of a subscription (admin operation)
// and re-derives the price.
func (s *SubscriptionService) Update(ctx context.Context, id string, req models.DummySubscription) (int, error) {
	days, err := parseDeliveryDays(req.DeliveryDays)
	if err != nil {
		return 0, err
	}
	price, err := pricing.MonthlyPrice(req.PlanType, len(days))
	if err != nil {
		return 0, err
	}

	sub := models.Subscription{
		Name:         req.Name,
		PhoneNumber:  req.PhoneNumber,
		PlanType:     req.PlanType,
		MealType:     req.MealType,
		DeliveryDays: days,
		Price:        price,
	}
	count, err := s.repo.UpdateSubscription(ctx, sub, id)
	if err != nil {
		if errors.Is(err, repository.ErrUniqueViolation) {
			return 0, ErrDuplicate
		}
		return 0, err
	}
	if count == 0 {
		return 0, repository.ErrNotFound
	}
	s.invalidate(id)
	return count, nil
}

// Pause moves an ACTIVE subscription to PAUSED for the given window.
func (s *SubscriptionService) Pause(ctx context.Context, id, callerID, callerRole string, req models.DummyPause) (*models.Subscription, error) {
	pausedFrom, err := parseDate(req.PausedFrom)
	if err != nil {
		return nil, ErrInvalidPauseWindow
	}
	pausedUntil, err := parseDate(req.PausedUntil)
	if err != nil {
		return nil, ErrInvalidPauseWindow
	}
	if !pausedFrom.Before(pausedUntil) || !pausedUntil.After(time.Now()) {
		return nil, ErrInvalidPauseWindow
	}

	current, err := s.authorize(ctx, id, callerID, callerRole)
	if err != nil {
		return nil, err
	}
	if current.Status != models.StatusActive {
		return nil, ErrInvalidTransition
	}

	updated, err := s.repo.UpdateSubscriptionStatus(ctx, id, models.StatusPaused, &pausedFrom, &pausedUntil, nil)
	if err != nil {
		return nil, err
	}
	s.refresh(updated)
	return updated, nil
}

// Resume moves a PAUSED subscription back to ACTIVE and clears the pause
// window.
func (s *SubscriptionService) Resume(ctx context.Context, id, callerID, callerRole string) (*models.Subscription, error) {
	current, err := s.authorize(ctx, id, callerID, callerRole)
	if err != nil {
		return nil, err
	}
	if current.Status != models.StatusPaused {
		return nil, ErrInvalidTransition
	}

	updated, err := s.repo.UpdateSubscriptionStatus(ctx, id, models.StatusActive, nil, nil, nil)
	if err != nil {
		return nil, err
	}
	s.refresh(updated)
	return updated, nil
}

// Cancel moves an ACTIVE or PAUSED subscription to CANCELLED.
func (s *SubscriptionService) Cancel(ctx context.Context, id, callerID, callerRole string) (*models.Subscription, error) {
	current, err := s.authorize(ctx, id, callerID, callerRole)
	if err != nil {
		return nil, err
	}
	if current.Status == models.StatusCancelled {
		return nil, ErrInvalidTransition
	}

	updated, err := s.repo.UpdateSubscriptionStatus(ctx, id, models.StatusCancelled, nil, nil, nil)
	if err != nil {
		return nil, err
	}
	s.refresh(updated)
	return updated, nil
}

// Reactivate moves a CANCELLED subscription back to ACTIVE, records the
// reactivation time and keeps the original creation date.
func (s *SubscriptionService) Reactivate(ctx context.Context, id, callerID, callerRole string) (*models.Subscription, error) {
	current, err := s.authorize(ctx, id, callerID, callerRole)
	if err != nil {
		return nil, err
	}
	if current.Status != models.StatusCancelled {
		return nil, ErrInvalidTransition
	}

	now := time.Now().UTC()
	updated, err := s.repo.UpdateSubscriptionStatus(ctx, id, models.StatusActive, nil, nil, &now)
	if err != nil {
		if errors.Is(err, repository.ErrUniqueViolation) {
			// another non-cancelled subscription took the slot meanwhile
			return nil, ErrDuplicate
		}
		return nil, err
	}
	s.refresh(updated)
	return updated, nil
}

// Remove hard-deletes a subscription (admin operation).
func (s *SubscriptionService) Remove(ctx context.Context, id string) (int, error) {
	s.invalidate(id)

	count, err := s.repo.RemoveSubscription(ctx, id)
	if err != nil {
		return 0, err
	}
	if count == 0 {
		return 0, repository.ErrNotFound
	}
	return count, nil
}

// authorize loads the subscription and checks the caller is its owner or an
// admin.
func (s *SubscriptionService) authorize(ctx context.Context, id, callerID, callerRole string) (*models.Subscription, error) {
	current, err := s.repo.ReadSubscription(ctx, id)
	if err != nil {
		return nil, err
	}
	if !canAccess(current, callerID, callerRole) {
		return nil, ErrForbidden
	}
	return current, nil
}

func (s *SubscriptionService) refresh(sub *models.Subscription) {
	cacheKey := fmt.Sprintf("subscription:%s", sub.ID)
	if err := s.cache.Set(cacheKey, sub, time.Hour); err != nil {
		s.log.Warn("failed to cache subscription", slog.String("key", cacheKey), slog.Any("err", err))
	}
}

func (s *SubscriptionService) invalidate(id string) {
	cacheKey := fmt.Sprintf("subscription:%s", id)
	if err := s.cache.Invalidate(cacheKey); err != nil {
		s.log.Warn("failed to remove from cache", slog.String("key", cacheKey), slog.Any("err", err))
	}
}

func canAccess(sub *models.Subscription, callerID, callerRole string) bool {
	return callerRole == models.RoleAdmin || sub.UserID == callerID
}

func parseDeliveryDays(raw []string) ([]time.Time, error) {
	days := make([]time.Time, 0, len(raw))
	for _, d := range raw {
		parsed, err := parseDate(d)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidDeliveryDay, d)
		}
		days = append(days, parsed)
	}
	return days, nil
}

func parseDate(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", raw)
}
