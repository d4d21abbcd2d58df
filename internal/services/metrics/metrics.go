// Package services computes the admin dashboard aggregates over the
// subscription records.
package services

import (
	"context"
	"time"

	"github.com/seacatering/sea-catering-backend/internal/models"
)

// MetricsRepository describes the aggregate queries over subscriptions.
type MetricsRepository interface {
	CountSubscriptionsCreated(ctx context.Context, start, end time.Time) (int, error)
	SumActivePrice(ctx context.Context, start, end time.Time) (float64, error)
	CountReactivations(ctx context.Context, start, end time.Time) (int, error)
	CountActiveCreatedBefore(ctx context.Context, cutoff time.Time) (int, error)
}

// MetricsService collects the dashboard numbers. Each metric is its own
// query; concurrent writes may make them reflect slightly different
// snapshots, which is acceptable for a dashboard.
type MetricsService struct {
	repo MetricsRepository
}

// NewMetricsService creates a new MetricsService.
func NewMetricsService(repo MetricsRepository) *MetricsService {
	return &MetricsService{repo: repo}
}

// Collect runs the four dashboard queries for the given windows.
func (s *MetricsService) Collect(ctx context.Context, filter models.MetricsFilter) (*models.SubscriptionMetrics, error) {
	newSubs, err := s.repo.CountSubscriptionsCreated(ctx, filter.NewStart, filter.NewEnd)
	if err != nil {
		return nil, err
	}
	mrr, err := s.repo.SumActivePrice(ctx, filter.MRRStart, filter.MRREnd)
	if err != nil {
		return nil, err
	}
	reactivations, err := s.repo.CountReactivations(ctx, filter.ReactStart, filter.ReactEnd)
	if err != nil {
		return nil, err
	}
	growth, err := s.repo.CountActiveCreatedBefore(ctx, filter.GrowthEnd)
	if err != nil {
		return nil, err
	}

	return &models.SubscriptionMetrics{
		NewSubscriptions:   newSubs,
		MRR:                mrr,
		Reactivations:      reactivations,
		SubscriptionGrowth: growth,
	}, nil
}
