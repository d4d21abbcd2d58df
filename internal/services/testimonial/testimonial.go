// Package services contains the testimonial logic.
package services

import (
	"context"

	"github.com/seacatering/sea-catering-backend/internal/models"
)

// TestimonialRepository describes the testimonial storage contract.
type TestimonialRepository interface {
	CreateTestimonial(ctx context.Context, t models.Testimonial) (string, error)
	ListTestimonials(ctx context.Context) ([]*models.TestimonialInfo, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)
}

// TestimonialService implements testimonial creation and the public
// listing.
type TestimonialService struct {
	repo TestimonialRepository
}

// NewTestimonialService creates a new TestimonialService.
func NewTestimonialService(repo TestimonialRepository) *TestimonialService {
	return &TestimonialService{repo: repo}
}

// Create stores a testimonial for the calling user and returns it joined
// with the author for display.
func (s *TestimonialService) Create(ctx context.Context, callerID string, req models.DummyTestimonial) (*models.TestimonialInfo, error) {
	user, err := s.repo.GetUserByID(ctx, callerID)
	if err != nil {
		return nil, err
	}

	if _, err := s.repo.CreateTestimonial(ctx, models.Testimonial{
		UserID:  callerID,
		Message: req.Message,
		Rating:  req.Rating,
	}); err != nil {
		return nil, err
	}

	return &models.TestimonialInfo{
		Name:    user.Name,
		Email:   user.Email,
		Message: req.Message,
		Rating:  req.Rating,
	}, nil
}

// List returns all testimonials joined with their authors, newest first.
func (s *TestimonialService) List(ctx context.Context) ([]*models.TestimonialInfo, error) {
	return s.repo.ListTestimonials(ctx)
}
