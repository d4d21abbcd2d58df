package repository

import (
	"context"
	"fmt"

	"github.com/seacatering/sea-catering-backend/internal/models"
)

// CreateTestimonial saves a testimonial and returns its ID.
func (s *Storage) CreateTestimonial(ctx context.Context, t models.Testimonial) (string, error) {
	const op = "storage.CreateTestimonial"
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO testimonials (user_id, message, rating)
			  VALUES ($1, $2, $3)
			  RETURNING id`
	var newID string
	if err := s.DB.QueryRowContext(ctx, query,
		t.UserID, t.Message, t.Rating).Scan(&newID); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// ListTestimonials returns all testimonials joined with the author name and
// email, newest first.
func (s *Storage) ListTestimonials(ctx context.Context) ([]*models.TestimonialInfo, error) {
	const op = "storage.ListTestimonials"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT u.name, u.email, t.message, t.rating
			  FROM testimonials t
			  JOIN users u ON t.user_id = u.id
			  ORDER BY t.created_at DESC`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.TestimonialInfo
	for rows.Next() {
		var item models.TestimonialInfo
		if err := rows.Scan(&item.Name, &item.Email, &item.Message, &item.Rating); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &item)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}
