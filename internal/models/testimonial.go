package models

import "time"

// Testimonial is a rating left by an authenticated user. Reads join the
// owning user so the public listing can show name and email.
type Testimonial struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Message   string    `json:"message"`
	Rating    int       `json:"rating"`
	CreatedAt time.Time `json:"createdAt"`
}

// TestimonialInfo is a testimonial joined with the author for display.
type TestimonialInfo struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
	Rating  int    `json:"rating"`
}

// DummyTestimonial receives testimonial data from a JSON request. The
// author is taken from the request context, never from the body.
type DummyTestimonial struct {
	Message string `json:"message" validate:"required"`
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
}
