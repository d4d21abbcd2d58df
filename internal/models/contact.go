package models

import "time"

// Contact form message types.
const (
	ContactGeneral  = "GENERAL"
	ContactSupport  = "SUPPORT"
	ContactFeedback = "FEEDBACK"
)

// Contact is a write-once message from the public contact form.
type Contact struct {
	ID          string    `json:"id"`
	CompanyName string    `json:"companyName"`
	Email       string    `json:"email"`
	Message     string    `json:"message"`
	Type        string    `json:"type"`
	CreatedAt   time.Time `json:"createdAt"`
}

// DummyContact receives contact form data from a JSON request.
type DummyContact struct {
	CompanyName string `json:"companyName" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Message     string `json:"message" validate:"required"`
	Type        string `json:"type" validate:"required,oneof=GENERAL SUPPORT FEEDBACK"`
}
