// Package models contains the domain structures for the catering service
// and the helper types used to receive data from JSON requests.
package models

import "time"

// Plan types. The plan determines the per-delivery base price.
const (
	PlanDiet    = "DIET"
	PlanProtein = "PROTEIN"
	PlanRoyal   = "ROYAL"
)

// Meal types, one delivery slot per subscription.
const (
	MealBreakfast = "BREAKFAST"
	MealLunch     = "LUNCH"
	MealDinner    = "DINNER"
)

// Subscription statuses.
const (
	StatusActive    = "ACTIVE"
	StatusPaused    = "PAUSED"
	StatusCancelled = "CANCELLED"
)

// Subscription is the main meal-subscription model used by the business
// logic and the storage layer. PausedFrom and PausedUntil are non-nil
// exactly when Status is StatusPaused.
type Subscription struct {
	ID            string       `json:"id"`
	UserID        string       `json:"userId"`
	Name          string       `json:"name"`
	PhoneNumber   string       `json:"phoneNumber"`
	PlanType      string       `json:"planType"`
	MealType      string       `json:"mealType"`
	DeliveryDays  []time.Time  `json:"deliveryDays"`
	Price         float64      `json:"price"`
	Status        string       `json:"status"`
	PausedFrom    *time.Time   `json:"pausedFrom"`
	PausedUntil   *time.Time   `json:"pausedUntil"`
	ReactivatedAt *time.Time   `json:"reactivatedAt"`
	CreatedAt     time.Time    `json:"createdAt"`
}

// DummySubscription receives subscription data from a JSON request before
// it is validated and converted into a Subscription. Delivery days arrive
// as RFC3339 strings so they can be parsed and checked by hand. A price
// submitted by the client is ignored; the server always derives it.
type DummySubscription struct {
	Name         string   `json:"name" validate:"required"`
	PhoneNumber  string   `json:"phoneNumber" validate:"required,min=10,max=15"`
	PlanType     string   `json:"planType" validate:"required,oneof=DIET PROTEIN ROYAL"`
	MealType     string   `json:"mealType" validate:"required,oneof=BREAKFAST LUNCH DINNER"`
	DeliveryDays []string `json:"DeliveryDays" validate:"required,min=1,dive,required"`
	Price        float64  `json:"price,omitempty"`
}

// DummyPause receives the pause window from a JSON request. Both dates are
// required; ordering is checked by the subscription service.
type DummyPause struct {
	PausedFrom  string `json:"pausedFrom" validate:"required"`
	PausedUntil string `json:"pausedUntil" validate:"required"`
}
