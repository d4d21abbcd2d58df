// Package pricing derives the monthly subscription price from the chosen
// plan and the set of weekly delivery days. The price is always computed on
// the server; a price submitted by a client is never trusted.
package pricing

import (
	"fmt"

	"github.com/seacatering/sea-catering-backend/internal/models"
)

// Per-delivery base prices in IDR.
const (
	dietBasePrice    = 30000
	proteinBasePrice = 40000
	royalBasePrice   = 60000
)

// mealsPerDelivery is fixed: one meal type per subscription.
const mealsPerDelivery = 1

// weeksPerMonth extrapolates a weekly schedule to a calendar month.
const weeksPerMonth = 4.3

// BasePrice returns the per-delivery price of a plan.
func BasePrice(planType string) (float64, error) {
	switch planType {
	case models.PlanDiet:
		return dietBasePrice, nil
	case models.PlanProtein:
		return proteinBasePrice, nil
	case models.PlanRoyal:
		return royalBasePrice, nil
	default:
		return 0, fmt.Errorf("pricing.BasePrice: unknown plan type %q", planType)
	}
}

// MonthlyPrice computes base × mealsPerDelivery × deliveryDays × 4.3.
func MonthlyPrice(planType string, deliveryDays int) (float64, error) {
	base, err := BasePrice(planType)
	if err != nil {
		return 0, err
	}
	return base * mealsPerDelivery * float64(deliveryDays) * weeksPerMonth, nil
}
