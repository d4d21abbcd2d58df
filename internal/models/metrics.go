package models

import "time"

// MetricsFilter carries the four independent date ranges used by the admin
// dashboard queries. Each metric is computed by its own query; there is no
// cross-metric snapshot guarantee.
type MetricsFilter struct {
	NewStart   time.Time // new-subscriptions window start
	NewEnd     time.Time // new-subscriptions window end
	MRRStart   time.Time // MRR window start
	MRREnd     time.Time // MRR window end
	ReactStart time.Time // reactivation window start
	ReactEnd   time.Time // reactivation window end
	GrowthEnd  time.Time // growth-to-date cutoff
}

// SubscriptionMetrics is the admin dashboard aggregate.
type SubscriptionMetrics struct {
	NewSubscriptions   int     `json:"newSubscriptions"`
	MRR                float64 `json:"mrr"`
	Reactivations      int     `json:"reactivations"`
	SubscriptionGrowth int     `json:"subscriptionGrowth"`
}
