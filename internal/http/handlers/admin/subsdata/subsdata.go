// Package subsdata implements the admin HTTP handler for the dashboard
// aggregates: new subscriptions, MRR, reactivations and growth-to-date.
//
// All seven date parameters are required; each metric is computed by its
// own query over the given window.
package subsdata

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/seacatering/sea-catering-backend/internal/http/response"
	"github.com/seacatering/sea-catering-backend/internal/lib/sl"
	"github.com/seacatering/sea-catering-backend/internal/models"
)

// Handler handles HTTP requests for the dashboard metrics.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service describes the business logic for collecting the metrics.
type Service interface {
	Collect(ctx context.Context, filter models.MetricsFilter) (*models.SubscriptionMetrics, error)
}

// New creates a new Handler with the given logger and service.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Dashboard metrics
// @Description Returns new-subscription count, MRR, reactivation count and active-to-date count for the given windows. Admin only.
// @Tags Admin
// @Produce  json
// @Param newStart query string true "New-subscriptions window start (RFC3339 or YYYY-MM-DD)"
// @Param newEnd query string true "New-subscriptions window end"
// @Param mrrStart query string true "MRR window start"
// @Param mrrEnd query string true "MRR window end"
// @Param reactStart query string true "Reactivation window start"
// @Param reactEnd query string true "Reactivation window end"
// @Param growthEnd query string true "Growth cutoff"
// @Success 200 {object} response.Response "Metrics"
// @Failure 400 {object} response.ErrorResponse "Missing or malformed date parameter"
// @Failure 401 {object} response.ErrorResponse "Unauthorized"
// @Failure 403 {object} response.ErrorResponse "Admins only"
// @Failure 500 {object} response.ErrorResponse "Server error"
// @Router /admin/subsData [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.admin.subsdata"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	filter, err := parseFilter(r)
	if err != nil {
		log.Error("invalid metrics filter", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error(err.Error()))
		return
	}

	metrics, err := h.service.Collect(r.Context(), *filter)
	if err != nil {
		log.Error("failed to collect metrics", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not collect metrics"))
		return
	}

	log.Info("metrics collected")
	render.JSON(w, r, response.Data(metrics))
}

func parseFilter(r *http.Request) (*models.MetricsFilter, error) {
	q := r.URL.Query()

	var filter models.MetricsFilter
	fields := []struct {
		name string
		dst  *time.Time
	}{
		{"newStart", &filter.NewStart},
		{"newEnd", &filter.NewEnd},
		{"mrrStart", &filter.MRRStart},
		{"mrrEnd", &filter.MRREnd},
		{"reactStart", &filter.ReactStart},
		{"reactEnd", &filter.ReactEnd},
		{"growthEnd", &filter.GrowthEnd},
	}

	for _, f := range fields {
		raw := q.Get(f.name)
		if raw == "" {
			return nil, fmt.Errorf("missing required parameter %s", f.name)
		}
		parsed, err := parseDate(raw)
		if err != nil {
			return nil, fmt.Errorf("malformed date in parameter %s", f.name)
		}
		*f.dst = parsed
	}
	return &filter, nil
}

func parseDate(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", raw)
}
