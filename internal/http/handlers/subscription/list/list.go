// Package list implements the admin HTTP handler for listing all
// subscriptions with limit/offset pagination.
package list

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/seacatering/sea-catering-backend/internal/http/response"
	"github.com/seacatering/sea-catering-backend/internal/lib/sl"
	"github.com/seacatering/sea-catering-backend/internal/models"
)

const (
	defaultLimit = 20
	maxLimit     = 100
)

// Handler handles HTTP requests to list subscriptions.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service describes the business logic for listing subscriptions.
type Service interface {
	List(ctx context.Context, limit, offset int) ([]*models.Subscription, error)
}

// New creates a new Handler with the given logger and service.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary List subscriptions
// @Description Returns all subscriptions, newest first. Admin only.
// @Tags Subscriptions
// @Produce  json
// @Param limit query int false "Page size, default 20, max 100"
// @Param offset query int false "Offset, default 0"
// @Success 200 {object} response.Response "Subscriptions"
// @Failure 401 {object} response.ErrorResponse "Unauthorized"
// @Failure 403 {object} response.ErrorResponse "Admins only"
// @Failure 500 {object} response.ErrorResponse "Server error"
// @Router /subscriptions [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.subscription.list"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	limit := defaultLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			limit = min(v, maxLimit)
		}
	}
	offset := 0
	if raw := r.URL.Query().Get("offset"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			offset = v
		}
	}

	subs, err := h.service.List(r.Context(), limit, offset)
	if err != nil {
		log.Error("failed to list subscriptions", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not list subscriptions"))
		return
	}

	log.Info("subscriptions listed", slog.Int("count", len(subs)))
	render.JSON(w, r, response.Data(subs))
}
