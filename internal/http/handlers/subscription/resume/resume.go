// Package resume implements the HTTP handler for resuming a paused
// subscription before its window runs out.
package resume

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/seacatering/sea-catering-backend/internal/http/middlewarectx"
	"github.com/seacatering/sea-catering-backend/internal/http/response"
	"github.com/seacatering/sea-catering-backend/internal/lib/sl"
	"github.com/seacatering/sea-catering-backend/internal/models"
	services "github.com/seacatering/sea-catering-backend/internal/services/subscription"
	"github.com/seacatering/sea-catering-backend/internal/storage/repository"
)

// Handler handles HTTP requests to resume subscriptions.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service describes the business logic for resuming a subscription.
type Service interface {
	Resume(ctx context.Context, id, callerID, callerRole string) (*models.Subscription, error)
}

// New creates a new Handler with the given logger and service.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Resume a subscription
// @Description Returns a paused subscription to active and clears the pause window. Available to the owner and admins.
// @Tags Subscriptions
// @Produce  json
// @Param id path string true "Subscription ID"
// @Success 200 {object} response.Response "Resumed subscription"
// @Failure 401 {object} response.ErrorResponse "Unauthorized"
// @Failure 403 {object} response.ErrorResponse "Not the owner"
// @Failure 404 {object} response.ErrorResponse "Not found"
// @Failure 409 {object} response.ErrorResponse "Subscription is not paused"
// @Failure 500 {object} response.ErrorResponse "Server error"
// @Router /subscriptions/{id}/resume [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.subscription.resume"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id := chi.URLParam(r, "id")

	callerID, ok := r.Context().Value(middlewarectx.UserUID).(string)
	if !ok || callerID == "" {
		log.Error("user id not found in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("Unauthorized"))
		return
	}
	callerRole, _ := r.Context().Value(middlewarectx.Role).(string)

	sub, err := h.service.Resume(r.Context(), id, callerID, callerRole)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrForbidden):
			log.Error("access denied", slog.String("id", id))
			w.WriteHeader(http.StatusForbidden)
			render.JSON(w, r, response.Error("Forbidden"))
		case errors.Is(err, repository.ErrNotFound):
			log.Error("subscription not found", slog.String("id", id))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("Subscription not found"))
		case errors.Is(err, services.ErrInvalidTransition):
			log.Error("subscription is not paused", slog.String("id", id))
			w.WriteHeader(http.StatusConflict)
			render.JSON(w, r, response.Error("Only a paused subscription can be resumed"))
		default:
			log.Error("failed to resume subscription", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error("could not resume subscription"))
		}
		return
	}

	log.Info("subscription resumed", slog.String("id", id))
	render.JSON(w, r, response.DataWithMessage(sub, "Subscription resumed"))
}
