// Package cancel implements the HTTP handler for cancelling a
// subscription. Cancelled records stay in the database for later
// reactivation and for the dashboard numbers.
package cancel

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

// Handler handles HTTP requests to cancel subscriptions.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service describes the business logic for cancelling a subscription.
type Service interface {
	Cancel(ctx context.Context, id, callerID, callerRole string) (*models.Subscription, error)
}

// New creates a new Handler with the given logger and service.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Cancel a subscription
// @Description Cancels an active or paused subscription. Available to the owner and admins.
// @Tags Subscriptions
// @Produce  json
// @Param id path string true "Subscription ID"
// @Success 200 {object} response.Response "Cancelled subscription"
// @Failure 401 {object} response.ErrorResponse "Unauthorized"
// @Failure 403 {object} response.ErrorResponse "Not the owner"
// @Failure 404 {object} response.ErrorResponse "Not found"
// @Failure 409 {object} response.ErrorResponse "Already cancelled"
// @Failure 500 {object} response.ErrorResponse "Server error"
// @Router /subscriptions/{id}/cancel [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.subscription.cancel"
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

	sub, err := h.service.Cancel(r.Context(), id, callerID, callerRole)
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
			log.Error("subscription already cancelled", slog.String("id", id))
			w.WriteHeader(http.StatusConflict)
			render.JSON(w, r, response.Error("Subscription is already cancelled"))
		default:
			log.Error("failed to cancel subscription", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error("could not cancel subscription"))
		}
		return
	}

	log.Info("subscription cancelled", slog.String("id", id))
	render.JSON(w, r, response.DataWithMessage(sub, "Subscription cancelled"))
}
