// Package readbyuser implements the HTTP handler for fetching a user's
// subscription. A missing subscription replies 200 with a null payload so
// a fresh account does not see an error page.
package readbyuser

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

// Handler handles HTTP requests to read a subscription by user.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service describes the business logic for reading by user.
type Service interface {
	ReadByUser(ctx context.Context, userID, callerID, callerRole string) (*models.Subscription, error)
}

// New creates a new Handler with the given logger and service.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Get a user's subscription
// @Description Returns the earliest subscription of the given user. Available to that user and admins.
// @Tags Subscriptions
// @Produce  json
// @Param userId path string true "User ID"
// @Success 200 {object} response.Response "Subscription or null"
// @Failure 401 {object} response.ErrorResponse "Unauthorized"
// @Failure 403 {object} response.ErrorResponse "Not the owner"
// @Failure 500 {object} response.ErrorResponse "Server error"
// @Router /subscriptions/user/{userId} [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.subscription.readbyuser"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	userID := chi.URLParam(r, "userId")

	callerID, ok := r.Context().Value(middlewarectx.UserUID).(string)
	if !ok || callerID == "" {
		log.Error("user id not found in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("Unauthorized"))
		return
	}
	callerRole, _ := r.Context().Value(middlewarectx.Role).(string)

	sub, err := h.service.ReadByUser(r.Context(), userID, callerID, callerRole)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrForbidden):
			log.Error("access denied", slog.String("user_id", userID))
			w.WriteHeader(http.StatusForbidden)
			render.JSON(w, r, response.Error("Forbidden"))
		case errors.Is(err, repository.ErrNotFound):
			log.Info("user has no subscription", slog.String("user_id", userID))
			render.JSON(w, r, response.Data(nil))
		default:
			log.Error("failed to read subscription", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error("could not read subscription"))
		}
		return
	}

	log.Info("subscription read", slog.String("user_id", userID))
	render.JSON(w, r, response.Data(sub))
}
