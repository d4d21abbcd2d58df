// Package pause implements the HTTP handler for pausing an active
// subscription for a date window.
package pause

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/seacatering/sea-catering-backend/internal/http/middlewarectx"
	"github.com/seacatering/sea-catering-backend/internal/http/response"
	"github.com/seacatering/sea-catering-backend/internal/lib/sl"
	"github.com/seacatering/sea-catering-backend/internal/models"
	services "github.com/seacatering/sea-catering-backend/internal/services/subscription"
	"github.com/seacatering/sea-catering-backend/internal/storage/repository"
)

// Handler handles HTTP requests to pause subscriptions.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service describes the business logic for pausing a subscription.
type Service interface {
	Pause(ctx context.Context, id, callerID, callerRole string, req models.DummyPause) (*models.Subscription, error)
}

// New creates a new Handler with the given logger and service.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Pause a subscription
// @Description Pauses an active subscription for the given window. Available to the owner and admins.
// @Tags Subscriptions
// @Accept  json
// @Produce  json
// @Param id path string true "Subscription ID"
// @Param request body models.DummyPause true "Pause window"
// @Success 200 {object} response.Response "Paused subscription"
// @Failure 400 {object} response.ErrorResponse "Invalid pause window"
// @Failure 401 {object} response.ErrorResponse "Unauthorized"
// @Failure 403 {object} response.ErrorResponse "Not the owner"
// @Failure 404 {object} response.ErrorResponse "Not found"
// @Failure 409 {object} response.ErrorResponse "Subscription is not active"
// @Failure 500 {object} response.ErrorResponse "Server error"
// @Router /subscriptions/{id}/pause [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.subscription.pause"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id := chi.URLParam(r, "id")

	var req models.DummyPause
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	callerID, ok := r.Context().Value(middlewarectx.UserUID).(string)
	if !ok || callerID == "" {
		log.Error("user id not found in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("Unauthorized"))
		return
	}
	callerRole, _ := r.Context().Value(middlewarectx.Role).(string)

	sub, err := h.service.Pause(r.Context(), id, callerID, callerRole, req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidPauseWindow):
			log.Error("invalid pause window", sl.Err(err))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error("Invalid pause window"))
		case errors.Is(err, services.ErrForbidden):
			log.Error("access denied", slog.String("id", id))
			w.WriteHeader(http.StatusForbidden)
			render.JSON(w, r, response.Error("Forbidden"))
		case errors.Is(err, repository.ErrNotFound):
			log.Error("subscription not found", slog.String("id", id))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("Subscription not found"))
		case errors.Is(err, services.ErrInvalidTransition):
			log.Error("subscription is not active", slog.String("id", id))
			w.WriteHeader(http.StatusConflict)
			render.JSON(w, r, response.Error("Only an active subscription can be paused"))
		default:
			log.Error("failed to pause subscription", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error("could not pause subscription"))
		}
		return
	}

	log.Info("subscription paused", slog.String("id", id))
	render.JSON(w, r, response.DataWithMessage(sub, "Subscription paused"))
}
