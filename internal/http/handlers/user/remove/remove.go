// Package remove implements the admin HTTP handler for deleting a user
// account. The seeded admin account cannot be deleted.
package remove

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/seacatering/sea-catering-backend/internal/http/response"
	"github.com/seacatering/sea-catering-backend/internal/lib/sl"
	services "github.com/seacatering/sea-catering-backend/internal/services/user"
	"github.com/seacatering/sea-catering-backend/internal/storage/repository"
)

// Handler handles HTTP requests to remove users.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service describes the business logic for deleting a user.
type Service interface {
	Remove(ctx context.Context, id string) (int, error)
}

// New creates a new Handler with the given logger and service.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Delete a user
// @Description Deletes an account and its subscriptions. Admin only.
// @Tags Users
// @Produce  json
// @Param id path string true "User ID"
// @Success 200 {object} response.Response "Deleted rows"
// @Failure 401 {object} response.ErrorResponse "Unauthorized"
// @Failure 403 {object} response.ErrorResponse "Admins only or protected account"
// @Failure 404 {object} response.ErrorResponse "Not found"
// @Failure 500 {object} response.ErrorResponse "Server error"
// @Router /users/{id} [delete]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.user.remove"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id := chi.URLParam(r, "id")

	count, err := h.service.Remove(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrProtectedAdmin):
			log.Error("attempt to remove protected admin", slog.String("id", id))
			w.WriteHeader(http.StatusForbidden)
			render.JSON(w, r, response.Error("This account is protected"))
		case errors.Is(err, repository.ErrNotFound):
			log.Error("user not found", slog.String("id", id))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("User not found"))
		default:
			log.Error("failed to remove user", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error("could not remove user"))
		}
		return
	}

	log.Info("user removed", slog.String("id", id), slog.Int("count", count))
	render.JSON(w, r, response.DataWithMessage(map[string]any{"deleted": count}, "User deleted"))
}
