// Package remove implements the admin HTTP handler for deleting a contact
// message.
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
	"github.com/seacatering/sea-catering-backend/internal/storage/repository"
)

// Handler handles HTTP requests to remove contact messages.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service describes the business logic for deleting a contact message.
type Service interface {
	Remove(ctx context.Context, id string) (int, error)
}

// New creates a new Handler with the given logger and service.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Delete a contact message
// @Description Deletes a contact form message. Admin only.
// @Tags Contacts
// @Produce  json
// @Param id path string true "Message ID"
// @Success 200 {object} response.Response "Deleted rows"
// @Failure 401 {object} response.ErrorResponse "Unauthorized"
// @Failure 403 {object} response.ErrorResponse "Admins only"
// @Failure 404 {object} response.ErrorResponse "Not found"
// @Failure 500 {object} response.ErrorResponse "Server error"
// @Router /contacts/{id} [delete]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.contact.remove"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id := chi.URLParam(r, "id")

	count, err := h.service.Remove(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			log.Error("contact not found", slog.String("id", id))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("Message not found"))
			return
		}
		log.Error("failed to remove contact", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not remove message"))
		return
	}

	log.Info("contact removed", slog.String("id", id), slog.Int("count", count))
	render.JSON(w, r, response.DataWithMessage(map[string]any{"deleted": count}, "Message deleted"))
}
