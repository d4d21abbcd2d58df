// Package list implements the admin HTTP handler for listing contact
// messages, newest first.
package list

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/seacatering/sea-catering-backend/internal/http/response"
	"github.com/seacatering/sea-catering-backend/internal/lib/sl"
	"github.com/seacatering/sea-catering-backend/internal/models"
)

// Handler handles HTTP requests to list contact messages.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service describes the business logic for listing contact messages.
type Service interface {
	List(ctx context.Context) ([]*models.Contact, error)
}

// New creates a new Handler with the given logger and service.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary List contact messages
// @Description Returns all contact form messages, newest first. Admin only.
// @Tags Contacts
// @Produce  json
// @Success 200 {object} response.Response "Messages"
// @Failure 401 {object} response.ErrorResponse "Unauthorized"
// @Failure 403 {object} response.ErrorResponse "Admins only"
// @Failure 500 {object} response.ErrorResponse "Server error"
// @Router /contacts [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.contact.list"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	contacts, err := h.service.List(r.Context())
	if err != nil {
		log.Error("failed to list contacts", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not list messages"))
		return
	}

	log.Info("contacts listed", slog.Int("count", len(contacts)))
	render.JSON(w, r, response.Data(contacts))
}
