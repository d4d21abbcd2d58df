// Package list implements the public HTTP handler for the testimonial
// listing, newest first.
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

// Handler handles HTTP requests to list testimonials.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service describes the business logic for listing testimonials.
type Service interface {
	List(ctx context.Context) ([]*models.TestimonialInfo, error)
}

// New creates a new Handler with the given logger and service.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary List testimonials
// @Description Returns all testimonials with their authors, newest first. Public.
// @Tags Testimonials
// @Produce  json
// @Success 200 {object} response.Response "Testimonials"
// @Failure 500 {object} response.ErrorResponse "Server error"
// @Router /testimonials [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.testimonial.list"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	testimonials, err := h.service.List(r.Context())
	if err != nil {
		log.Error("failed to list testimonials", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not list testimonials"))
		return
	}

	log.Info("testimonials listed", slog.Int("count", len(testimonials)))
	render.JSON(w, r, response.Data(testimonials))
}
