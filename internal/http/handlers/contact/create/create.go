// Package create implements the public HTTP handler for the contact form.
// No authentication is required.
package create

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/seacatering/sea-catering-backend/internal/http/response"
	"github.com/seacatering/sea-catering-backend/internal/lib/sl"
	"github.com/seacatering/sea-catering-backend/internal/models"
)

// Handler handles HTTP requests to submit contact messages.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service describes the business logic for creating a contact message.
type Service interface {
	Create(ctx context.Context, req models.DummyContact) (*models.Contact, error)
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
// @Summary Submit a contact message
// @Description Stores a message from the public contact form.
// @Tags Contacts
// @Accept  json
// @Produce  json
// @Param request body models.DummyContact true "Contact message"
// @Success 201 {object} response.Response "Stored message"
// @Failure 400 {object} response.ErrorResponse "Invalid JSON or validation failure"
// @Failure 500 {object} response.ErrorResponse "Server error"
// @Router /contacts [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.contact.create"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.DummyContact
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

	contact, err := h.service.Create(r.Context(), req)
	if err != nil {
		log.Error("failed to create contact", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not submit message"))
		return
	}

	log.Info("contact created", slog.String("id", contact.ID))
	w.WriteHeader(http.StatusCreated)
	render.JSON(w, r, response.DataWithMessage(contact, "Message sent"))
}
