// Package register implements the HTTP handler for user registration.
//
// It defines the Request structure for the input data, decodes the JSON
// body, validates the fields and delegates the registration to the auth
// service. On success it returns the new user ID.
package register

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/seacatering/sea-catering-backend/internal/http/response"
	"github.com/seacatering/sea-catering-backend/internal/lib/sl"
	services "github.com/seacatering/sea-catering-backend/internal/services/auth"
)

// Request is the input for registration. The password policy beyond the
// minimum length is enforced by the auth service.
type Request struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// Handler handles HTTP registration requests.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service describes the registration business logic.
type Service interface {
	Register(ctx context.Context, name, email, password string) (string, error)
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
// @Summary Register a user
// @Description Creates a user account with the "user" role.
// @Tags Auth
// @Accept  json
// @Produce  json
// @Param request body Request true "Registration data"
// @Success 201 {object} response.Response "Created user ID"
// @Failure 400 {object} response.ErrorResponse "Invalid JSON, validation failure or weak password"
// @Failure 409 {object} response.ErrorResponse "Email already registered"
// @Failure 500 {object} response.ErrorResponse "Server error"
// @Router /auth/register [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.register"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req Request
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

	id, err := h.service.Register(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrWeakPassword):
			log.Error("weak password")
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error("Password must contain an uppercase letter, a lowercase letter and a number"))
		case errors.Is(err, services.ErrEmailTaken):
			log.Error("email already registered", slog.String("email", req.Email))
			w.WriteHeader(http.StatusConflict)
			render.JSON(w, r, response.Error("Email already registered"))
		default:
			log.Error("failed to register user", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error("could not register user"))
		}
		return
	}

	log.Info("user registered", slog.String("id", id))
	w.WriteHeader(http.StatusCreated)
	render.JSON(w, r, response.DataWithMessage(map[string]any{"id": id}, "Registration successful"))
}
