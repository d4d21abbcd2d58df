// Package login implements the HTTP handler for credential login.
//
// On success the signed token is returned in the body and also set as the
// "token" cookie so both browser and API clients can authenticate later
// requests. A missing user and a wrong password produce the same reply.
package login

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/seacatering/sea-catering-backend/internal/http/middlewarectx"
	"github.com/seacatering/sea-catering-backend/internal/http/response"
	"github.com/seacatering/sea-catering-backend/internal/lib/sl"
	"github.com/seacatering/sea-catering-backend/internal/models"
	services "github.com/seacatering/sea-catering-backend/internal/services/auth"
)

// Request is the input for credential login.
type Request struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Handler handles HTTP login requests.
type Handler struct {
	log       *slog.Logger
	service   Service
	validate  *validator.Validate
	cookieTTL time.Duration
}

// Service describes the login business logic.
type Service interface {
	Login(ctx context.Context, email, password string) (string, *models.User, error)
}

// New creates a new Handler. cookieTTL bounds the lifetime of the token
// cookie and should match the token TTL.
func New(log *slog.Logger, service Service, cookieTTL time.Duration) *Handler {
	return &Handler{
		log:       log,
		service:   service,
		validate:  validator.New(),
		cookieTTL: cookieTTL,
	}
}

// ServeHTTP godoc
// @Summary Log in
// @Description Authenticates a user by email and password. Returns the token and sets it as a cookie.
// @Tags Auth
// @Accept  json
// @Produce  json
// @Param request body Request true "Credentials"
// @Success 200 {object} response.Response "Token and user"
// @Failure 400 {object} response.ErrorResponse "Invalid JSON or validation failure"
// @Failure 401 {object} response.ErrorResponse "Invalid credentials"
// @Failure 500 {object} response.ErrorResponse "Server error"
// @Router /auth/login [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.login"
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

	token, user, err := h.service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			log.Error("invalid credentials", slog.String("email", req.Email))
			w.WriteHeader(http.StatusUnauthorized)
			render.JSON(w, r, response.Error("Invalid email or password"))
			return
		}
		log.Error("failed to login", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not login"))
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middlewarectx.TokenCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(h.cookieTTL.Seconds()),
	})

	log.Info("user logged in", slog.String("id", user.ID))
	render.JSON(w, r, response.DataWithMessage(map[string]any{
		"token": token,
		"user":  user,
	}, "Login successful"))
}
