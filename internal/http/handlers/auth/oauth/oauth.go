// Package oauth implements the HTTP handlers for the provider sign-in
// flow. Begin redirects the browser to the provider; Callback completes
// the handshake, finds or creates the account and sets the token cookie.
//
// The seeded admin account is refused here and must use credential login.
package oauth

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/markbates/goth/gothic"

	"github.com/seacatering/sea-catering-backend/internal/http/middlewarectx"
	"github.com/seacatering/sea-catering-backend/internal/http/response"
	"github.com/seacatering/sea-catering-backend/internal/lib/sl"
	"github.com/seacatering/sea-catering-backend/internal/models"
	services "github.com/seacatering/sea-catering-backend/internal/services/auth"
)

// Service describes the OAuth sign-in business logic.
type Service interface {
	LoginOAuth(ctx context.Context, name, email string) (string, *models.User, error)
}

// Handler handles the provider sign-in flow.
type Handler struct {
	log       *slog.Logger
	service   Service
	cookieTTL time.Duration
}

// New creates a new Handler. cookieTTL bounds the lifetime of the token
// cookie and should match the token TTL.
func New(log *slog.Logger, service Service, cookieTTL time.Duration) *Handler {
	return &Handler{
		log:       log,
		service:   service,
		cookieTTL: cookieTTL,
	}
}

// Begin godoc
// @Summary Start provider sign-in
// @Description Redirects the browser to the OAuth provider's consent page.
// @Tags Auth
// @Param provider path string true "Provider name" Enums(google)
// @Success 307 "Redirect to provider"
// @Router /auth/{provider} [get]
func (h *Handler) Begin(w http.ResponseWriter, r *http.Request) {
	// gothic resolves the provider from the query or its own context key,
	// not from chi route params.
	r = gothic.GetContextWithProvider(r, chi.URLParam(r, "provider"))
	gothic.BeginAuthHandler(w, r)
}

// Callback godoc
// @Summary Complete provider sign-in
// @Description Completes the OAuth handshake, signs the user in and sets the token cookie.
// @Tags Auth
// @Produce  json
// @Param provider path string true "Provider name" Enums(google)
// @Success 200 {object} response.Response "Token and user"
// @Failure 400 {object} response.ErrorResponse "Handshake failed"
// @Failure 403 {object} response.ErrorResponse "Admin must use credentials"
// @Failure 500 {object} response.ErrorResponse "Server error"
// @Router /auth/{provider}/callback [get]
func (h *Handler) Callback(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.oauth"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	r = gothic.GetContextWithProvider(r, chi.URLParam(r, "provider"))
	gothUser, err := gothic.CompleteUserAuth(w, r)
	if err != nil {
		log.Error("oauth handshake failed", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("OAuth sign-in failed"))
		return
	}

	name := gothUser.Name
	if name == "" {
		name = gothUser.NickName
	}
	if name == "" {
		name = gothUser.Email
	}

	token, user, err := h.service.LoginOAuth(r.Context(), name, gothUser.Email)
	if err != nil {
		if errors.Is(err, services.ErrAdminOAuth) {
			log.Error("admin attempted oauth login", slog.String("email", gothUser.Email))
			w.WriteHeader(http.StatusForbidden)
			render.JSON(w, r, response.Error("Admin must login using credentials"))
			return
		}
		log.Error("failed to sign in oauth user", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not sign in"))
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

	log.Info("oauth user signed in", slog.String("id", user.ID))
	render.JSON(w, r, response.DataWithMessage(map[string]any{
		"token": token,
		"user":  user,
	}, "Login successful"))
}
