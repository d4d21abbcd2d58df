// Package middlewarectx contains the HTTP middleware that resolves and
// checks caller identity.
//
// JWTMiddleware reads the signed token from the Authorization header or,
// failing that, from the "token" cookie, verifies it locally and puts the
// user ID, email and role into the request context. On failure it replies
// 401 Unauthorized.
package middlewarectx

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/seacatering/sea-catering-backend/internal/http/response"
	"github.com/seacatering/sea-catering-backend/internal/lib/jwt"
	"github.com/seacatering/sea-catering-backend/internal/lib/sl"
)

// Key is the type for request context keys.
type Key string

const (
	// UserUID is the context key for the caller's user ID.
	UserUID Key = "uid"
	// Email is the context key for the caller's email.
	Email Key = "email"
	// Role is the context key for the caller's role.
	Role Key = "role"
)

// TokenCookie is the cookie the browser flow stores the token in.
const TokenCookie = "token"

// JWTMiddleware returns middleware that authenticates the request.
//
// The token is taken from the Authorization header when it carries a
// Bearer scheme, otherwise from the token cookie. Both carriers resolve
// to the same identity.
func JWTMiddleware(maker jwt.Maker, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "middlewarectx.JWTMiddleware"

			log := log.With(
				slog.String("op", op),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			)

			tokenStr := extractToken(r)
			if tokenStr == "" {
				log.Error("missing authorization token")
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("Unauthorized"))
				return
			}

			claims, err := maker.ParseToken(tokenStr)
			if err != nil {
				log.Error("invalid or expired token", sl.Err(err))
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("Unauthorized"))
				return
			}

			ctx := context.WithValue(r.Context(), UserUID, claims.UserID)
			ctx = context.WithValue(ctx, Email, claims.Email)
			ctx = context.WithValue(ctx, Role, claims.Role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func extractToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	if cookie, err := r.Cookie(TokenCookie); err == nil {
		return cookie.Value
	}
	return ""
}
