// Package oauth registers the OAuth providers and the session store used
// to carry the provider handshake state.
package oauth

import (
	"net/http"
	"strings"

	"github.com/gorilla/sessions"
	"github.com/markbates/goth"
	"github.com/markbates/goth/gothic"
	"github.com/markbates/goth/providers/google"

	"github.com/seacatering/sea-catering-backend/internal/config"
)

// Setup initializes the Goth providers and the cookie session store from
// configuration. Safe to call multiple times; providers are re-registered.
func Setup(cfg config.OAuth) {
	base := strings.TrimRight(cfg.CallbackBase, "/")

	store := sessions.NewCookieStore([]byte(cfg.SessionSecret))
	store.Options.HttpOnly = true
	store.Options.SameSite = http.SameSiteLaxMode
	gothic.Store = store

	goth.UseProviders(
		google.New(
			cfg.GoogleKey,
			cfg.GoogleSecret,
			base+"/api/v1/auth/google/callback",
			"email", "profile",
		),
	)
}
