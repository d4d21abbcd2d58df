// Package health implements the liveness endpoint.
package health

import (
	"net/http"

	"github.com/go-chi/render"
)

// Handler replies 200 to show the service is up.
type Handler struct{}

// New creates a new Handler.
func New() *Handler {
	return &Handler{}
}

// ServeHTTP godoc
// @Summary Health check
// @Description Returns 200 when the service is up.
// @Tags Health
// @Produce  json
// @Success 200 {object} map[string]string
// @Router /health [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, map[string]string{"status": "ok"})
}
