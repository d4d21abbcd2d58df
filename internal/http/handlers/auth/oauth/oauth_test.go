package oauth

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/seacatering/sea-catering-backend/internal/config"
	oauthlib "github.com/seacatering/sea-catering-backend/internal/lib/oauth"
	"github.com/seacatering/sea-catering-backend/internal/models"
)

// MockService implements oauth.Service.
type MockService struct {
	mock.Mock
}

func (m *MockService) LoginOAuth(ctx context.Context, name, email string) (string, *models.User, error) {
	args := m.Called(ctx, name, email)
	if args.Get(1) == nil {
		return args.String(0), nil, args.Error(2)
	}
	return args.String(0), args.Get(1).(*models.User), args.Error(2)
}

func newTestRouter(handler *Handler) *chi.Mux {
	r := chi.NewRouter()
	r.Get("/api/v1/auth/{provider}", handler.Begin)
	r.Get("/api/v1/auth/{provider}/callback", handler.Callback)
	return r
}

func TestBegin(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	oauthlib.Setup(config.OAuth{
		GoogleKey:     "test-client-id",
		GoogleSecret:  "test-client-secret",
		CallbackBase:  "http://localhost:8080",
		SessionSecret: "test-session-secret",
	})

	t.Run("redirects to the provider consent page", func(t *testing.T) {
		mockService := new(MockService)
		router := newTestRouter(New(logger, mockService, time.Hour))

		req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/google", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusTemporaryRedirect, w.Code, "body: %s", w.Body.String())
		location := w.Header().Get("Location")
		assert.Contains(t, location, "accounts.google.com")
		assert.Contains(t, location, "client_id=test-client-id")
		mockService.AssertNotCalled(t, "LoginOAuth")
	})

	t.Run("unknown provider does not redirect", func(t *testing.T) {
		mockService := new(MockService)
		router := newTestRouter(New(logger, mockService, time.Hour))

		req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/myspace", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.NotEqual(t, http.StatusTemporaryRedirect, w.Code)
	})
}

func TestCallback(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	oauthlib.Setup(config.OAuth{
		GoogleKey:     "test-client-id",
		GoogleSecret:  "test-client-secret",
		CallbackBase:  "http://localhost:8080",
		SessionSecret: "test-session-secret",
	})

	t.Run("failed handshake is a bad request", func(t *testing.T) {
		mockService := new(MockService)
		router := newTestRouter(New(logger, mockService, time.Hour))

		// No handshake session, so completing the auth must fail.
		req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/google/callback?state=bogus&code=bogus", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), `{"error":"OAuth sign-in failed"}`)
		mockService.AssertNotCalled(t, "LoginOAuth")
	})
}
