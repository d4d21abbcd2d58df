package login

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/go-chi/chi/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/seacatering/sea-catering-backend/internal/http/middlewarectx"
	"github.com/seacatering/sea-catering-backend/internal/models"
	services "github.com/seacatering/sea-catering-backend/internal/services/auth"
)

// MockService implements login.Service.
type MockService struct {
	mock.Mock
}

func (m *MockService) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	args := m.Called(ctx, email, password)
	var user *models.User
	if args.Get(1) != nil {
		user = args.Get(1).(*models.User)
	}
	return args.String(0), user, args.Error(2)
}

func TestLoginHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	tests := []struct {
		name           string
		requestBody    interface{}
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
		expectCookie   bool
	}{
		{
			name:        "successful login",
			requestBody: Request{Email: "budi@example.com", Password: "Secret123"},
			setupMock: func(m *MockService) {
				m.On("Login", mock.Anything, "budi@example.com", "Secret123").
					Return("signed-token", &models.User{ID: "user-1", Email: "budi@example.com", Role: models.RoleUser}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"token":"signed-token"`,
			expectCookie:   true,
		},
		{
			name:           "malformed JSON",
			requestBody:    "not a json",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"invalid request body"}`,
		},
		{
			name:           "validation failure",
			requestBody:    Request{Email: "not-an-email", Password: ""},
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `field Email must be a valid email`,
		},
		{
			name:        "wrong password",
			requestBody: Request{Email: "budi@example.com", Password: "wrong"},
			setupMock: func(m *MockService) {
				m.On("Login", mock.Anything, "budi@example.com", "wrong").
					Return("", nil, services.ErrInvalidCredentials)
			},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"error":"Invalid email or password"}`,
		},
		{
			name:        "service failure",
			requestBody: Request{Email: "budi@example.com", Password: "Secret123"},
			setupMock: func(m *MockService) {
				m.On("Login", mock.Anything, "budi@example.com", "Secret123").
					Return("", nil, errors.New("db error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error":"could not login"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService, time.Hour)

			var body []byte
			var err error
			if str, ok := tt.requestBody.(string); ok {
				body = []byte(str)
			} else {
				body, err = json.Marshal(tt.requestBody)
				assert.NoError(t, err)
			}

			req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			req = req.WithContext(context.WithValue(req.Context(), middleware.RequestIDKey, "req-id"))

			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)

			if tt.expectCookie {
				cookies := w.Result().Cookies()
				require.Len(t, cookies, 1)
				assert.Equal(t, middlewarectx.TokenCookie, cookies[0].Name)
				assert.Equal(t, "signed-token", cookies[0].Value)
				assert.True(t, cookies[0].HttpOnly)
			}

			mockService.AssertExpectations(t)
		})
	}
}
