package reactivate

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/seacatering/sea-catering-backend/internal/http/middlewarectx"
	"github.com/seacatering/sea-catering-backend/internal/models"
	services "github.com/seacatering/sea-catering-backend/internal/services/subscription"
	"github.com/seacatering/sea-catering-backend/internal/storage/repository"
)

// MockService implements reactivate.Service.
type MockService struct {
	mock.Mock
}

func (m *MockService) Reactivate(ctx context.Context, id, callerID, callerRole string) (*models.Subscription, error) {
	args := m.Called(ctx, id, callerID, callerRole)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Subscription), args.Error(1)
}

func TestReactivateHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	tests := []struct {
		name           string
		callerID       string
		callerRole     string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:       "successful reactivation",
			callerID:   "user-1",
			callerRole: models.RoleUser,
			setupMock: func(m *MockService) {
				m.On("Reactivate", mock.Anything, "sub-1", "user-1", models.RoleUser).
					Return(&models.Subscription{ID: "sub-1", Status: models.StatusActive}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"message":"Subscription reactivated"`,
		},
		{
			name:       "not cancelled",
			callerID:   "user-1",
			callerRole: models.RoleUser,
			setupMock: func(m *MockService) {
				m.On("Reactivate", mock.Anything, "sub-1", "user-1", models.RoleUser).
					Return(nil, services.ErrInvalidTransition)
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   `{"error":"Only a cancelled subscription can be reactivated"}`,
		},
		{
			name:       "duplicate active plan",
			callerID:   "user-1",
			callerRole: models.RoleUser,
			setupMock: func(m *MockService) {
				m.On("Reactivate", mock.Anything, "sub-1", "user-1", models.RoleUser).
					Return(nil, services.ErrDuplicate)
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   `{"error":"You have already subscribed to this plan."}`,
		},
		{
			name:       "not the owner",
			callerID:   "user-2",
			callerRole: models.RoleUser,
			setupMock: func(m *MockService) {
				m.On("Reactivate", mock.Anything, "sub-1", "user-2", models.RoleUser).
					Return(nil, services.ErrForbidden)
			},
			expectedStatus: http.StatusForbidden,
			expectedBody:   `{"error":"Forbidden"}`,
		},
		{
			name:       "not found",
			callerID:   "user-1",
			callerRole: models.RoleUser,
			setupMock: func(m *MockService) {
				m.On("Reactivate", mock.Anything, "sub-1", "user-1", models.RoleUser).
					Return(nil, repository.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"error":"Subscription not found"}`,
		},
		{
			name:       "service failure",
			callerID:   "user-1",
			callerRole: models.RoleUser,
			setupMock: func(m *MockService) {
				m.On("Reactivate", mock.Anything, "sub-1", "user-1", models.RoleUser).
					Return(nil, errors.New("db error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error":"could not reactivate subscription"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodPost, "/subscriptions/sub-1/reactivate", nil)

			ctx := context.WithValue(req.Context(), middlewarectx.UserUID, tt.callerID)
			ctx = context.WithValue(ctx, middlewarectx.Role, tt.callerRole)
			ctx = context.WithValue(ctx, middleware.RequestIDKey, "req-id")
			req = req.WithContext(ctx)

			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("id", "sub-1")
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)

			mockService.AssertExpectations(t)
		})
	}
}
