package create

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

	"github.com/go-chi/chi/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/seacatering/sea-catering-backend/internal/http/middlewarectx"
	"github.com/seacatering/sea-catering-backend/internal/models"
	services "github.com/seacatering/sea-catering-backend/internal/services/subscription"
)

// MockService implements create.Service.
type MockService struct {
	mock.Mock
}

func (m *MockService) Create(ctx context.Context, userID string, req models.DummySubscription) (*models.Subscription, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Subscription), args.Error(1)
}

func validRequest() models.DummySubscription {
	return models.DummySubscription{
		Name:         "Budi Santoso",
		PhoneNumber:  "081234567890",
		PlanType:     models.PlanProtein,
		MealType:     models.MealLunch,
		DeliveryDays: []string{"2025-09-01", "2025-09-03"},
	}
}

func TestCreateHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	tests := []struct {
		name           string
		requestBody    interface{}
		userID         string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:        "successful creation",
			requestBody: validRequest(),
			userID:      "user-1",
			setupMock: func(m *MockService) {
				m.On("Create", mock.Anything, "user-1", mock.AnythingOfType("models.DummySubscription")).
					Return(&models.Subscription{ID: "sub-1", Status: models.StatusActive, Price: 344000}, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `"message":"Subscription created"`,
		},
		{
			name:           "malformed JSON",
			requestBody:    "not a json",
			userID:         "user-1",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"invalid request body"}`,
		},
		{
			name: "validation failure",
			requestBody: models.DummySubscription{
				Name:        "",
				PhoneNumber: "123",
				PlanType:    "GOLD",
				MealType:    models.MealLunch,
			},
			userID:         "user-1",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `field Name is a required field`,
		},
		{
			name:           "missing identity",
			requestBody:    validRequest(),
			userID:         "",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"error":"Unauthorized"}`,
		},
		{
			name:        "duplicate subscription",
			requestBody: validRequest(),
			userID:      "user-1",
			setupMock: func(m *MockService) {
				m.On("Create", mock.Anything, "user-1", mock.AnythingOfType("models.DummySubscription")).
					Return(nil, services.ErrDuplicate)
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   `{"error":"You have already subscribed to this plan."}`,
		},
		{
			name: "unparsable delivery day",
			requestBody: models.DummySubscription{
				Name:         "Budi Santoso",
				PhoneNumber:  "081234567890",
				PlanType:     models.PlanProtein,
				MealType:     models.MealLunch,
				DeliveryDays: []string{"next monday"},
			},
			userID: "user-1",
			setupMock: func(m *MockService) {
				m.On("Create", mock.Anything, "user-1", mock.AnythingOfType("models.DummySubscription")).
					Return(nil, services.ErrInvalidDeliveryDay)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"invalid delivery days"}`,
		},
		{
			name:        "service failure",
			requestBody: validRequest(),
			userID:      "user-1",
			setupMock: func(m *MockService) {
				m.On("Create", mock.Anything, "user-1", mock.AnythingOfType("models.DummySubscription")).
					Return(nil, errors.New("db error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error":"could not create subscription"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			var body []byte
			var err error
			if str, ok := tt.requestBody.(string); ok {
				body = []byte(str)
			} else {
				body, err = json.Marshal(tt.requestBody)
				assert.NoError(t, err)
			}

			req := httptest.NewRequest(http.MethodPost, "/subscriptions", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")

			ctx := req.Context()
			if tt.userID != "" {
				ctx = context.WithValue(ctx, middlewarectx.UserUID, tt.userID)
			}
			ctx = context.WithValue(ctx, middleware.RequestIDKey, "req-id")
			req = req.WithContext(ctx)

			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)

			mockService.AssertExpectations(t)
		})
	}
}
