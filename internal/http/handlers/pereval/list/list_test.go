package list

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/go-chi/chi/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/pereval-api/internal/lib/sl"
	"github.com/magabrotheeeer/pereval-api/internal/models"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) ListByEmail(ctx context.Context, email string) ([]models.Pass, error) {
	args := m.Called(ctx, email)
	if res := args.Get(0); res != nil {
		return res.([]models.Pass), args.Error(1)
	}
	return nil, args.Error(1)
}

func TestListHandler(t *testing.T) {
	tests := []struct {
		name           string
		email          string
		setupMock      func(*MockService)
		expectedStatus int
		expectedMsg    string
		expectedCount  int
	}{
		{
			name:  "passes found",
			email: "qwerty+1@mail.ru",
			setupMock: func(m *MockService) {
				m.On("ListByEmail", mock.Anything, "qwerty+1@mail.ru").
					Return([]models.Pass{{ID: 2}, {ID: 1}}, nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "found 2 passes",
			expectedCount:  2,
		},
		{
			name:  "unknown email gives empty list",
			email: "nobody@mail.ru",
			setupMock: func(m *MockService) {
				m.On("ListByEmail", mock.Anything, "nobody@mail.ru").Return([]models.Pass{}, nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "found 0 passes",
			expectedCount:  0,
		},
		{
			name:           "missing email",
			email:          "",
			setupMock:      func(*MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "user__email query parameter is required",
		},
		{
			name:  "storage error",
			email: "qwerty@mail.ru",
			setupMock: func(m *MockService) {
				m.On("ListByEmail", mock.Anything, "qwerty@mail.ru").Return(nil, models.ErrStorage).Once()
			},
			expectedStatus: http.StatusInternalServerError,
			expectedMsg:    "internal error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(sl.Discard(), mockService)

			target := "/submitData"
			if tt.email != "" {
				target += "?" + url.Values{EmailParam: {tt.email}}.Encode()
			}
			req := httptest.NewRequest(http.MethodGet, target, nil)
			req = req.WithContext(context.WithValue(req.Context(), middleware.RequestIDKey, "req-id"))
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			var body struct {
				Status  int               `json:"status"`
				Message string            `json:"message"`
				Data    []json.RawMessage `json:"data"`
			}
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
			assert.Equal(t, tt.expectedStatus, body.Status)
			assert.Equal(t, tt.expectedMsg, body.Message)
			if tt.expectedStatus == http.StatusOK {
				assert.Len(t, body.Data, tt.expectedCount)
				assert.Contains(t, rr.Body.String(), `"data":[`)
			}
			mockService.AssertExpectations(t)
		})
	}
}
