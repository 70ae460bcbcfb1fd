package health

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/magabrotheeeer/pereval-api/internal/lib/sl"
)

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) Ping(ctx context.Context) error {
	return f(ctx)
}

func TestHealthHandler(t *testing.T) {
	tests := []struct {
		name           string
		pingErr        error
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "database connected",
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK","database":"connected"}`,
		},
		{
			name:           "database down",
			pingErr:        errors.New("connection refused"),
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Degraded","database":"disconnected"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := New(sl.Discard(), pingerFunc(func(context.Context) error { return tt.pingErr }))

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.JSONEq(t, tt.expectedBody, rr.Body.String())
		})
	}
}
