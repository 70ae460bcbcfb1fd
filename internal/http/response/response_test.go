package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/pereval-api/internal/models"
)

func TestFromError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"validation", models.NewValidationError(map[string]string{"title": "field is required"}), http.StatusBadRequest, "validation failed"},
		{"not found", fmt.Errorf("storage.GetPass: %w", models.ErrPassNotFound), http.StatusNotFound, "pass not found"},
		{"not editable", fmt.Errorf("op: %w", models.ErrPassNotEditable), http.StatusBadRequest, "pass is not in status new and can not be changed"},
		{"owner mismatch", models.ErrOwnerMismatch, http.StatusBadRequest, "user data does not match the pass owner"},
		{"nothing to update", models.ErrNothingToUpdate, http.StatusBadRequest, "no data to update"},
		{"data exception", fmt.Errorf("op: %w: %w", models.ErrInvalid, errors.New("value out of range")), http.StatusBadRequest, "invalid input"},
		{"storage", fmt.Errorf("op: %w: %w", models.ErrStorage, errors.New("connection refused on 10.0.0.1")), http.StatusInternalServerError, "internal error"},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, "internal error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, msg := FromError(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMsg, msg)
		})
	}
}

func TestRender(t *testing.T) {
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	Render(rr, req, Error(http.StatusNotFound, "pass not found"))

	assert.Equal(t, http.StatusNotFound, rr.Code)
	var got map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, float64(404), got["status"])
	assert.Equal(t, "pass not found", got["message"])
	assert.NotContains(t, got, "id")
	assert.NotContains(t, got, "data")
}

func TestRenderState(t *testing.T) {
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/", nil)

	RenderState(rr, req, http.StatusOK, StateOK, "pass updated")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"state":1,"message":"pass updated"}`, rr.Body.String())
}
