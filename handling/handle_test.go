package handling

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"labisco_server/lib"

	"github.com/MonkyMars/gecho"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleServiceError(t *testing.T) {
	ve := &lib.ValidationError{}
	ve.Add("name", "is required")

	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"validation", ve, http.StatusBadRequest},
		{"wrapped validation", fmt.Errorf("save: %w", ve), http.StatusBadRequest},
		{"product not found", lib.ErrNotFound, http.StatusNotFound},
		{"draft not found", lib.ErrDraftNotFound, http.StatusNotFound},
		{"variant not found", lib.ErrVariantNotFound, http.StatusNotFound},
		{"last variant", lib.ErrLastVariant, http.StatusBadRequest},
		{"unsupported image", lib.ErrUnsupportedImage, http.StatusBadRequest},
		{"cancelled", context.Canceled, http.StatusServiceUnavailable},
		{"unknown", errors.New("disk on fire"), http.StatusInternalServerError},
	}

	logger := gecho.NewDefaultLogger()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			HandleServiceError(tt.err, "Something went wrong", logger, rec)
			assert.Equal(t, tt.expected, rec.Code)
		})
	}
}

func TestHandleServiceErrorReturnsFieldErrors(t *testing.T) {
	ve := &lib.ValidationError{}
	ve.Add("variants[0].name", "is required")

	rec := httptest.NewRecorder()
	HandleServiceError(ve, "Something went wrong", gecho.NewDefaultLogger(), rec)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body struct {
		Success bool           `json:"success"`
		Data    map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Contains(t, rec.Body.String(), "variants[0].name")
}

func TestHandleError(t *testing.T) {
	rec := httptest.NewRecorder()
	HandleError(errors.New("boom"), "Unable to load products", gecho.NewDefaultLogger(), rec)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Unable to load products")
}
