// internal/interfaces/http/handlers/response_test.go
package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/storefront-backend/internal/pkg/apperrors"
)

func recordError(t *testing.T, err error) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	respondError(c, err)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w, body
}

func TestRespondErrorNotFound(t *testing.T) {
	w, body := recordError(t, apperrors.NotFound("product", "phone-alpha"))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "product not found: phone-alpha", body["error"])
}

func TestRespondErrorValidation(t *testing.T) {
	w, body := recordError(t, apperrors.Validation("cart is empty"))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "cart is empty", body["error"])
	assert.NotContains(t, body, "fields")
}

func TestRespondErrorValidationFields(t *testing.T) {
	w, body := recordError(t, apperrors.ValidationFields("missing required contact fields", map[string]string{
		"phone": "required",
	}))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	fields, ok := body["fields"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "required", fields["phone"])
}

func TestRespondErrorConflict(t *testing.T) {
	w, body := recordError(t, apperrors.Conflict("cart is already bound to an order"))

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "cart is already bound to an order", body["error"])
}

func TestRespondErrorUnknown(t *testing.T) {
	w, body := recordError(t, fmt.Errorf("pq: connection reset"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Internal server error", body["error"])
}

func TestRespondErrorWrapped(t *testing.T) {
	wrapped := fmt.Errorf("failed to load cart: %w", apperrors.NotFound("cart", "9"))
	w, _ := recordError(t, wrapped)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
