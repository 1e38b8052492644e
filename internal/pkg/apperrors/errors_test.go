// internal/pkg/apperrors/errors_test.go
package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotFound(t *testing.T) {
	err := NotFound("product", "phone-alpha")
	assert.EqualError(t, err, "product not found: phone-alpha")

	var nf *ErrNotFound
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "product", nf.Resource)
	assert.Equal(t, "phone-alpha", nf.Key)
}

func TestValidation(t *testing.T) {
	err := Validation("quantity must be a positive integer")
	assert.EqualError(t, err, "quantity must be a positive integer")

	var ve *ErrValidation
	require.ErrorAs(t, err, &ve)
	assert.Empty(t, ve.Fields)

	err = ValidationFields("missing required contact fields", map[string]string{
		"first_name": "required",
	})
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "required", ve.Fields["first_name"])
}

func TestValidationDefaultMessage(t *testing.T) {
	err := &ErrValidation{}
	assert.EqualError(t, err, "validation failed")
}

func TestConflict(t *testing.T) {
	err := Conflict("cart is already bound to an order")
	assert.EqualError(t, err, "cart is already bound to an order")

	var ce *ErrConflict
	assert.ErrorAs(t, err, &ce)
}

func TestNotificationUnwrap(t *testing.T) {
	cause := fmt.Errorf("smtp: connection refused")
	err := &ErrNotification{OrderID: 7, Cause: cause}

	assert.EqualError(t, err, "failed to notify staff about order 7: smtp: connection refused")
	assert.True(t, errors.Is(err, cause))
}

func TestErrorKindsAreDistinct(t *testing.T) {
	var nf *ErrNotFound
	assert.False(t, errors.As(Validation("nope"), &nf))

	var ve *ErrValidation
	assert.False(t, errors.As(Conflict("nope"), &ve))
}
