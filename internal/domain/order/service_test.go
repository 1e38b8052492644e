// internal/domain/order/service_test.go
package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/storefront-backend/internal/pkg/apperrors"
)

func TestValidateContact(t *testing.T) {
	t.Run("accepts a complete form", func(t *testing.T) {
		err := ValidateContact(ContactInfo{
			FirstName: "Jane",
			LastName:  "Doe",
			Phone:     "+15551234567",
		})
		assert.NoError(t, err)
	})

	t.Run("comment is optional", func(t *testing.T) {
		err := ValidateContact(ContactInfo{
			FirstName: "Jane",
			LastName:  "Doe",
			Phone:     "+15551234567",
			Comment:   "",
		})
		assert.NoError(t, err)
	})

	t.Run("rejects blank required fields", func(t *testing.T) {
		err := ValidateContact(ContactInfo{
			FirstName: "  ",
			LastName:  "Doe",
			Phone:     "",
		})
		require.Error(t, err)

		var verr *apperrors.ErrValidation
		require.ErrorAs(t, err, &verr)
		assert.Contains(t, verr.Fields, "first_name")
		assert.Contains(t, verr.Fields, "phone")
		assert.NotContains(t, verr.Fields, "last_name")
	})
}

func TestValidStatus(t *testing.T) {
	assert.True(t, ValidStatus(StatusNew))
	assert.True(t, ValidStatus(StatusInProgress))
	assert.True(t, ValidStatus(StatusReady))
	assert.True(t, ValidStatus(StatusComplete))
	assert.False(t, ValidStatus(Status("cancelled")))
	assert.False(t, ValidStatus(Status("")))
}
