// internal/domain/user/entity_test.go
package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBeforeCreateLowercasesEmail(t *testing.T) {
	u := User{Email: "Jane.DOE@Example.com"}
	require.NoError(t, u.BeforeCreate(nil))
	assert.Equal(t, "jane.doe@example.com", u.Email)
}

func TestGetFullName(t *testing.T) {
	assert.Equal(t, "Jane Doe", (&User{FirstName: "Jane", LastName: "Doe"}).GetFullName())
	assert.Equal(t, "Jane", (&User{FirstName: "Jane"}).GetFullName())
	assert.Equal(t, "", (&User{}).GetFullName())
}

func TestGetDisplayName(t *testing.T) {
	assert.Equal(t, "Jane Doe", (&User{FirstName: "Jane", LastName: "Doe", Email: "jane@example.com"}).GetDisplayName())
	assert.Equal(t, "jane@example.com", (&User{Email: "jane@example.com"}).GetDisplayName())
}
