// internal/domain/cart/identity_test.go
package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAuthenticatedIdentity(t *testing.T) {
	identity := Authenticated(42)

	assert.False(t, identity.IsAnonymous())

	userID, ok := identity.UserID()
	assert.True(t, ok)
	assert.Equal(t, uint(42), userID)

	_, ok = identity.SessionKey()
	assert.False(t, ok)
}

func TestAnonymousIdentity(t *testing.T) {
	identity := Anonymous("sess-abc123")

	assert.True(t, identity.IsAnonymous())

	sessionKey, ok := identity.SessionKey()
	assert.True(t, ok)
	assert.Equal(t, "sess-abc123", sessionKey)

	_, ok = identity.UserID()
	assert.False(t, ok)
}
