// internal/domain/cart/identity.go
package cart

// Identity is the opaque cart owner key supplied by the session/auth
// layer: either an authenticated account or an anonymous session. The
// two cases are a tagged variant rather than a pair of nullable fields
// so callers cannot construct a cart owner that is both at once.
type Identity struct {
	userID     uint
	sessionKey string
	anonymous  bool
}

// Authenticated builds the identity of a logged-in account
func Authenticated(userID uint) Identity {
	return Identity{userID: userID}
}

// Anonymous builds the identity of a guest session
func Anonymous(sessionKey string) Identity {
	return Identity{sessionKey: sessionKey, anonymous: true}
}

// IsAnonymous reports whether the identity is a guest session
func (i Identity) IsAnonymous() bool {
	return i.anonymous
}

// UserID returns the account ID for authenticated identities
func (i Identity) UserID() (uint, bool) {
	if i.anonymous {
		return 0, false
	}
	return i.userID, true
}

// SessionKey returns the session key for anonymous identities
func (i Identity) SessionKey() (string, bool) {
	if !i.anonymous {
		return "", false
	}
	return i.sessionKey, true
}
