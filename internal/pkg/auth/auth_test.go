// internal/pkg/auth/auth_test.go
package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/storefront-backend/internal/config"
)

func testConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{Name: "Storefront Backend"},
		JWT: config.JWTConfig{
			Secret:             "0123456789abcdef0123456789abcdef",
			AccessTokenExpiry:  time.Hour,
			RefreshTokenExpiry: 24 * time.Hour,
		},
		Security: config.SecurityConfig{BcryptCost: 4},
	}
}

func TestPasswordHashAndVerify(t *testing.T) {
	pm := NewPasswordManager(testConfig())

	hash, err := pm.HashPassword("Str0ng!Pwd")
	require.NoError(t, err)
	assert.NotEqual(t, "Str0ng!Pwd", hash)

	assert.NoError(t, pm.VerifyPassword("Str0ng!Pwd", hash))
	assert.Error(t, pm.VerifyPassword("wrong-password", hash))
}

func TestHashPasswordEnforcesStrength(t *testing.T) {
	pm := NewPasswordManager(testConfig())

	hash, err := pm.HashPassword("weak")
	assert.Error(t, err)
	assert.Empty(t, hash)
}

func TestValidatePassword(t *testing.T) {
	pm := NewPasswordManager(testConfig())

	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{"valid", "Str0ng!Pwd", false},
		{"too short", "S1!a", true},
		{"no uppercase", "str0ng!pwd", true},
		{"no number", "Strong!Pwd", true},
		{"no special", "Str0ngPwdX", true},
		{"sequential numbers", "Str123!Pwd", true},
		{"common word", "Password9!x", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := pm.ValidatePassword(tt.password)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestJWTRoundTrip(t *testing.T) {
	jm := NewJWTManager(testConfig())

	token, err := jm.GenerateAccessToken(42, "jane@example.com", true)
	require.NoError(t, err)

	claims, err := jm.ValidateAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "jane@example.com", claims.Email)
	assert.True(t, claims.IsAdmin)
	assert.Equal(t, "access", claims.TokenType)
}

func TestJWTTokenTypeMismatch(t *testing.T) {
	jm := NewJWTManager(testConfig())

	refresh, err := jm.GenerateRefreshToken(42, "jane@example.com")
	require.NoError(t, err)

	_, err = jm.ValidateAccessToken(refresh)
	assert.Error(t, err)

	claims, err := jm.ValidateRefreshToken(refresh)
	require.NoError(t, err)
	assert.False(t, claims.IsAdmin)
}

func TestJWTRejectsTamperedToken(t *testing.T) {
	jm := NewJWTManager(testConfig())

	token, err := jm.GenerateAccessToken(42, "jane@example.com", false)
	require.NoError(t, err)

	other := testConfig()
	other.JWT.Secret = "ffffffffffffffffffffffffffffffff"
	_, err = NewJWTManager(other).ValidateToken(token)
	assert.Error(t, err)
}

func TestExtractTokenFromHeader(t *testing.T) {
	assert.Equal(t, "abc.def.ghi", ExtractTokenFromHeader("Bearer abc.def.ghi"))
	assert.Equal(t, "", ExtractTokenFromHeader("abc.def.ghi"))
	assert.Equal(t, "", ExtractTokenFromHeader(""))
}
