package auth

import (
	"testing"

	"stock-backend/internal/config"
	"stock-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testJWTConfig(secret string) *config.Config {
	cfg := &config.Config{}
	cfg.JWT.Secret = secret
	cfg.JWT.ExpirationHours = 1
	cfg.JWT.Issuer = "stock-backend"
	return cfg
}

func TestGenerateAndValidateToken(t *testing.T) {
	mgr := NewJWTManager(testJWTConfig("test-secret"))

	user := &models.UserAccount{
		ID:        42,
		Username:  "encoder1",
		IsStaff:   true,
		CanEncode: true,
	}

	token, err := mgr.GenerateToken(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := mgr.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, 42, claims.UserID)
	assert.Equal(t, "encoder1", claims.Username)
	assert.True(t, claims.CanEncode)
	assert.False(t, claims.IsAdmin)
	assert.Equal(t, "stock-backend", claims.Issuer)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	mgr := NewJWTManager(testJWTConfig("secret-a"))
	other := NewJWTManager(testJWTConfig("secret-b"))

	token, err := mgr.GenerateToken(&models.UserAccount{ID: 1, Username: "x"})
	require.NoError(t, err)

	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateTokenGarbage(t *testing.T) {
	mgr := NewJWTManager(testJWTConfig("test-secret"))

	_, err := mgr.ValidateToken("not.a.token")
	assert.Error(t, err)
}
