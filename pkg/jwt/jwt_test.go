package jwt

import (
	"testing"
	"time"

	"github.com/FkReMy/hospital-bed-system-sub001/config"

	"github.com/stretchr/testify/require"
)

func newTestService() *JWTService {
	return NewJWTService(config.JWTConfig{
		Secret:        "test-secret",
		AccessExpiry:  15 * time.Minute,
		RefreshExpiry: 7 * 24 * time.Hour,
	})
}

func testIdentity() Identity {
	return Identity{
		UserID:             "u1",
		Email:              "nurse@example.com",
		ActiveRole:         "nurse",
		Roles:              []string{"nurse", "reception"},
		MustChangePassword: true,
	}
}

func TestAccessTokenRoundTrip(t *testing.T) {
	service := newTestService()

	token, tokenID, err := service.GenerateAccessToken(testIdentity())
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.NotEmpty(t, tokenID)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	require.Equal(t, "u1", claims.UserID)
	require.Equal(t, "nurse@example.com", claims.Email)
	require.Equal(t, "nurse", claims.ActiveRole)
	require.Equal(t, []string{"nurse", "reception"}, claims.Roles)
	require.True(t, claims.MustChangePassword)
	require.Equal(t, AccessToken, claims.TokenType)
	require.Equal(t, tokenID, claims.TokenID)
}

func TestRefreshTokenType(t *testing.T) {
	service := newTestService()

	token, _, err := service.GenerateRefreshToken(testIdentity())
	require.NoError(t, err)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	require.Equal(t, RefreshToken, claims.TokenType)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	token, _, err := newTestService().GenerateAccessToken(testIdentity())
	require.NoError(t, err)

	other := NewJWTService(config.JWTConfig{Secret: "different", AccessExpiry: time.Minute})
	_, err = other.ValidateToken(token)
	require.Error(t, err)
}

func TestValidateTokenExpired(t *testing.T) {
	service := NewJWTService(config.JWTConfig{Secret: "test-secret", AccessExpiry: -time.Minute})

	token, _, err := service.GenerateAccessToken(testIdentity())
	require.NoError(t, err)

	_, err = service.ValidateToken(token)
	require.Error(t, err)
}
