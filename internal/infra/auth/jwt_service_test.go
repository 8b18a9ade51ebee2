package auth

import (
	"testing"
	"time"

	"servihub/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig() *config.Config {
	return &config.Config{
		SecretKey: config.SecretKeyConfig{
			Access:  "test_access_secret_key_very_long_for_testing",
			Refresh: "test_refresh_secret_key_very_long_for_testing",
		},
		Auth: &config.AuthConfig{
			AccessTokenTTL:  time.Minute,
			RefreshTokenTTL: time.Hour,
		},
	}
}

func TestJWTService_GenerateAndValidateTokens(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	userID := uuid.New()
	roles := []string{"technician"}

	accessToken, refreshToken, err := jwtService.GenerateTokens(userID, roles)
	require.NoError(t, err)
	assert.NotEmpty(t, accessToken)
	assert.NotEmpty(t, refreshToken)

	accessClaims, err := jwtService.ValidateAccessToken(accessToken)
	require.NoError(t, err)
	assert.Equal(t, userID, accessClaims.UserID)
	assert.Equal(t, roles, accessClaims.Roles)
	assert.Equal(t, "access", accessClaims.Type)

	refreshClaims, err := jwtService.ValidateRefreshToken(refreshToken)
	require.NoError(t, err)
	assert.Equal(t, userID, refreshClaims.UserID)
	assert.Nil(t, refreshClaims.Roles)
	assert.Equal(t, "refresh", refreshClaims.Type)

	assert.Equal(t, time.Hour, jwtService.GetRefreshTokenDuration())
}

func TestJWTService_TokenTypesAreNotInterchangeable(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	accessToken, refreshToken, err := jwtService.GenerateTokens(uuid.New(), []string{"client"})
	require.NoError(t, err)

	// Different secrets: the signature check rejects the swap.
	_, err = jwtService.ValidateAccessToken(refreshToken)
	assert.Error(t, err)

	_, err = jwtService.ValidateRefreshToken(accessToken)
	assert.Error(t, err)
}

func TestJWTService_WrongTypeWithSharedSecret(t *testing.T) {
	cfg := newTestConfig()
	cfg.SecretKey.Refresh = cfg.SecretKey.Access

	jwtService, err := NewJWTService(cfg)
	require.NoError(t, err)

	_, refreshToken, err := jwtService.GenerateTokens(uuid.New(), nil)
	require.NoError(t, err)

	_, err = jwtService.ValidateAccessToken(refreshToken)
	assert.ErrorIs(t, err, ErrWrongTokenType)
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	_, err = jwtService.ValidateAccessToken("invalid.token.here")
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = jwtService.ValidateAccessToken("")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	svc, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	jwtSvc := svc.(*jwtService)
	jwtSvc.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	accessToken, _, err := jwtSvc.GenerateTokens(uuid.New(), []string{"client"})
	require.NoError(t, err)

	jwtSvc.now = time.Now
	_, err = jwtSvc.ValidateAccessToken(accessToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTService_MissingSecrets(t *testing.T) {
	_, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
}

func TestJWTService_DefaultTTL(t *testing.T) {
	cfg := newTestConfig()
	cfg.Auth = nil

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)
	assert.Equal(t, 7*24*time.Hour, svc.GetRefreshTokenDuration())
}
