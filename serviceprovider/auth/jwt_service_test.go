package auth

import (
	"testing"
	"time"

	"labtrack/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	svc := NewJWTService("access-secret", "refresh-secret")

	token, err := svc.GenerateJWT("user-1", models.TechnicianRole)
	require.NoError(t, err)

	sub, role, err := svc.ParseJWT(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", sub)
	assert.Equal(t, models.TechnicianRole, role)
}

func TestRefreshTokenIsNotAnAccessToken(t *testing.T) {
	svc := NewJWTService("same-secret", "same-secret")

	refresh, err := svc.GenerateRefreshToken("user-1")
	require.NoError(t, err)

	_, _, err = svc.ParseJWT(refresh)
	assert.Error(t, err)

	sub, err := svc.ParseRefreshToken(refresh)
	require.NoError(t, err)
	assert.Equal(t, "user-1", sub)
}

func TestExpiredAccessToken(t *testing.T) {
	svc := &jwtService{
		jwtSecret:     []byte("access-secret"),
		refreshSecret: []byte("refresh-secret"),
		tokenExpiry:   -time.Minute,
	}

	token, err := svc.GenerateJWT("user-1", models.StaffRole)
	require.NoError(t, err)

	_, _, err = svc.ParseJWT(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestWrongSecretRejected(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "user-1",
		"typ": "access",
		"exp": time.Now().Add(time.Minute).Unix(),
	})
	signed, err := token.SignedString([]byte("other"))
	require.NoError(t, err)

	_, _, err = NewJWTService("access-secret", "refresh-secret").ParseJWT(signed)
	assert.Error(t, err)
}
