package services

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/softcorner-studio/storefront-api/internal/config"
	"github.com/softcorner-studio/storefront-api/internal/models"
	"github.com/stretchr/testify/require"
)

func TestHashToken_Deterministic(t *testing.T) {
	a := hashToken("some-refresh-token")
	b := hashToken("some-refresh-token")
	require.Equal(t, a, b)
	require.Len(t, a, 64)
	require.NotEqual(t, a, hashToken("another-token"))
}

func TestGenerateAccessToken_Claims(t *testing.T) {
	cfg := &config.Config{
		JWTSecret:       "test-secret",
		JWTAccessExpiry: 15 * time.Minute,
	}
	svc := NewAuthService(nil, cfg)
	admin := &models.AdminUser{ID: uuid.New(), Email: "admin@example.com"}

	signed, err := svc.generateAccessToken(admin)
	require.NoError(t, err)

	parsed, err := jwt.Parse(signed, func(token *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	require.NoError(t, err)
	require.True(t, parsed.Valid)

	claims := parsed.Claims.(jwt.MapClaims)
	require.Equal(t, admin.ID.String(), claims["sub"])
	require.Equal(t, "admin@example.com", claims["email"])

	exp, err := claims.GetExpirationTime()
	require.NoError(t, err)
	require.WithinDuration(t, time.Now().Add(15*time.Minute), exp.Time, 5*time.Second)
}
