package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseToken(t *testing.T) {
	InitJWT("segredo-de-teste-16+")

	token, err := GenerateToken("user-123", "USER")
	require.NoError(t, err)

	claims, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.Subject)
	assert.Equal(t, "USER", claims.Role)

	// Expiração de 7 dias.
	require.NotNil(t, claims.ExpiresAt)
	ttl := time.Until(claims.ExpiresAt.Time)
	assert.InDelta(t, (7 * 24 * time.Hour).Seconds(), ttl.Seconds(), 60)
}

func TestParseTokenWrongSecret(t *testing.T) {
	InitJWT("segredo-de-teste-16+")
	token, err := GenerateToken("user-123", "USER")
	require.NoError(t, err)

	InitJWT("outro-segredo-16-chars")
	_, err = ParseToken(token)
	assert.Error(t, err)
}

func TestParseTokenExpired(t *testing.T) {
	InitJWT("segredo-de-teste-16+")

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		Role: "USER",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-123",
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-8 * 24 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-24 * time.Hour)),
		},
	})
	signed, err := expired.SignedString([]byte("segredo-de-teste-16+"))
	require.NoError(t, err)

	_, err = ParseToken(signed)
	assert.Error(t, err)
}

func TestParseTokenMalformed(t *testing.T) {
	InitJWT("segredo-de-teste-16+")

	_, err := ParseToken("nem-de-longe-um-jwt")
	assert.Error(t, err)
}
