package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestNewAccessTokenClaims(t *testing.T) {
	access, err := NewAccessToken("secret", "u1", "admin@studio.fr", "ADMIN", 24)
	require.NoError(t, err)
	require.NotEmpty(t, access.Token)
	assert.WithinDuration(t, time.Now().UTC().Add(24*time.Hour), access.Exp, time.Minute)

	tok, err := jwt.Parse(access.Token, func(tk *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	require.NoError(t, err)
	require.True(t, tok.Valid)

	claims, ok := tok.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, "u1", claims["id"])
	assert.Equal(t, "admin@studio.fr", claims["email"])
	assert.Equal(t, "ADMIN", claims["role"])
}

func TestNewAccessTokenWrongSecretFailsParse(t *testing.T) {
	access, err := NewAccessToken("secret", "u1", "admin@studio.fr", "ADMIN", 1)
	require.NoError(t, err)

	_, err = jwt.Parse(access.Token, func(tk *jwt.Token) (interface{}, error) {
		return []byte("other"), nil
	})
	assert.Error(t, err)
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("admin123", bcrypt.MinCost)
	require.NoError(t, err)
	assert.True(t, VerifyPassword(hash, "admin123"))
	assert.False(t, VerifyPassword(hash, "admin1234"))
}
