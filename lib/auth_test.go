package lib

import (
	"testing"
	"time"

	"labisco_server/structs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fastArgon = &structs.ArgonParams{Memory: 1024, Time: 1, Threads: 1, KeyLen: 16, SaltLen: 8}

func TestPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("password123", fastArgon)
	require.NoError(t, err)
	assert.Contains(t, hash, "$argon2id$v=19$m=1024,t=1,p=1$")

	ok, err := VerifyPassword("password123", hash)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = VerifyPassword("password124", hash)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = VerifyPassword("x", "not-a-hash")
	assert.ErrorIs(t, err, ErrInvalidHash)
}

func TestTokenRoundTrip(t *testing.T) {
	now := time.Now().Truncate(time.Second)
	claims := &structs.AuthClaims{
		Sub:   "admin1",
		Email: "admin@labisco.com",
		Iat:   now,
		Exp:   now.Add(time.Hour),
		Jti:   uuid.New(),
	}

	token, err := SignToken(claims, "secret")
	require.NoError(t, err)

	parsed, err := ParseToken(token, "secret")
	require.NoError(t, err)
	assert.Equal(t, claims.Sub, parsed.Sub)
	assert.Equal(t, claims.Jti, parsed.Jti)
	assert.True(t, claims.Exp.Equal(parsed.Exp))

	_, err = ParseToken(token, "other-secret")
	assert.ErrorIs(t, err, ErrInvalidToken)

	claims.Iat = now.Add(-2 * time.Hour)
	claims.Exp = now.Add(-time.Hour)
	expired, err := SignToken(claims, "secret")
	require.NoError(t, err)
	_, err = ParseToken(expired, "secret")
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestCSRFTokensMatch(t *testing.T) {
	tok, err := GenerateCSRFToken()
	require.NoError(t, err)
	assert.True(t, CSRFTokensMatch(tok, tok))
	assert.False(t, CSRFTokensMatch(tok, ""))
	assert.False(t, CSRFTokensMatch("", ""))
	assert.False(t, CSRFTokensMatch(tok, tok+"x"))
}
