package security

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestTokenRoundTrip(t *testing.T) {
	tm := NewTokenManager(testSecret, 60, 60*24)

	access, err := tm.GenerateAccessToken(7, "a@b.c")
	assert.NoError(t, err)

	claims, err := tm.ValidateToken(access)
	assert.NoError(t, err)
	assert.Equal(t, int32(7), claims.UserID)
	assert.Equal(t, "a@b.c", claims.Email)
	assert.Equal(t, TokenTypeAccess, claims.Type)

	refresh, err := tm.GenerateRefreshToken(7, "a@b.c")
	assert.NoError(t, err)
	claims, err = tm.ValidateToken(refresh)
	assert.NoError(t, err)
	assert.Equal(t, TokenTypeRefresh, claims.Type)
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	tm := NewTokenManager(testSecret, 60, 60)
	other := NewTokenManager("ffffffffffffffffffffffffffffffff", 60, 60)

	token, err := tm.GenerateAccessToken(7, "a@b.c")
	assert.NoError(t, err)

	_, err = other.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateTokenExpired(t *testing.T) {
	tm := NewTokenManager(testSecret, -1, 60)

	token, err := tm.GenerateAccessToken(7, "a@b.c")
	assert.NoError(t, err)

	// Issued already expired.
	time.Sleep(10 * time.Millisecond)
	_, err = tm.ValidateToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidateTokenGarbage(t *testing.T) {
	tm := NewTokenManager(testSecret, 60, 60)
	_, err := tm.ValidateToken("not.a.jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
