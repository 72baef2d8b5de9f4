package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"agrimarket-backend/internal/security"

	"github.com/stretchr/testify/assert"
)

func newTestTokens(t *testing.T) (security.TokenManager, string, string) {
	t.Helper()
	tm := security.NewTokenManager("0123456789abcdef0123456789abcdef", 60, 60*24)
	access, err := tm.GenerateAccessToken(7, "a@b.c")
	assert.NoError(t, err)
	refresh, err := tm.GenerateRefreshToken(7, "a@b.c")
	assert.NoError(t, err)
	return tm, access, refresh
}

func TestAuthMiddleware(t *testing.T) {
	tm, access, refresh := newTestTokens(t)

	var gotUserID int32
	handler := AuthMiddleware(tm)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID = UserID(r)
		w.WriteHeader(http.StatusOK)
	}))

	t.Run("ValidAccessToken", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+access)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, int32(7), gotUserID)
	})

	t.Run("MissingHeader", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("GarbageToken", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer not-a-jwt")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("RefreshTokenRejectedForAccess", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+refresh)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestUserIDWithoutClaims(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Equal(t, int32(0), UserID(req))
}
