package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"agrimarket-backend/internal/repository"
	"agrimarket-backend/internal/service"
	"agrimarket-backend/internal/validation"

	"github.com/stretchr/testify/assert"
)

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	assert.NoError(t, json.NewDecoder(rec.Body).Decode(&env))
	return env
}

func TestRespondError(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"NotFound", repository.ErrNotFound, http.StatusNotFound, "not_found"},
		{"InvalidCredentials", service.ErrInvalidCredentials, http.StatusUnauthorized, "invalid_credentials"},
		{"Forbidden", service.ErrUnauthorized, http.StatusForbidden, "forbidden"},
		{"ProfileIncomplete", service.ErrProfileIncomplete, http.StatusConflict, "profile_incomplete"},
		{"DateConflict", service.ErrDateConflict, http.StatusConflict, "date_conflict"},
		{"OverlapMapsToDateConflict", repository.ErrOverlap, http.StatusConflict, "date_conflict"},
		{"EmailTaken", service.ErrEmailTaken, http.StatusConflict, "email_taken"},
		{"InvalidTransition", service.ErrInvalidTransition, http.StatusConflict, "invalid_transition"},
		{"Unknown", errors.New("db exploded"), http.StatusInternalServerError, "internal_error"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			respondError(rec, tc.err)

			assert.Equal(t, tc.wantStatus, rec.Code)
			env := decodeEnvelope(t, rec)
			assert.NotNil(t, env.Error)
			assert.Equal(t, tc.wantCode, env.Error.Code)
			assert.Nil(t, env.Data)
		})
	}

	t.Run("UnknownErrorIsNotLeaked", func(t *testing.T) {
		rec := httptest.NewRecorder()
		respondError(rec, errors.New("password hash mismatch for row 17"))
		env := decodeEnvelope(t, rec)
		assert.NotContains(t, env.Error.Message, "row 17")
	})

	t.Run("FieldErrorsCarryFields", func(t *testing.T) {
		rec := httptest.NewRecorder()
		respondError(rec, validation.FieldErrors{"title": "title is required"})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		env := decodeEnvelope(t, rec)
		assert.Equal(t, "validation_error", env.Error.Code)
		assert.Equal(t, "title is required", env.Error.Fields["title"])
	})
}

func TestRespondData(t *testing.T) {
	rec := httptest.NewRecorder()
	respondData(rec, http.StatusCreated, map[string]int{"id": 7})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	env := decodeEnvelope(t, rec)
	assert.Nil(t, env.Error)
	assert.Equal(t, map[string]any{"id": float64(7)}, env.Data)
}
