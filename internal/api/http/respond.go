package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"agrimarket-backend/internal/logger"
	"agrimarket-backend/internal/repository"
	"agrimarket-backend/internal/security"
	"agrimarket-backend/internal/service"
	"agrimarket-backend/internal/validation"
)

// envelope is the uniform response shape: exactly one of data or error
// is set.
type envelope struct {
	Data  any        `json:"data,omitempty"`
	Error *errorBody `json:"error,omitempty"`
}

type errorBody struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// page wraps a list response with its total count.
type page struct {
	Items any   `json:"items"`
	Total int32 `json:"total"`
}

func respondData(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(envelope{Data: data}); err != nil {
		logger.Error("response encoding failed", "error", err)
	}
}

func respondPage(w http.ResponseWriter, items any, total int32) {
	respondData(w, http.StatusOK, page{Items: items, Total: total})
}

// respondError maps domain and service errors onto HTTP statuses and
// stable machine-readable codes. Anything unmapped is a 500 with a
// generic message; the detail goes to the log, not to the client.
func respondError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	body := &errorBody{Code: "internal_error", Message: "an unexpected error occurred"}

	var fieldErrs validation.FieldErrors
	switch {
	case errors.As(err, &fieldErrs):
		status = http.StatusBadRequest
		body.Code = "validation_error"
		body.Message = "one or more fields are invalid"
		body.Fields = fieldErrs
	case errors.Is(err, repository.ErrNotFound):
		status = http.StatusNotFound
		body.Code = "not_found"
		body.Message = "resource not found"
	case errors.Is(err, service.ErrInvalidCredentials):
		status = http.StatusUnauthorized
		body.Code = "invalid_credentials"
		body.Message = err.Error()
	case errors.Is(err, security.ErrExpiredToken),
		errors.Is(err, security.ErrInvalidToken),
		errors.Is(err, security.ErrWrongTokenType):
		status = http.StatusUnauthorized
		body.Code = "invalid_token"
		body.Message = err.Error()
	case errors.Is(err, service.ErrUnauthorized):
		status = http.StatusForbidden
		body.Code = "forbidden"
		body.Message = err.Error()
	case errors.Is(err, service.ErrProfileIncomplete):
		status = http.StatusConflict
		body.Code = "profile_incomplete"
		body.Message = err.Error()
	case errors.Is(err, service.ErrDateConflict), errors.Is(err, repository.ErrOverlap):
		status = http.StatusConflict
		body.Code = "date_conflict"
		body.Message = service.ErrDateConflict.Error()
	case errors.Is(err, service.ErrEmailTaken):
		status = http.StatusConflict
		body.Code = "email_taken"
		body.Message = err.Error()
	case errors.Is(err, service.ErrAlreadyReviewed):
		status = http.StatusConflict
		body.Code = "already_reviewed"
		body.Message = err.Error()
	case errors.Is(err, service.ErrEquipmentUnavailable):
		status = http.StatusConflict
		body.Code = "equipment_unavailable"
		body.Message = err.Error()
	case errors.Is(err, service.ErrOwnEquipment):
		status = http.StatusBadRequest
		body.Code = "own_equipment"
		body.Message = err.Error()
	case errors.Is(err, service.ErrInvalidTransition):
		status = http.StatusConflict
		body.Code = "invalid_transition"
		body.Message = err.Error()
	}

	if status == http.StatusInternalServerError {
		logger.Error("request failed", "error", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if encErr := json.NewEncoder(w).Encode(envelope{Error: body}); encErr != nil {
		logger.Error("error response encoding failed", "error", encErr)
	}
}

func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return validation.FieldErrors{"body": "request body must be valid JSON"}
	}
	return nil
}
