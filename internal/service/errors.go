package service

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email already registered")
	// ErrUnauthorized means the caller is authenticated but not allowed
	// to act on this resource.
	ErrUnauthorized = errors.New("not allowed")
	// ErrProfileIncomplete gates actions that need a completed profile.
	// It is distinct from an authentication failure.
	ErrProfileIncomplete    = errors.New("profile is incomplete")
	ErrEquipmentUnavailable = errors.New("equipment is not available for reservation")
	ErrOwnEquipment         = errors.New("cannot reserve your own equipment")
	ErrDateConflict         = errors.New("equipment is already reserved on those dates")
	ErrInvalidTransition    = errors.New("reservation status transition not allowed")
	ErrAlreadyReviewed      = errors.New("reservation has already been reviewed")
)
