package services

import "errors"

var (
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrForbidden       = errors.New("forbidden")
	ErrNotFound        = errors.New("not found")
	ErrInvalidInput    = errors.New("invalid input")
	ErrSessionFull     = errors.New("session is full")
	ErrAlreadyBooked   = errors.New("already booked this session")
	ErrEmailImmutable  = errors.New("email is managed by the identity provider")
	ErrUpstream        = errors.New("identity provider rejected session")
)
