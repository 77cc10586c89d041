package users

import "errors"

var (
	// ErrNotFound is returned when no user matches the lookup.
	ErrNotFound = errors.New("user not found")
	// ErrDuplicateEmail is returned when the email is already registered.
	ErrDuplicateEmail = errors.New("email already registered")
	// ErrDuplicateUsername is returned when the username is already taken.
	ErrDuplicateUsername = errors.New("username already taken")
	// ErrInvalidCredentials covers both unknown email and wrong password; the
	// message is deliberately identical for the two cases.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidInput is returned for missing or malformed registration fields.
	ErrInvalidInput = errors.New("invalid input")
)
