package services

import "errors"

var (
	// ErrNotFound is returned when the requested id has no row.
	ErrNotFound = errors.New("record not found")

	// ErrInvalidCredentials covers both unknown email and wrong password,
	// so login failures cannot be used to enumerate admin accounts.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
