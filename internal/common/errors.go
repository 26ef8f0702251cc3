// Package common defines shared constants and sentinel errors used across
// the service layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Input / request shape errors.
	ErrParse             = errors.New("cannot parse parameter")
	ErrMissingParameters = errors.New("missing parameters")

	// Auth errors.
	ErrUnauthorized    = errors.New("unauthorized")
	ErrInvalidToken    = errors.New("invalid token")
	ErrWrongCredential = errors.New("wrong email/password combination")
	ErrCrypto          = errors.New("crypto library failure")

	// Repository-level errors.
	ErrNotFound         = errors.New("not found")
	ErrDuplicateAccount = errors.New("account already exists")
	ErrQuery            = errors.New("query error")
)
