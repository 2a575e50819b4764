package errors

import (
	"errors"
)

// Validation errors, reported as domain failures.
var (
	ErrInvalidParameters = errors.New("invalid parameters")
	ErrNameRequired      = errors.New("name is required")
	ErrPasswordRequired  = errors.New("password is required")
	ErrUsernameRequired  = errors.New("username or CPF is required")
	ErrInvalidCPF        = errors.New("invalid CPF")
)

// Conflict errors.
var (
	ErrUsernameOrCpfExists = errors.New("username or CPF already exists")
	ErrUsernameExists      = errors.New("username already exists")
	ErrCpfExists           = errors.New("CPF already exists")
)

// Not-found errors.
var (
	ErrAccountNotFound = errors.New("account not found")
	ErrGetAccount      = errors.New("failed to look up account")
)

// Authentication errors. Messages are deliberately generic so responses never
// reveal whether an account exists.
var (
	ErrIncorrectCredentials = errors.New("incorrect credentials")
	ErrTokenNotFound        = errors.New("token not found")
)

// Mail errors.
var (
	ErrAccountHasNoEmail = errors.New("account has no email address")
	ErrAllRecoveryFailed = errors.New("all recovery key deliveries failed")
)
