// Package service provides business logic for the application.
package service

import "errors"

// Service errors.
var (
	ErrBookNotFound        = errors.New("book not found")
	ErrBookUnavailable     = errors.New("book is not available")
	ErrUserNotFound        = errors.New("user not found")
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrLoanNotFound        = errors.New("loan not found")
	ErrLoanAlreadyReturned = errors.New("loan is already returned")
	ErrInvalidExtension    = errors.New("extension days must be positive")
	ErrBlankField          = errors.New("required field is blank")
	ErrInvalidRole         = errors.New("invalid role")
)
