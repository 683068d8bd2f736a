// Package common defines sentinel errors and small helpers shared across
// policykeeper layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// Input errors.
	ErrInvalidPhone = errors.New("invalid phone number: 10 digits required")
	ErrValidation   = errors.New("validation error")

	// Account and export password errors.
	ErrPasswordMismatch   = errors.New("passwords do not match")
	ErrPasswordTooShort   = errors.New("password is too short")
	ErrAlreadyRegistered  = errors.New("mobile number already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("unauthorized")

	// Import/export errors.
	ErrUnsupportedFormat = errors.New("unsupported file format")
	ErrInvalidBackup     = errors.New("invalid backup format")
	ErrNoCustomers       = errors.New("no customers")

	// ErrShareUnsupported is advisory: the data can still be exported and sent manually.
	ErrShareUnsupported = errors.New("sharing not supported, export the file and send it manually")
)
