package storage

import "errors"

// Common storage errors
var (
	// ErrUserNotFound indicates that user was not found in storage
	ErrUserNotFound = errors.New("user not found")

	// ErrUserExists indicates that username or email is already taken
	ErrUserExists = errors.New("user already exists")

	// ErrTransactionNotFound indicates that transaction was not found
	// or is owned by a different user (the two cases are deliberately
	// indistinguishable)
	ErrTransactionNotFound = errors.New("transaction not found")
)
