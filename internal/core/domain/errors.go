package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	// Callers treat it as an absent result, not a failure.
	ErrNotFound = errors.New("not found")

	// ErrProductInUse indicates a product cannot be deleted because at
	// least one sale line item references it.
	ErrProductInUse = errors.New("product is referenced by a sale and cannot be deleted")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrEngineClosed indicates the storage engine has been closed.
	ErrEngineClosed = errors.New("storage engine closed")
)
