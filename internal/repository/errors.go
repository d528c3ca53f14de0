package repository

import "errors"

var (
	// ErrDuplicateKey is returned when an insert violates a unique index
	// (email on users, normalized pair on connections).
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrSelfConnection is returned when a connection insert names the
	// same user on both sides. The service checks this too; the store
	// rejecting it as well keeps the invariant even for future callers.
	ErrSelfConnection = errors.New("connection cannot reference the same user twice")
)
