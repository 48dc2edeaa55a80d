package domain

import "errors"

var (
	// ErrUnauthenticated marks a request with a missing, malformed,
	// unverifiable or expired credential.
	ErrUnauthenticated = errors.New("unauthorized access")

	// ErrForbidden marks a verified caller that fails a role or
	// self-match check.
	ErrForbidden = errors.New("forbidden access")

	// ErrUserExists is returned by the store when a unique email index
	// rejects a duplicate user insert.
	ErrUserExists = errors.New("user already exists")

	// ErrUserNotFound is returned when no user record matches a lookup.
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidID marks a path identifier that does not parse as a
	// store object id.
	ErrInvalidID = errors.New("invalid document id")

	// ErrInvalidRole marks a role value outside the enumerated set.
	ErrInvalidRole = errors.New("invalid role")

	// ErrInvalidStatus marks an agreement status outside the decision set.
	ErrInvalidStatus = errors.New("invalid agreement status")
)
