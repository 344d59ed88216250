// Package apperrors defines the sentinel errors shared by repositories,
// services, and handlers. Lower layers wrap these with context via %w and
// handlers translate them to HTTP statuses with errors.Is.
package apperrors

import "errors"

var (
	// ErrValidation marks malformed or missing input (HTTP 400).
	ErrValidation = errors.New("validation failed")
	// ErrInvalidCredentials is returned for any failed login attempt,
	// regardless of whether the email or the password was wrong (HTTP 401).
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidToken marks a missing, malformed, or expired token (HTTP 401).
	ErrInvalidToken = errors.New("invalid or expired token")
	// ErrForbidden marks an authenticated identity with the wrong role (HTTP 403).
	ErrForbidden = errors.New("insufficient role")
	// ErrNotFound marks an id that does not resolve to a record (HTTP 404).
	ErrNotFound = errors.New("not found")
	// ErrConflict marks a duplicate unique field such as a registered email.
	ErrConflict = errors.New("already exists")
)
