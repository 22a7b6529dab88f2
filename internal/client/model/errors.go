package model

import "errors"

// The error values every client operation reports its failures with.
// Callers are expected to branch on them with errors.Is.
var (
	// ErrValidation flags malformed or missing required fields, caught
	// before any I/O happens.
	ErrValidation = errors.New("invalid request")
	// ErrConflict flags duplicate usernames, emails or share grants.
	ErrConflict = errors.New("conflicting record already exists")
	// ErrUnauthenticated flags an absent, expired or invalid session token.
	ErrUnauthenticated = errors.New("not authenticated")
	// ErrForbidden flags an authenticated caller the access rules deny.
	ErrForbidden = errors.New("operation not allowed")
	// ErrNotFound flags an absent entity. Read paths also report it in
	// place of ErrForbidden so they never confirm a memo's existence to
	// users who may not see it.
	ErrNotFound = errors.New("not found")
	// ErrUnreachable flags a network failure or timeout talking to the
	// authoritative service.
	ErrUnreachable = errors.New("remote service unreachable")
	// ErrServer flags an unexpected remote failure.
	ErrServer = errors.New("remote service error")
	// ErrOfflineOnly flags an operation that has no offline fallback,
	// such as granting or revoking shares.
	ErrOfflineOnly = errors.New("operation requires connectivity")
)
