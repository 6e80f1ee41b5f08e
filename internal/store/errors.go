package store

import "errors"

var (
	// ErrInvalidCredentials is the uniform authentication failure. Callers
	// must not be able to tell an unknown username from a wrong password.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrValidation covers empty required fields (comment body, report
	// reason, login fields, contact fields).
	ErrValidation = errors.New("validation failed")

	// ErrPermissionDenied covers actions attempted without the required
	// role or ownership. The UI never offers these controls; the store
	// still rejects direct invocations as a no-op.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrNotFound covers operations against ids that no longer resolve.
	// Mutations treat it as a silent no-op since callers may hold stale
	// state.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyReported rejects a second report against a comment whose
	// report is still open or already upheld; the original reason is
	// never overwritten.
	ErrAlreadyReported = errors.New("comment already reported")

	ErrAccountNotFound = errors.New("account not found")
)
