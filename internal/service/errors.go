package service

import "errors"

var (
	// ErrVersionMismatch marks a chunk whose declared version differs from
	// the version this download cycle requested; the cycle must restart from
	// a fresh server status.
	ErrVersionMismatch = errors.New("chunk version differs from requested version")

	// ErrCountMismatch marks a nominally complete download whose locally
	// stored revoked-count differs from the server-reported total.
	ErrCountMismatch = errors.New("stored revoked count differs from server total")

	ErrSyncNotInitialized = errors.New("sync controller is not initialized")
)
