package service

import (
	"context"
	"time"

	"github.com/dgckit/go-dgc-verifier/models"
)

//go:generate mockgen -destination=../mock/service_mock.go -package=mock github.com/dgckit/go-dgc-verifier/internal/service Delegate

// Delegate receives every status transition of the sync controller. The
// presentation layer implements it to render download progress and resume
// prompts.
type Delegate interface {
	// StatusDidChange is called after each state transition with the new
	// synchronization status.
	StatusDidChange(status models.SyncStatus)
}

// SyncController keeps the local revocation set synchronized with the server
// through chunked, resumable downloads.
type SyncController interface {
	// Initialize wires the delegate, loads the persisted download cursor and
	// the retry budget from the rule catalog. It is a no-op (and keeps the
	// controller inert) when synchronization is disabled by the catalog.
	// Must be called once before Trigger or StartDownload.
	Initialize(ctx context.Context, delegate Delegate) error

	// Trigger runs one synchronization attempt unless a download is already
	// in flight or the last successful status fetch is not yet stale. The
	// first call after Initialize always attempts.
	Trigger(ctx context.Context)

	// StartDownload explicitly starts or resumes a staged download. It is
	// the entry point for the resume action after paused, downloadReady, or
	// userInteractionRequired.
	StartDownload(ctx context.Context)

	// SetDownloadConfirmed records whether the user accepted a download
	// exceeding the automatic size threshold.
	SetDownloadConfirmed(confirmed bool)

	// IsSynchronized reports whether the local store currently matches a
	// fully applied server version, i.e. at least one synchronization has
	// completed and no download cycle is pending.
	IsSynchronized(ctx context.Context) bool
}

// SyncJob drives SyncController.Trigger on a fixed period in the background.
type SyncJob interface {
	// Start launches the background goroutine that calls Trigger every
	// interval. Any previously running job is stopped before the new one
	// begins. The goroutine exits when ctx is cancelled or Stop is called.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it has
	// fully terminated.
	Stop()
}
