package models

// ValidityStatus is the tri-state outcome of validating a certificate.
type ValidityStatus string

const (
	// StatusValid means the certificate is inside its validity window and
	// passes every applicable check.
	StatusValid ValidityStatus = "valid"

	// StatusPartiallyValid means the certificate is outside its primary
	// window but inside a tolerated one (not yet valid, or within an
	// extension window), or requires an additional test.
	StatusPartiallyValid ValidityStatus = "partiallyValid"

	// StatusNotValid means the certificate must not be accepted.
	StatusNotValid ValidityStatus = "notValid"
)

// InvalidityReason explains why a certificate did not come out fully valid.
type InvalidityReason string

const (
	ReasonExpired             InvalidityReason = "expired"
	ReasonNotYetValid         InvalidityReason = "notYetValid"
	ReasonRevoked             InvalidityReason = "revoked"
	ReasonBlacklisted         InvalidityReason = "blacklisted"
	ReasonUnrecognizedProduct InvalidityReason = "unrecognizedProduct"
	ReasonMalformed           InvalidityReason = "malformed"
	ReasonExtendedWindow      InvalidityReason = "extendedWindow"
	ReasonTestRequired        InvalidityReason = "testRequired"
	ReasonNotAccepted         InvalidityReason = "notAccepted"
)

// ValidityDecision is the result handed to the presentation layer after a
// scan. ScanID uniquely identifies the scan event for audit logging.
type ValidityDecision struct {
	Status   ValidityStatus   `json:"status"`
	Reason   InvalidityReason `json:"reason,omitempty"`
	ScanID   string           `json:"scan_id"`
	ScanMode ScanMode         `json:"scan_mode"`
}

// SyncStatus is the synchronization outcome reported to the delegate after
// each state transition of the sync controller.
type SyncStatus string

const (
	// SyncDownloadReady signals a fresh download is staged and waiting for
	// an explicit start.
	SyncDownloadReady SyncStatus = "downloadReady"

	// SyncDownloading signals chunks are being fetched and applied.
	SyncDownloading SyncStatus = "downloading"

	// SyncCompleted signals the local store matches the server version.
	SyncCompleted SyncStatus = "completed"

	// SyncPaused signals a resumable interruption; the next start continues
	// from the first unacknowledged chunk.
	SyncPaused SyncStatus = "paused"

	// SyncError signals a terminal failure after partial transfer; local
	// progress has been discarded.
	SyncError SyncStatus = "error"

	// SyncStatusNetworkError signals a terminal failure with nothing
	// transferred this cycle (status poll failed or retries exhausted before
	// the first chunk landed).
	SyncStatusNetworkError SyncStatus = "statusNetworkError"

	// SyncNoConnection signals the network is unreachable.
	SyncNoConnection SyncStatus = "noConnection"

	// SyncUserInteractionRequired signals the download exceeds the automatic
	// size threshold and waits for explicit user confirmation.
	SyncUserInteractionRequired SyncStatus = "userInteractionRequired"
)
