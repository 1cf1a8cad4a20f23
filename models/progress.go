package models

// FirstChunk is the index of the first chunk of a download cycle.
const FirstChunk int64 = 1

// SyncProgress is the persisted cursor of an in-flight (or completed)
// revocation-list download. It is owned exclusively by the sync controller
// and survives process restarts so a partially downloaded version can be
// resumed.
//
// CurrentChunk only advances after the corresponding chunk has been durably
// applied to the revocation store; RemainingBytes only decreases.
type SyncProgress struct {
	// CurrentVersion is the last fully applied revocation-list version.
	CurrentVersion int64 `json:"current_version"`

	// RequestedVersion is the version the current download cycle targets.
	// Equal to CurrentVersion when no download is pending.
	RequestedVersion int64 `json:"requested_version"`

	// CurrentChunk is the 1-based index of the next chunk to request.
	CurrentChunk int64 `json:"current_chunk"`

	// TotalChunk is the chunk count of the requested version.
	TotalChunk int64 `json:"total_chunk"`

	// SizeSingleChunkInBytes is the server-declared chunk size at the time
	// the download started. A later mismatch with the server invalidates
	// the resume.
	SizeSingleChunkInBytes int64 `json:"size_single_chunk_in_bytes"`

	// TotalSizeInBytes is the full payload size of the requested version.
	TotalSizeInBytes int64 `json:"total_size_in_bytes"`

	// RemainingBytes is the number of bytes not yet applied.
	RemainingBytes int64 `json:"remaining_bytes"`
}

// NewSyncProgress derives a fresh download cursor targeting the version
// described by status, keeping current as the already-applied version.
// The cursor points at the first chunk with the whole payload remaining.
func NewSyncProgress(current int64, status ServerStatus) SyncProgress {
	return SyncProgress{
		CurrentVersion:         current,
		RequestedVersion:       status.Version,
		CurrentChunk:           FirstChunk,
		TotalChunk:             status.TotalChunk,
		SizeSingleChunkInBytes: status.SizeSingleChunkInBytes,
		TotalSizeInBytes:       status.TotalSizeInBytes,
		RemainingBytes:         status.TotalSizeInBytes,
	}
}

// AdvanceChunk moves the cursor past one durably applied chunk of
// chunkBytes bytes. RemainingBytes never goes below zero.
func (p *SyncProgress) AdvanceChunk(chunkBytes int64) {
	p.CurrentChunk++
	p.RemainingBytes -= chunkBytes
	if p.RemainingBytes < 0 {
		p.RemainingBytes = 0
	}
}

// Complete marks the requested version as fully applied and clears the
// per-download fields.
func (p *SyncProgress) Complete() {
	p.CurrentVersion = p.RequestedVersion
	p.CurrentChunk = 0
	p.TotalChunk = 0
	p.SizeSingleChunkInBytes = 0
	p.TotalSizeInBytes = 0
	p.RemainingBytes = 0
}

// ChunksCompleted reports whether every chunk of the requested version has
// been applied, i.e. the cursor moved past TotalChunk.
func (p SyncProgress) ChunksCompleted() bool {
	if p.CurrentChunk < FirstChunk || p.TotalChunk == 0 {
		return false
	}
	return p.CurrentChunk > p.TotalChunk
}

// BytesTransferred is the number of bytes applied during the current cycle.
func (p SyncProgress) BytesTransferred() int64 {
	return p.TotalSizeInBytes - p.RemainingBytes
}

// NoPendingDownload reports whether no download cycle is currently targeting
// a version other than the applied one. True for the zero value (first run).
func (p SyncProgress) NoPendingDownload() bool {
	return p.CurrentVersion == p.RequestedVersion
}
