package models

// ServerStatus describes the server-side state of the revocation list at the
// moment of a status poll. It is fetched fresh on every synchronization
// attempt and never persisted: it is the target the local store converges to.
type ServerStatus struct {
	// Version is the revocation-list version currently served.
	Version int64 `json:"version"`

	// TotalChunk is the number of chunks the payload is split into.
	TotalChunk int64 `json:"totalChunk"`

	// SizeSingleChunkInBytes is the size of a single chunk.
	SizeSingleChunkInBytes int64 `json:"sizeSingleChunkInByte"`

	// TotalSizeInBytes is the size of the whole payload.
	TotalSizeInBytes int64 `json:"totalSizeInByte"`

	// TotalRevokedCount is the number of revoked identifiers the store must
	// contain after all chunks of Version have been applied. Used as the
	// terminal consistency guard before a download is declared complete.
	TotalRevokedCount int64 `json:"totalNumberUCVI"`
}

// RevocationDelta is the incremental part of a delta chunk: identifiers to
// add to and remove from the existing revocation set. The two lists are
// disjoint by construction on the server side.
type RevocationDelta struct {
	Insertions []string `json:"insertions"`
	Deletions  []string `json:"deletions"`
}

// RevocationChunk is one chunk of the revocation-list payload (DRL) for a
// given version. Exactly one of the snapshot/delta semantics applies:
// a snapshot chunk replaces the store contents, a delta chunk mutates them.
type RevocationChunk struct {
	// Version of the revocation list this chunk belongs to. Must equal the
	// requested version or the chunk is rejected as inconsistent.
	Version int64 `json:"version"`

	// Chunk is the 1-based index of this chunk.
	Chunk int64 `json:"chunk"`

	// RevokedHashes is the snapshot payload: hashed identifiers that replace
	// the store contents. Nil for delta chunks.
	RevokedHashes []string `json:"revokedUcvi,omitempty"`

	// Delta is the incremental payload. Nil for snapshot chunks.
	Delta *RevocationDelta `json:"delta,omitempty"`

	// SizeSingleChunkInBytes is the byte size attributed to this chunk when
	// advancing download progress.
	SizeSingleChunkInBytes int64 `json:"sizeSingleChunkInByte"`
}

// IsSnapshot reports whether the chunk carries snapshot semantics
// (clear store, then insert).
func (c RevocationChunk) IsSnapshot() bool {
	return c.Delta == nil
}
