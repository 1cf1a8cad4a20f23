// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"fmt"

	"github.com/dgckit/go-dgc-verifier/internal/gateway"
	"github.com/dgckit/go-dgc-verifier/internal/logger"
	"github.com/dgckit/go-dgc-verifier/internal/store"
	"github.com/dgckit/go-dgc-verifier/models"
)

// chunkDownloader fetches and applies one revocation-list chunk at a time.
// Chunks are strictly sequential: the advanced cursor is persisted only
// after the chunk has been durably applied, so a crash mid-chunk re-requests
// the same unacknowledged chunk on the next resume.
type chunkDownloader struct {
	gateway     gateway.Gateway
	revocations store.RevocationRepository
	syncState   store.SyncStateRepository
	logger      *logger.Logger
}

func newChunkDownloader(gw gateway.Gateway, revocations store.RevocationRepository, syncState store.SyncStateRepository, logger *logger.Logger) *chunkDownloader {
	return &chunkDownloader{
		gateway:     gw,
		revocations: revocations,
		syncState:   syncState,
		logger:      logger,
	}
}

// DownloadNext fetches chunk progress.CurrentChunk of the requested version,
// validates its version, applies it to the revocation store and returns the
// advanced, already persisted cursor.
//
// A snapshot's first chunk clears the store before applying, completing the
// clear-then-insert replacement semantics. Returns [ErrVersionMismatch] when
// the server answers with a chunk of a different version.
func (d *chunkDownloader) DownloadNext(ctx context.Context, progress models.SyncProgress) (models.SyncProgress, error) {
	chunk, err := d.gateway.FetchRevocationChunk(ctx, progress.RequestedVersion, progress.CurrentChunk)
	if err != nil {
		return progress, fmt.Errorf("fetch chunk %d of version %d: %w", progress.CurrentChunk, progress.RequestedVersion, err)
	}

	if chunk.Version != progress.RequestedVersion {
		d.logger.Warn().
			Str("func", "chunkDownloader.DownloadNext").
			Int64("requested_version", progress.RequestedVersion).
			Int64("chunk_version", chunk.Version).
			Msg("server answered with a chunk of a different version")
		return progress, ErrVersionMismatch
	}

	if chunk.IsSnapshot() && progress.CurrentChunk == models.FirstChunk {
		if err = d.revocations.Clear(ctx); err != nil {
			return progress, fmt.Errorf("clear store before snapshot: %w", err)
		}
	}

	if err = d.revocations.ApplyChunk(ctx, chunk); err != nil {
		return progress, fmt.Errorf("apply chunk %d: %w", progress.CurrentChunk, err)
	}

	chunkBytes := chunk.SizeSingleChunkInBytes
	if chunkBytes == 0 {
		chunkBytes = progress.SizeSingleChunkInBytes
	}
	progress.AdvanceChunk(chunkBytes)

	if err = d.syncState.SaveProgress(ctx, progress); err != nil {
		return progress, fmt.Errorf("persist advanced cursor: %w", err)
	}

	d.logger.Debug().
		Str("func", "chunkDownloader.DownloadNext").
		Int64("version", progress.RequestedVersion).
		Int64("next_chunk", progress.CurrentChunk).
		Int64("remaining_bytes", progress.RemainingBytes).
		Msg("chunk applied")

	return progress, nil
}
