package store

import (
	"context"
	"time"

	"github.com/dgckit/go-dgc-verifier/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// RevocationRepository is the local repository of revoked certificate
// identifier hashes.
type RevocationRepository interface {
	ApplyChunk(ctx context.Context, chunk models.RevocationChunk) error
	Contains(ctx context.Context, hash string) (bool, error)
	Count(ctx context.Context) (int64, error)
	Clear(ctx context.Context) error
}

// SyncStateRepository persists the synchronization cursor so an interrupted
// download can be resumed across restarts.
type SyncStateRepository interface {
	GetProgress(ctx context.Context) (models.SyncProgress, error)
	SaveProgress(ctx context.Context, progress models.SyncProgress) error
	ClearProgress(ctx context.Context) error
	GetLastFetch(ctx context.Context) (time.Time, error)
	SaveLastFetch(ctx context.Context, at time.Time) error
}
