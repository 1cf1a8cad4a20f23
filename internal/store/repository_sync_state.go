package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dgckit/go-dgc-verifier/internal/logger"
	"github.com/dgckit/go-dgc-verifier/models"
)

type syncStateRepository struct {
	*DB
	logger *logger.Logger
}

func NewSyncStateRepository(db *DB, logger *logger.Logger) SyncStateRepository {
	return &syncStateRepository{
		DB:     db,
		logger: logger,
	}
}

func (s *syncStateRepository) GetProgress(ctx context.Context) (models.SyncProgress, error) {
	log := logger.FromContext(ctx)

	var progress models.SyncProgress
	row := s.DB.QueryRowContext(ctx, getSyncState)

	scanErr := row.Scan(
		&progress.CurrentVersion,
		&progress.RequestedVersion,
		&progress.CurrentChunk,
		&progress.TotalChunk,
		&progress.SizeSingleChunkInBytes,
		&progress.TotalSizeInBytes,
		&progress.RemainingBytes,
	)
	if scanErr != nil {
		log.Err(scanErr).
			Str("func", "syncStateRepository.GetProgress").
			Msg("failed to scan sync state row")
		return models.SyncProgress{}, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
	}

	return progress, nil
}

func (s *syncStateRepository) SaveProgress(ctx context.Context, progress models.SyncProgress) error {
	log := logger.FromContext(ctx)

	_, err := s.DB.ExecContext(ctx, saveSyncState,
		progress.CurrentVersion,
		progress.RequestedVersion,
		progress.CurrentChunk,
		progress.TotalChunk,
		progress.SizeSingleChunkInBytes,
		progress.TotalSizeInBytes,
		progress.RemainingBytes,
	)
	if err != nil {
		log.Err(err).
			Str("func", "syncStateRepository.SaveProgress").
			Int64("requested_version", progress.RequestedVersion).
			Int64("current_chunk", progress.CurrentChunk).
			Msg("failed to save sync state")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (s *syncStateRepository) ClearProgress(ctx context.Context) error {
	log := logger.FromContext(ctx)

	if _, err := s.DB.ExecContext(ctx, clearSyncState); err != nil {
		log.Err(err).
			Str("func", "syncStateRepository.ClearProgress").
			Msg("failed to clear sync state")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// GetLastFetch returns the time of the last successful status fetch. The
// zero time is returned (without error) when no fetch has ever completed.
func (s *syncStateRepository) GetLastFetch(ctx context.Context) (time.Time, error) {
	log := logger.FromContext(ctx)

	var lastFetch sql.NullTime
	row := s.DB.QueryRowContext(ctx, getLastFetch)
	if err := row.Scan(&lastFetch); err != nil {
		log.Err(err).
			Str("func", "syncStateRepository.GetLastFetch").
			Msg("failed to scan last fetch row")
		return time.Time{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	if !lastFetch.Valid {
		return time.Time{}, nil
	}

	return lastFetch.Time, nil
}

func (s *syncStateRepository) SaveLastFetch(ctx context.Context, at time.Time) error {
	log := logger.FromContext(ctx)

	if _, err := s.DB.ExecContext(ctx, saveLastFetch, at); err != nil {
		log.Err(err).
			Str("func", "syncStateRepository.SaveLastFetch").
			Time("at", at).
			Msg("failed to save last fetch time")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
