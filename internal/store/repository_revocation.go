// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/dgckit/go-dgc-verifier/internal/logger"
	"github.com/dgckit/go-dgc-verifier/models"
)

// insertBatchSize caps the number of hashes bound per INSERT so a snapshot
// chunk never exceeds the SQLite bound-parameter limit.
const insertBatchSize = 500

type revocationRepository struct {
	*DB
	logger *logger.Logger
}

func NewRevocationRepository(db *DB, logger *logger.Logger) RevocationRepository {
	return &revocationRepository{
		DB:     db,
		logger: logger,
	}
}

// ApplyChunk persists one revocation-list chunk inside a single transaction.
// A snapshot chunk inserts every listed hash; a delta chunk inserts the
// additions and removes the deletions. Either the whole chunk lands or none
// of it does.
func (r *revocationRepository) ApplyChunk(ctx context.Context, chunk models.RevocationChunk) error {
	log := logger.FromContext(ctx)

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "revocationRepository.ApplyChunk").
			Int64("version", chunk.Version).
			Int64("chunk", chunk.Chunk).
			Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if chunk.IsSnapshot() {
		if err = insertHashes(ctx, tx, chunk.RevokedHashes); err != nil {
			return err
		}
	} else {
		if err = insertHashes(ctx, tx, chunk.Delta.Insertions); err != nil {
			return err
		}
		if err = deleteHashes(ctx, tx, chunk.Delta.Deletions); err != nil {
			return err
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).
			Str("func", "revocationRepository.ApplyChunk").
			Int64("version", chunk.Version).
			Int64("chunk", chunk.Chunk).
			Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

func insertHashes(ctx context.Context, tx sq.ExecerContext, hashes []string) error {
	log := logger.FromContext(ctx)

	for start := 0; start < len(hashes); start += insertBatchSize {
		end := min(start+insertBatchSize, len(hashes))

		builder := sq.Insert("revoked_uvci").
			Options("OR IGNORE").
			Columns("hash")
		for _, hash := range hashes[start:end] {
			builder = builder.Values(hash)
		}

		query, args, err := builder.ToSql()
		if err != nil {
			log.Err(err).
				Str("func", "insertHashes").
				Msg("failed to build insert query")
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			log.Err(err).
				Str("func", "insertHashes").
				Int("batch_size", end-start).
				Msg("failed to insert revoked hashes")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	return nil
}

func deleteHashes(ctx context.Context, tx sq.ExecerContext, hashes []string) error {
	log := logger.FromContext(ctx)

	for start := 0; start < len(hashes); start += insertBatchSize {
		end := min(start+insertBatchSize, len(hashes))

		query, args, err := sq.Delete("revoked_uvci").
			Where(sq.Eq{"hash": hashes[start:end]}).
			ToSql()
		if err != nil {
			log.Err(err).
				Str("func", "deleteHashes").
				Msg("failed to build delete query")
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			log.Err(err).
				Str("func", "deleteHashes").
				Int("batch_size", end-start).
				Msg("failed to delete revoked hashes")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	return nil
}

func (r *revocationRepository) Contains(ctx context.Context, hash string) (bool, error) {
	log := logger.FromContext(ctx)

	var found bool
	row := r.DB.QueryRowContext(ctx, containsRevokedHash, hash)
	if err := row.Scan(&found); err != nil {
		log.Err(err).
			Str("func", "revocationRepository.Contains").
			Msg("failed to query revoked hash")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return found, nil
}

func (r *revocationRepository) Count(ctx context.Context) (int64, error) {
	log := logger.FromContext(ctx)

	var count int64
	row := r.DB.QueryRowContext(ctx, countRevokedHashes)
	if err := row.Scan(&count); err != nil {
		log.Err(err).
			Str("func", "revocationRepository.Count").
			Msg("failed to count revoked hashes")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count, nil
}

func (r *revocationRepository) Clear(ctx context.Context) error {
	log := logger.FromContext(ctx)

	if _, err := r.DB.ExecContext(ctx, clearRevokedHashes); err != nil {
		log.Err(err).
			Str("func", "revocationRepository.Clear").
			Msg("failed to clear revoked hashes")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
