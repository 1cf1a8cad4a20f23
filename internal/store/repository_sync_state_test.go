// SPDX-License-Identifier: Apache-2.0

package store

import (
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dgckit/go-dgc-verifier/internal/logger"
	"github.com/dgckit/go-dgc-verifier/models"
)

var syncStateColumns = []string{
	"current_version", "requested_version", "current_chunk", "total_chunk",
	"size_single_chunk_in_bytes", "total_size_in_bytes", "remaining_bytes",
}

func newTestSyncStateRepo(t *testing.T, db *sql.DB) SyncStateRepository {
	t.Helper()
	return NewSyncStateRepository(newDBFromSQL(db), logger.Nop())
}

func TestGetProgress(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestSyncStateRepo(t, db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT`)).
		WillReturnRows(sqlmock.NewRows(syncStateColumns).
			AddRow(int64(5), int64(7), int64(3), int64(10), int64(1024), int64(10240), int64(7168)))

	progress, err := repo.GetProgress(testContext())

	require.NoError(t, err)
	assert.Equal(t, models.SyncProgress{
		CurrentVersion:         5,
		RequestedVersion:       7,
		CurrentChunk:           3,
		TotalChunk:             10,
		SizeSingleChunkInBytes: 1024,
		TotalSizeInBytes:       10240,
		RemainingBytes:         7168,
	}, progress)
}

func TestGetProgress_FirstRun(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestSyncStateRepo(t, db)

	// миграция создаёт строку с нулями — это состояние «первый запуск»
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT`)).
		WillReturnRows(sqlmock.NewRows(syncStateColumns).
			AddRow(int64(0), int64(0), int64(0), int64(0), int64(0), int64(0), int64(0)))

	progress, err := repo.GetProgress(testContext())

	require.NoError(t, err)
	assert.True(t, progress.NoPendingDownload())
}

func TestGetProgress_ScanError(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestSyncStateRepo(t, db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT`)).
		WillReturnError(errors.New("no such table: sync_state"))

	_, err := repo.GetProgress(testContext())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrScanningRow)
}

func TestSaveProgress(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestSyncStateRepo(t, db)

	progress := models.SyncProgress{
		CurrentVersion:         5,
		RequestedVersion:       7,
		CurrentChunk:           4,
		TotalChunk:             10,
		SizeSingleChunkInBytes: 1024,
		TotalSizeInBytes:       10240,
		RemainingBytes:         6144,
	}

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE sync_state SET`)).
		WithArgs(int64(5), int64(7), int64(4), int64(10), int64(1024), int64(10240), int64(6144)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.SaveProgress(testContext(), progress)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClearProgress(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestSyncStateRepo(t, db)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE sync_state SET`)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.ClearProgress(testContext())

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetLastFetch(t *testing.T) {
	at := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)

	tests := []struct {
		name string
		row  any
		want time.Time
	}{
		{name: "fetch recorded", row: at, want: at},
		{name: "never fetched", row: nil, want: time.Time{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newTestDB(t)
			repo := newTestSyncStateRepo(t, db)

			mock.ExpectQuery(regexp.QuoteMeta(`SELECT last_fetch`)).
				WillReturnRows(sqlmock.NewRows([]string{"last_fetch"}).AddRow(tt.row))

			got, err := repo.GetLastFetch(testContext())

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSaveLastFetch(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestSyncStateRepo(t, db)

	at := time.Now().Truncate(time.Second)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE sync_state SET`)).
		WithArgs(at).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.SaveLastFetch(testContext(), at)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
