package store

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dgckit/go-dgc-verifier/internal/logger"
	"github.com/dgckit/go-dgc-verifier/models"
)

func newTestDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

// newDBFromSQL создаёт DB из существующего *sql.DB (для тестов).
func newDBFromSQL(db *sql.DB) *DB {
	return &DB{
		DB:     db,
		logger: logger.Nop(),
	}
}

func testContext() context.Context {
	l := zerolog.Nop()
	return l.WithContext(context.Background())
}

func newTestRevocationRepo(t *testing.T, db *sql.DB) RevocationRepository {
	t.Helper()
	return NewRevocationRepository(newDBFromSQL(db), logger.Nop())
}

func TestApplyChunk_Snapshot(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRevocationRepo(t, db)

	chunk := models.RevocationChunk{
		Version:       3,
		Chunk:         1,
		RevokedHashes: []string{"h1", "h2", "h3"},
	}

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`INSERT OR IGNORE INTO revoked_uvci (hash) VALUES (?),(?),(?)`)).
		WithArgs("h1", "h2", "h3").
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectCommit()

	err := repo.ApplyChunk(testContext(), chunk)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApplyChunk_Delta(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRevocationRepo(t, db)

	chunk := models.RevocationChunk{
		Version: 4,
		Chunk:   2,
		Delta: &models.RevocationDelta{
			Insertions: []string{"new1", "new2"},
			Deletions:  []string{"old1"},
		},
	}

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`INSERT OR IGNORE INTO revoked_uvci (hash) VALUES (?),(?)`)).
		WithArgs("new1", "new2").
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM revoked_uvci WHERE hash IN (?)`)).
		WithArgs("old1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.ApplyChunk(testContext(), chunk)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApplyChunk_EmptyDelta(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRevocationRepo(t, db)

	chunk := models.RevocationChunk{
		Version: 4,
		Chunk:   3,
		Delta:   &models.RevocationDelta{},
	}

	// ни вставок, ни удалений — только пустая транзакция
	mock.ExpectBegin()
	mock.ExpectCommit()

	err := repo.ApplyChunk(testContext(), chunk)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApplyChunk_InsertError_RollsBack(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRevocationRepo(t, db)

	chunk := models.RevocationChunk{
		Version:       3,
		Chunk:         1,
		RevokedHashes: []string{"h1"},
	}

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`INSERT OR IGNORE INTO revoked_uvci`)).
		WithArgs("h1").
		WillReturnError(errors.New("disk I/O error"))
	mock.ExpectRollback()

	err := repo.ApplyChunk(testContext(), chunk)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApplyChunk_BeginError(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRevocationRepo(t, db)

	mock.ExpectBegin().WillReturnError(errors.New("database is locked"))

	err := repo.ApplyChunk(testContext(), models.RevocationChunk{RevokedHashes: []string{"h1"}})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBeginningTransaction)
}

func TestContains(t *testing.T) {
	tests := []struct {
		name    string
		hash    string
		found   bool
		scanErr error
		wantErr error
	}{
		{name: "hash present", hash: "revoked-hash", found: true},
		{name: "hash absent", hash: "clean-hash", found: false},
		{name: "query error", hash: "any", scanErr: errors.New("no such table"), wantErr: ErrExecutingQuery},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newTestDB(t)
			repo := newTestRevocationRepo(t, db)

			expect := mock.ExpectQuery(regexp.QuoteMeta(`SELECT EXISTS`)).WithArgs(tt.hash)
			if tt.scanErr != nil {
				expect.WillReturnError(tt.scanErr)
			} else {
				expect.WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(tt.found))
			}

			found, err := repo.Contains(testContext(), tt.hash)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.found, found)
		})
	}
}

func TestCount(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRevocationRepo(t, db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM revoked_uvci`)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(1250)))

	count, err := repo.Count(testContext())

	require.NoError(t, err)
	assert.Equal(t, int64(1250), count)
}

func TestClear(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRevocationRepo(t, db)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM revoked_uvci`)).
		WillReturnResult(sqlmock.NewResult(0, 1250))

	err := repo.Clear(testContext())

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
