package store

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/provenart/go-art-registry/internal/logger"
	"github.com/provenart/go-art-registry/models"
)

func newSnapshotRepo(t *testing.T) (SnapshotRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS artworks").
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo, err := NewSnapshotRepository(&DB{DB: db, logger: logger.Nop()}, logger.Nop())
	require.NoError(t, err)

	return repo, mock
}

func TestSnapshotRepository_ReplaceSnapshot(t *testing.T) {
	repo, mock := newSnapshotRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM artworks").
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec("INSERT INTO artworks").
		WithArgs("1-aaa", "TW9uYQ==", int64(100), "0xA", "Mona Lisa", models.StatusPending).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	err := repo.ReplaceSnapshot(context.Background(), []models.Artwork{
		{ID: "1-aaa", Payload: "TW9uYQ==", CreatedAt: 100, Owner: "0xA", Label: "Mona Lisa", Status: models.StatusPending},
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSnapshotRepository_ReplaceSnapshot_RollsBackOnInsertError(t *testing.T) {
	repo, mock := newSnapshotRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM artworks").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("INSERT INTO artworks").
		WillReturnError(assert.AnError)
	mock.ExpectRollback()

	err := repo.ReplaceSnapshot(context.Background(), []models.Artwork{{ID: "1-aaa"}})
	require.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSnapshotRepository_LoadSnapshot(t *testing.T) {
	repo, mock := newSnapshotRepo(t)

	rows := sqlmock.NewRows([]string{"id", "payload", "created_at", "owner", "label", "status"}).
		AddRow("2-bbb", "U2NyZWFt", int64(200), "0xB", "The Scream", "PENDING").
		AddRow("1-aaa", "TW9uYQ==", int64(100), "0xA", "Mona Lisa", "AUTHENTIC")

	mock.ExpectQuery("SELECT(.|\\s)+FROM artworks").WillReturnRows(rows)

	artworks, err := repo.LoadSnapshot(context.Background())
	require.NoError(t, err)
	require.Len(t, artworks, 2)
	assert.Equal(t, "The Scream", artworks[0].Label)
	assert.Equal(t, models.StatusAuthentic, artworks[1].Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSnapshotRepository_LoadSnapshot_Empty(t *testing.T) {
	repo, mock := newSnapshotRepo(t)

	mock.ExpectQuery("SELECT(.|\\s)+FROM artworks").
		WillReturnRows(sqlmock.NewRows([]string{"id", "payload", "created_at", "owner", "label", "status"}))

	artworks, err := repo.LoadSnapshot(context.Background())
	require.NoError(t, err)
	assert.Empty(t, artworks)
}
