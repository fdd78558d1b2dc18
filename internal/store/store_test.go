package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"formchart/internal/models"
)

func openTemp(t *testing.T) *Store {
	t.Helper()
	s, err := Open(context.Background(), filepath.Join(t.TempDir(), "data", "userdata.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := openTemp(t)

	id, err := s.Insert(ctx, "Ann", 30, "1 Main St", 1.65)
	require.NoError(t, err)
	assert.Positive(t, id)

	records, err := s.ScanAll(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, models.Record{ID: id, Name: "Ann", Age: 30, Address: "1 Main St", Height: 1.65}, records[0])

	require.NoError(t, s.Delete(ctx, id))
	records, err = s.ScanAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestScanAllReturnsInsertionOrder(t *testing.T) {
	ctx := context.Background()
	s := openTemp(t)

	names := []string{"a", "b", "c", "d"}
	for i, n := range names {
		_, err := s.Insert(ctx, n, i, "addr", float64(i)+0.5)
		require.NoError(t, err)
	}

	records, err := s.ScanAll(ctx)
	require.NoError(t, err)
	require.Len(t, records, len(names))
	for i, r := range records {
		assert.Equal(t, names[i], r.Name)
		if i > 0 {
			assert.Greater(t, r.ID, records[i-1].ID)
		}
	}
}

func TestIDsAreNeverReused(t *testing.T) {
	ctx := context.Background()
	s := openTemp(t)

	first, err := s.Insert(ctx, "a", 1, "x", 1)
	require.NoError(t, err)
	require.NoError(t, s.Delete(ctx, first))

	second, err := s.Insert(ctx, "b", 2, "y", 2)
	require.NoError(t, err)
	assert.Greater(t, second, first)
}

func TestDeleteMissingIDIsNoop(t *testing.T) {
	ctx := context.Background()
	s := openTemp(t)

	_, err := s.Insert(ctx, "a", 1, "x", 1)
	require.NoError(t, err)

	require.NoError(t, s.Delete(ctx, 9999))
	n, err := s.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestCreateSchemaIsIdempotent(t *testing.T) {
	ctx := context.Background()
	s := openTemp(t)

	_, err := s.Insert(ctx, "a", 1, "x", 1)
	require.NoError(t, err)
	require.NoError(t, s.CreateSchema(ctx))

	n, err := s.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestReopenKeepsData(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "userdata.db")

	s, err := Open(ctx, path)
	require.NoError(t, err)
	_, err = s.Insert(ctx, "Ann", 30, "1 Main St", 1.65)
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s, err = Open(ctx, path)
	require.NoError(t, err)
	defer func() { _ = s.Close() }()

	records, err := s.ScanAll(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, path, s.Path())
}

func TestOpenInMemory(t *testing.T) {
	ctx := context.Background()
	s, err := Open(ctx, ":memory:")
	require.NoError(t, err)
	defer func() { _ = s.Close() }()

	_, err = s.Insert(ctx, "a", 1, "x", 1)
	require.NoError(t, err)
	n, err := s.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestOpenUnavailable(t *testing.T) {
	// a regular file where a directory is expected
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))

	_, err := Open(context.Background(), filepath.Join(blocker, "sub", "userdata.db"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestScanAllToleratesNulls(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	rows := sqlmock.NewRows([]string{"id", "name", "age", "address", "height"}).
		AddRow(int64(1), "Ann", int64(30), nil, nil)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, name, age, address, height FROM users ORDER BY id`)).
		WillReturnRows(rows)

	records, err := New(db).ScanAll(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, models.Record{ID: 1, Name: "Ann", Age: 30}, records[0])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStoreErrorsAreWrapped(t *testing.T) {
	boom := errors.New("disk I/O error")

	t.Run("insert", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()
		mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO users`)).
			WithArgs("Ann", 30, "1 Main St", 1.65).
			WillReturnError(boom)

		_, err = New(db).Insert(context.Background(), "Ann", 30, "1 Main St", 1.65)
		assert.ErrorIs(t, err, boom)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("delete", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()
		mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM users WHERE id = ?`)).
			WithArgs(int64(5)).
			WillReturnError(boom)

		err = New(db).Delete(context.Background(), 5)
		assert.ErrorIs(t, err, boom)
	})

	t.Run("scan", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT id`)).WillReturnError(boom)

		_, err = New(db).ScanAll(context.Background())
		assert.ErrorIs(t, err, boom)
	})

	t.Run("schema", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()
		mock.ExpectExec(regexp.QuoteMeta(`CREATE TABLE IF NOT EXISTS users`)).WillReturnError(boom)

		err = New(db).CreateSchema(context.Background())
		assert.ErrorIs(t, err, ErrUnavailable)
	})
}

func TestInsertReturnsLastInsertID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO users`)).
		WillReturnResult(sqlmock.NewResult(42, 1))

	id, err := New(db).Insert(context.Background(), "a", 1, "b", 2)
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)
}
