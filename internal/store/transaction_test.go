package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunInTransaction(t *testing.T) {
	t.Parallel()

	t.Run("commits on success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		mock.ExpectBegin()
		mock.ExpectCommit()

		err = RunInTransaction(context.Background(), db, func(context.Context, *sql.Tx) error { return nil })
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rolls back on error", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		mock.ExpectBegin()
		mock.ExpectRollback()

		want := errors.New("insert failed")
		err = RunInTransaction(context.Background(), db, func(context.Context, *sql.Tx) error { return want })
		assert.Same(t, want, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("reports rollback failure", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		mock.ExpectBegin()
		mock.ExpectRollback().WillReturnError(errors.New("connection reset"))

		want := errors.New("insert failed")
		err = RunInTransaction(context.Background(), db, func(context.Context, *sql.Tx) error { return want })
		require.Error(t, err)
		assert.ErrorIs(t, err, want)
		assert.Contains(t, err.Error(), "connection reset")
	})

	t.Run("begin failure", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		mock.ExpectBegin().WillReturnError(errors.New("too many connections"))

		called := false
		err = RunInTransaction(context.Background(), db, func(context.Context, *sql.Tx) error {
			called = true
			return nil
		})
		require.Error(t, err)
		assert.False(t, called)
		assert.Contains(t, err.Error(), "failed to begin transaction")
	})

	t.Run("rolls back and re-panics", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		mock.ExpectBegin()
		mock.ExpectRollback()

		assert.PanicsWithValue(t, "boom", func() {
			_ = RunInTransaction(context.Background(), db, func(context.Context, *sql.Tx) error {
				panic("boom")
			})
		})
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestErrorHelpers(t *testing.T) {
	t.Parallel()

	assert.True(t, IsNotFoundError(ErrProfileNotFound))
	assert.True(t, IsNotFoundError(NewStoreError("profile", "get", "lookup failed", ErrProfileNotFound)))
	assert.False(t, IsNotFoundError(ErrProfileExists))
	assert.False(t, IsNotFoundError(nil))

	assert.True(t, IsDuplicateError(ErrProfileExists))
	assert.False(t, IsDuplicateError(errors.New("other")))

	err := NewStoreError("student", "create", "insert failed", ErrInvalidEntity)
	assert.Equal(t, "create operation on student failed: insert failed: invalid entity", err.Error())
	assert.Equal(t, "list operation on student failed: query failed",
		NewStoreError("student", "list", "query failed", nil).Error())
}
