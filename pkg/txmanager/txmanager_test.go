package txmanager

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/pkg/dbmetrics"
)

func newManager(t *testing.T) (*TransactionManager, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })
	return NewTransactionManager(dbmetrics.Wrap(sqlDB, nil)), mock
}

func serializationErr() error {
	return &pq.Error{Code: "40001", Message: "could not serialize access due to read/write dependencies among transactions"}
}

func TestDoSerializable_CommitsOnSuccess(t *testing.T) {
	tm, mock := newManager(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO appointments").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := tm.DoSerializable(context.Background(), func(ctx context.Context) error {
		assert.True(t, dbmetrics.IsInTransaction(ctx))
		_, err := dbmetrics.GetExecutor(ctx, nil).ExecContext(ctx, "INSERT INTO appointments DEFAULT VALUES")
		return err
	})

	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDoSerializable_RollsBackOnError(t *testing.T) {
	tm, mock := newManager(t)
	fnErr := errors.New("boom")

	mock.ExpectBegin()
	mock.ExpectRollback()

	err := tm.DoSerializable(context.Background(), func(ctx context.Context) error {
		return fnErr
	})

	assert.ErrorIs(t, err, fnErr)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDoSerializable_RollsBackOnPanic(t *testing.T) {
	tm, mock := newManager(t)

	mock.ExpectBegin()
	mock.ExpectRollback()

	assert.Panics(t, func() {
		_ = tm.DoSerializable(context.Background(), func(ctx context.Context) error {
			panic("unexpected")
		})
	})
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDoSerializable_NestedCallJoinsOuterTransaction(t *testing.T) {
	tm, mock := newManager(t)

	mock.ExpectBegin()
	mock.ExpectCommit()

	err := tm.DoSerializable(context.Background(), func(ctx context.Context) error {
		return tm.DoSerializable(ctx, func(ctx context.Context) error {
			return nil
		})
	})

	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDoSerializable_BeginError(t *testing.T) {
	tm, mock := newManager(t)

	mock.ExpectBegin().WillReturnError(errors.New("connection refused"))

	err := tm.DoSerializable(context.Background(), func(ctx context.Context) error {
		t.Fatal("fn must not be called")
		return nil
	})

	assert.ErrorIs(t, err, ErrBeginTx)
}

func TestDoSerializable_CommitError(t *testing.T) {
	tm, mock := newManager(t)

	mock.ExpectBegin()
	mock.ExpectCommit().WillReturnError(errors.New("connection reset"))

	err := tm.DoSerializable(context.Background(), func(ctx context.Context) error { return nil })

	assert.ErrorIs(t, err, ErrCommitTx)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDoSerializable_RetriesOnCommitSerializationFailure(t *testing.T) {
	tm, mock := newManager(t)

	mock.ExpectBegin()
	mock.ExpectCommit().WillReturnError(serializationErr())
	mock.ExpectBegin()
	mock.ExpectCommit()

	calls := 0
	err := tm.DoSerializable(context.Background(), func(ctx context.Context) error {
		calls++
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 2, calls)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDoSerializable_RetriesOnWrappedQuerySerializationFailure(t *testing.T) {
	tm, mock := newManager(t)

	mock.ExpectBegin()
	mock.ExpectRollback()
	mock.ExpectBegin()
	mock.ExpectCommit()

	calls := 0
	err := tm.DoSerializable(context.Background(), func(ctx context.Context) error {
		calls++
		if calls == 1 {
			return fmt.Errorf("usecase: failed to create appointment: %w", serializationErr())
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 2, calls)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDoSerializable_RetriesAreBounded(t *testing.T) {
	tm, mock := newManager(t)

	for i := 0; i <= MaxSerializationRetries; i++ {
		mock.ExpectBegin()
		mock.ExpectCommit().WillReturnError(serializationErr())
	}

	calls := 0
	err := tm.DoSerializable(context.Background(), func(ctx context.Context) error {
		calls++
		return nil
	})

	assert.ErrorIs(t, err, ErrSerializationRetriesExhausted)
	assert.True(t, IsSerializationFailure(err))
	assert.Equal(t, MaxSerializationRetries+1, calls)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDoSerializable_OtherErrorsAreNotRetried(t *testing.T) {
	tm, mock := newManager(t)

	mock.ExpectBegin()
	mock.ExpectRollback()

	calls := 0
	err := tm.DoSerializable(context.Background(), func(ctx context.Context) error {
		calls++
		return &pq.Error{Code: "23505"}
	})

	require.Error(t, err)
	assert.Equal(t, 1, calls)
	require.NoError(t, mock.ExpectationsWereMet())
}
