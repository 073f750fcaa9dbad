package txmanager

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/m04kA/SMC-AppointmentService/pkg/dbmetrics"
)

// MaxSerializationRetries число повторов транзакции после конфликта сериализации
const MaxSerializationRetries = 3

const serializationFailure pq.ErrorCode = "40001"

var (
	ErrBeginTx                       = errors.New("txmanager: failed to begin transaction")
	ErrCommitTx                      = errors.New("txmanager: failed to commit transaction")
	ErrSerializationRetriesExhausted = errors.New("txmanager: serialization retries exhausted")
)

// TxBeginner источник транзакций (*dbmetrics.DB)
type TxBeginner interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (dbmetrics.TxExecutor, error)
}

// TransactionManager выполняет функции внутри транзакции
// Транзакция передаётся репозиториям через контекст (dbmetrics.GetExecutor)
type TransactionManager struct {
	db TxBeginner
}

// NewTransactionManager создает менеджер транзакций
func NewTransactionManager(db TxBeginner) *TransactionManager {
	return &TransactionManager{db: db}
}

// DoSerializable выполняет fn в транзакции с уровнем SERIALIZABLE
// При конфликте сериализации (SQLSTATE 40001) транзакция повторяется целиком,
// не более MaxSerializationRetries раз; fn должна быть безопасна для повторного вызова
func (m *TransactionManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	opts := &sql.TxOptions{Isolation: sql.LevelSerializable}

	var err error
	for attempt := 0; attempt <= MaxSerializationRetries; attempt++ {
		err = m.run(ctx, opts, fn)
		if !IsSerializationFailure(err) || dbmetrics.IsInTransaction(ctx) {
			return err
		}
		if ctx.Err() != nil {
			return err
		}
	}

	return fmt.Errorf("%w: %w", ErrSerializationRetriesExhausted, err)
}

// IsSerializationFailure проверяет, что транзакция отменена PostgreSQL из-за конфликта сериализации
func IsSerializationFailure(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == serializationFailure
}

func (m *TransactionManager) run(ctx context.Context, opts *sql.TxOptions, fn func(ctx context.Context) error) (err error) {
	// Вложенный вызов присоединяется к внешней транзакции
	if dbmetrics.IsInTransaction(ctx) {
		return fn(ctx)
	}

	tx, err := m.db.BeginTx(ctx, opts)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginTx, err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err = fn(dbmetrics.WithTx(ctx, tx)); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitTx, err)
	}

	return nil
}
