package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/restaurant-pos/internal/application/usecase"
	"github.com/tu-usuario/restaurant-pos/internal/domain/repository"
)

var _ usecase.TableTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunTableTx inicia una transacción, ejecuta fn con los repos de mesa y estado
// atados a la tx y hace Commit o Rollback.
func (r *TxRunner) RunTableTx(ctx context.Context, fn func(
	tables repository.TableRepository,
	statuses repository.TableStatusRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	tables := NewTableRepository(tx)
	statuses := NewTableStatusRepository(tx)

	if err := fn(tables, statuses); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
