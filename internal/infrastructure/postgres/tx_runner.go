package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kartheek0410/Bus-Management-API/internal/application/booking"
	"github.com/kartheek0410/Bus-Management-API/internal/domain"
	"github.com/kartheek0410/Bus-Management-API/internal/domain/repository"
)

var _ booking.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool        *pgxpool.Pool
	lockTimeout int64 // ms; 0 = sin límite
}

// NewTxRunner construye el runner con el pool y la espera máxima por bloqueos de fila.
func NewTxRunner(pool *pgxpool.Pool, lockTimeoutMs int64) *TxRunner {
	return &TxRunner{pool: pool, lockTimeout: lockTimeoutMs}
}

// RunBooking inicia una transacción READ COMMITTED, ejecuta fn con repos atados a la tx y hace
// Commit o Rollback. La exclusión entre reservas del mismo bus la da el SELECT ... FOR UPDATE
// de BusRepo.GetForUpdate.
func (r *TxRunner) RunBooking(ctx context.Context, fn func(
	busRepo repository.BusRepository,
	bookingRepo repository.BookingRepository,
) error) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return classifyTxError(fmt.Errorf("begin transaction: %w", err))
	}
	defer func() { _ = tx.Rollback(context.Background()) }()

	if r.lockTimeout > 0 {
		// SET no admite parámetros; el valor es un entero de configuración.
		if _, err := tx.Exec(ctx, fmt.Sprintf("SET LOCAL lock_timeout = '%dms'", r.lockTimeout)); err != nil {
			return classifyTxError(fmt.Errorf("set lock_timeout: %w", err))
		}
	}

	if err := fn(NewBusRepository(tx), NewBookingRepository(tx)); err != nil {
		return classifyTxError(err)
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%w: commit transaction: %v", domain.ErrConflict, err)
	}
	return nil
}
