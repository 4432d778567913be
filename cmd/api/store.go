package main

import (
	"context"
	"fmt"

	"github.com/kartheek0410/Bus-Management-API/internal/application/booking"
	"github.com/kartheek0410/Bus-Management-API/internal/domain/repository"
	"github.com/kartheek0410/Bus-Management-API/internal/infrastructure/memory"
	"github.com/kartheek0410/Bus-Management-API/internal/infrastructure/postgres"
	"github.com/kartheek0410/Bus-Management-API/pkg/config"
	"github.com/kartheek0410/Bus-Management-API/pkg/logger"
)

// stores repositorios y runner transaccional del driver elegido.
type stores struct {
	users    repository.UserRepository
	admins   repository.AdminRepository
	buses    repository.BusRepository
	bookings repository.BookingRepository
	tx       booking.TxRunner
	close    func()
}

func openStores(ctx context.Context, cfg *config.Config, log *logger.Logger) (*stores, error) {
	switch cfg.Store.Driver {
	case config.StoreDriverMemory:
		log.Warn().Msg("almacén en memoria: los datos se pierden al reiniciar")
		s := memory.New()
		return &stores{
			users:    s.Users(),
			admins:   s.Admins(),
			buses:    s.Buses(),
			bookings: s.Bookings(),
			tx:       s,
			close:    func() {},
		}, nil

	case config.StoreDriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, fmt.Errorf("conexión a PostgreSQL: %w", err)
		}
		if cfg.Store.Migrate {
			applied, err := postgres.Migrate(ctx, pool)
			if err != nil {
				pool.Close()
				return nil, fmt.Errorf("migraciones: %w", err)
			}
			log.Info().Strs("files", applied).Msg("esquema aplicado")
		}
		return &stores{
			users:    postgres.NewUserRepository(pool),
			admins:   postgres.NewAdminRepository(pool),
			buses:    postgres.NewBusRepository(pool),
			bookings: postgres.NewBookingRepository(pool),
			tx:       postgres.NewTxRunner(pool, cfg.Booking.LockTimeout.Milliseconds()),
			close:    pool.Close,
		}, nil
	}
	return nil, fmt.Errorf("driver de almacenamiento desconocido %q", cfg.Store.Driver)
}
