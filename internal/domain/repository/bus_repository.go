package repository

import (
	"context"

	"github.com/kartheek0410/Bus-Management-API/internal/domain/entity"
)

// BusRepository define el puerto del inventario de asientos.
// Usado dentro de transacciones para garantizar consistencia.
type BusRepository interface {
	Create(ctx context.Context, bus *entity.Bus) error
	GetByID(ctx context.Context, id string) (*entity.Bus, error)
	// GetForUpdate bloquea la fila hasta el fin de la transacción (SELECT FOR UPDATE).
	GetForUpdate(ctx context.Context, id string) (*entity.Bus, error)
	ListByRoute(ctx context.Context, startStation, endStation string) ([]*entity.Bus, error)
	// UpdateCapacity cambia seats_available solo si no queda por debajo de seats_filled.
	// Devuelve (nil, nil) si el bus no existe y domain.ErrCapacityBelowBooked si la condición falla.
	UpdateCapacity(ctx context.Context, id string, seatsAvailable int) (*entity.Bus, error)
	// IncrementFilled suma seats a seats_filled si caben; si no, domain.ErrCapacityExceeded.
	IncrementFilled(ctx context.Context, id string, seats int) error
}
