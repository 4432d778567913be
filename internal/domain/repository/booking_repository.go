package repository

import (
	"context"

	"github.com/kartheek0410/Bus-Management-API/internal/domain/entity"
)

// BookingRepository define el puerto de persistencia para Booking.
type BookingRepository interface {
	// Create devuelve domain.ErrDuplicate si booking_id ya existe.
	Create(ctx context.Context, booking *entity.Booking) error
	GetByBookingID(ctx context.Context, bookingID string) (*entity.Booking, error)
	ExistsByBookingID(ctx context.Context, bookingID string) (bool, error)
	// ListByEmail devuelve las reservas del pasajero, la más reciente primero.
	ListByEmail(ctx context.Context, email string) ([]*entity.Booking, error)
}
