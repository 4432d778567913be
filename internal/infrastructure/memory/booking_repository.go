package memory

import (
	"cmp"
	"context"
	"slices"

	"github.com/kartheek0410/Bus-Management-API/internal/domain"
	"github.com/kartheek0410/Bus-Management-API/internal/domain/entity"
	"github.com/kartheek0410/Bus-Management-API/internal/domain/repository"
)

// BookingRepo implementación en memoria de repository.BookingRepository.
type BookingRepo struct {
	r runner
}

var _ repository.BookingRepository = (*BookingRepo)(nil)

// Create inserta una reserva; booking_id es único y el bus debe existir.
func (r *BookingRepo) Create(_ context.Context, b *entity.Booking) error {
	return r.r.update(func(st *state) error {
		if _, ok := st.bookings[b.BookingID]; ok {
			return domain.ErrDuplicate
		}
		if _, ok := st.buses[b.BusID]; !ok {
			return domain.ErrNotFound
		}
		cp := *b
		st.bookings[b.BookingID] = &cp
		return nil
	})
}

// GetByBookingID obtiene una reserva por su código.
func (r *BookingRepo) GetByBookingID(_ context.Context, bookingID string) (*entity.Booking, error) {
	var out *entity.Booking
	err := r.r.view(func(st *state) error {
		if b, ok := st.bookings[bookingID]; ok {
			cp := *b
			out = &cp
		}
		return nil
	})
	return out, err
}

// ExistsByBookingID indica si el código ya está asignado.
func (r *BookingRepo) ExistsByBookingID(_ context.Context, bookingID string) (bool, error) {
	var exists bool
	err := r.r.view(func(st *state) error {
		_, exists = st.bookings[bookingID]
		return nil
	})
	return exists, err
}

// ListByEmail reservas del pasajero ordenadas por created_at DESC, id DESC.
func (r *BookingRepo) ListByEmail(_ context.Context, email string) ([]*entity.Booking, error) {
	out := []*entity.Booking{}
	err := r.r.view(func(st *state) error {
		for _, b := range st.bookings {
			if b.UserEmail == email {
				cp := *b
				out = append(out, &cp)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	slices.SortFunc(out, func(a, b *entity.Booking) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(b.ID, a.ID)
	})
	return out, nil
}
