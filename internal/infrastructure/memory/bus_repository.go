package memory

import (
	"context"
	"time"

	"github.com/kartheek0410/Bus-Management-API/internal/domain"
	"github.com/kartheek0410/Bus-Management-API/internal/domain/entity"
	"github.com/kartheek0410/Bus-Management-API/internal/domain/repository"
)

// BusRepo implementación en memoria de repository.BusRepository.
type BusRepo struct {
	r runner
}

var _ repository.BusRepository = (*BusRepo)(nil)

// Create inserta un bus.
func (r *BusRepo) Create(_ context.Context, b *entity.Bus) error {
	return r.r.update(func(st *state) error {
		if _, ok := st.buses[b.ID]; ok {
			return domain.ErrDuplicate
		}
		cp := *b
		st.buses[b.ID] = &cp
		return nil
	})
}

// GetByID obtiene un bus por ID.
func (r *BusRepo) GetByID(_ context.Context, id string) (*entity.Bus, error) {
	var out *entity.Bus
	err := r.r.view(func(st *state) error {
		if b, ok := st.buses[id]; ok {
			cp := *b
			out = &cp
		}
		return nil
	})
	return out, err
}

// GetForUpdate dentro de RunBooking el lock de escritura ya está tomado; equivale a GetByID.
func (r *BusRepo) GetForUpdate(ctx context.Context, id string) (*entity.Bus, error) {
	return r.GetByID(ctx, id)
}

// ListByRoute buses con ese origen y destino.
func (r *BusRepo) ListByRoute(_ context.Context, startStation, endStation string) ([]*entity.Bus, error) {
	out := []*entity.Bus{}
	err := r.r.view(func(st *state) error {
		for _, b := range st.buses {
			if b.StartStation == startStation && b.EndStation == endStation {
				cp := *b
				out = append(out, &cp)
			}
		}
		return nil
	})
	return out, err
}

// UpdateCapacity cambia seats_available si no queda por debajo de seats_filled.
func (r *BusRepo) UpdateCapacity(_ context.Context, id string, seatsAvailable int) (*entity.Bus, error) {
	var out *entity.Bus
	err := r.r.update(func(st *state) error {
		b, ok := st.buses[id]
		if !ok {
			return nil
		}
		if b.SeatsFilled > seatsAvailable {
			return domain.ErrCapacityBelowBooked
		}
		b.SeatsAvailable = seatsAvailable
		b.UpdatedAt = time.Now().UTC()
		cp := *b
		out = &cp
		return nil
	})
	return out, err
}

// IncrementFilled suma seats a seats_filled si caben.
func (r *BusRepo) IncrementFilled(_ context.Context, id string, seats int) error {
	return r.r.update(func(st *state) error {
		b, ok := st.buses[id]
		if !ok {
			return domain.ErrNotFound
		}
		if !b.CanBook(seats) {
			return domain.ErrCapacityExceeded
		}
		b.SeatsFilled += seats
		b.UpdatedAt = time.Now().UTC()
		return nil
	})
}
