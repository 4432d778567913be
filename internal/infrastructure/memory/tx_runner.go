package memory

import (
	"context"
	"fmt"

	"github.com/kartheek0410/Bus-Management-API/internal/application/booking"
	"github.com/kartheek0410/Bus-Management-API/internal/domain"
	"github.com/kartheek0410/Bus-Management-API/internal/domain/repository"
)

var _ booking.TxRunner = (*Store)(nil)

// RunBooking serializa las transacciones de reserva con el lock de escritura y aplica fn sobre
// una copia; solo si fn termina sin error (y el contexto sigue vivo) la copia reemplaza al estado.
func (s *Store) RunBooking(ctx context.Context, fn func(
	busRepo repository.BusRepository,
	bookingRepo repository.BookingRepository,
) error) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrConflict, err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	work := s.data.cloneInventory()
	tx := inTx{work}
	if err := fn(&BusRepo{r: tx}, &BookingRepo{r: tx}); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrConflict, err)
	}
	s.data = work
	return nil
}
