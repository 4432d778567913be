package booking

import (
	"context"

	"github.com/kartheek0410/Bus-Management-API/internal/domain/entity"
	"github.com/kartheek0410/Bus-Management-API/internal/domain/repository"
)

// TxRunner ejecuta fn en una única transacción con repositorios atados a ella.
// Si fn devuelve error se hace rollback completo; si no, commit. Un fallo de commit,
// de serialización o de espera de bloqueo se devuelve como domain.ErrConflict.
type TxRunner interface {
	RunBooking(ctx context.Context, fn func(
		busRepo repository.BusRepository,
		bookingRepo repository.BookingRepository,
	) error) error
}

// TicketPDFGenerator genera el PDF del boleto de una reserva.
type TicketPDFGenerator interface {
	Generate(ctx context.Context, b *entity.Booking) ([]byte, error)
}
