package booking

import (
	"context"
	"fmt"
	"strings"

	"github.com/kartheek0410/Bus-Management-API/internal/domain"
	"github.com/kartheek0410/Bus-Management-API/internal/domain/entity"
	"github.com/kartheek0410/Bus-Management-API/internal/domain/repository"
)

// RegistryUseCase consultas de reservas confirmadas.
type RegistryUseCase struct {
	bookingRepo repository.BookingRepository
	tickets     TicketPDFGenerator
}

// NewRegistryUseCase construye el caso de uso. tickets puede ser nil si no se sirven PDFs.
func NewRegistryUseCase(bookingRepo repository.BookingRepository, tickets TicketPDFGenerator) *RegistryUseCase {
	return &RegistryUseCase{bookingRepo: bookingRepo, tickets: tickets}
}

// FindByBookingID busca por el código público de 9 dígitos.
func (uc *RegistryUseCase) FindByBookingID(ctx context.Context, bookingID string) (*entity.Booking, error) {
	bookingID = strings.TrimSpace(bookingID)
	if bookingID == "" {
		return nil, domain.ErrInvalidInput
	}
	b, err := uc.bookingRepo.GetByBookingID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, domain.ErrNotFound
	}
	return b, nil
}

// ListByRider reservas del pasajero, más recientes primero. Lista vacía no es error.
func (uc *RegistryUseCase) ListByRider(ctx context.Context, email string) ([]*entity.Booking, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, domain.ErrInvalidInput
	}
	list, err := uc.bookingRepo.ListByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if list == nil {
		list = []*entity.Booking{}
	}
	return list, nil
}

// TicketPDF genera el boleto en PDF. Solo el pasajero dueño de la reserva puede descargarlo.
func (uc *RegistryUseCase) TicketPDF(ctx context.Context, bookingID, riderEmail string) ([]byte, string, error) {
	if uc.tickets == nil {
		return nil, "", fmt.Errorf("booking: generador de boletos no configurado")
	}
	b, err := uc.FindByBookingID(ctx, bookingID)
	if err != nil {
		return nil, "", err
	}
	if !strings.EqualFold(b.UserEmail, strings.TrimSpace(riderEmail)) {
		return nil, "", domain.ErrForbidden
	}
	pdf, err := uc.tickets.Generate(ctx, b)
	if err != nil {
		return nil, "", fmt.Errorf("generar boleto %s: %w", b.BookingID, err)
	}
	return pdf, fmt.Sprintf("boleto-%s.pdf", b.BookingID), nil
}
