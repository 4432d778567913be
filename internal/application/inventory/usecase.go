package inventory

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/unicode/norm"

	"github.com/kartheek0410/Bus-Management-API/internal/domain"
	"github.com/kartheek0410/Bus-Management-API/internal/domain/entity"
	"github.com/kartheek0410/Bus-Management-API/internal/domain/repository"
)

// LedgerUseCase registro de buses y su capacidad (seats_available / seats_filled).
// Las reservas no pasan por aquí: el motor de reservas incrementa seats_filled en su propia transacción.
type LedgerUseCase struct {
	busRepo repository.BusRepository
}

// NewLedgerUseCase construye el caso de uso.
func NewLedgerUseCase(busRepo repository.BusRepository) *LedgerUseCase {
	return &LedgerUseCase{busRepo: busRepo}
}

// Availability capacidad total y asientos ya reservados de un bus.
type Availability struct {
	SeatsAvailable int
	SeatsFilled    int
}

// CreateBus registra un bus con seats_filled = 0.
func (uc *LedgerUseCase) CreateBus(ctx context.Context, start, end string, capacity int) (*entity.Bus, error) {
	start, end = NormalizeStation(start), NormalizeStation(end)
	if start == "" || end == "" || capacity <= 0 || capacity > entity.MaxSeats {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now().UTC()
	bus := &entity.Bus{
		ID:             uuid.New().String(),
		StartStation:   start,
		EndStation:     end,
		SeatsAvailable: capacity,
		SeatsFilled:    0,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.busRepo.Create(ctx, bus); err != nil {
		return nil, err
	}
	return bus, nil
}

// SetCapacity cambia la capacidad total. No puede quedar por debajo de los asientos ya reservados.
func (uc *LedgerUseCase) SetCapacity(ctx context.Context, busID string, newCapacity int) (*entity.Bus, error) {
	busID = strings.TrimSpace(busID)
	if busID == "" || newCapacity <= 0 || newCapacity > entity.MaxSeats {
		return nil, domain.ErrInvalidInput
	}
	bus, err := uc.busRepo.UpdateCapacity(ctx, busID, newCapacity)
	if err != nil {
		return nil, err
	}
	if bus == nil {
		return nil, domain.ErrNotFound
	}
	return bus, nil
}

// QueryRoutes buses con exactamente ese origen y destino. Vacío no es error.
func (uc *LedgerUseCase) QueryRoutes(ctx context.Context, start, end string) ([]*entity.Bus, error) {
	start, end = NormalizeStation(start), NormalizeStation(end)
	if start == "" || end == "" {
		return nil, domain.ErrInvalidInput
	}
	buses, err := uc.busRepo.ListByRoute(ctx, start, end)
	if err != nil {
		return nil, err
	}
	if buses == nil {
		buses = []*entity.Bus{}
	}
	return buses, nil
}

// GetAvailability lectura puntual, sin bloqueo.
func (uc *LedgerUseCase) GetAvailability(ctx context.Context, busID string) (*Availability, error) {
	busID = strings.TrimSpace(busID)
	if busID == "" {
		return nil, domain.ErrInvalidInput
	}
	bus, err := uc.busRepo.GetByID(ctx, busID)
	if err != nil {
		return nil, err
	}
	if bus == nil {
		return nil, domain.ErrNotFound
	}
	return &Availability{SeatsAvailable: bus.SeatsAvailable, SeatsFilled: bus.SeatsFilled}, nil
}

// NormalizeStation recorta espacios y lleva el nombre a NFC, para que "Médellin" compuesto
// y descompuesto sean la misma estación.
func NormalizeStation(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}
