package booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/kartheek0410/Bus-Management-API/internal/domain"
	"github.com/kartheek0410/Bus-Management-API/internal/domain/entity"
	"github.com/kartheek0410/Bus-Management-API/internal/domain/repository"
	"github.com/kartheek0410/Bus-Management-API/pkg/logger"
	"github.com/kartheek0410/Bus-Management-API/pkg/numcode"
)

// EngineConfig límites del motor.
type EngineConfig struct {
	MaxAttempts       int
	TxTimeout         time.Duration
	BookingIDAttempts int
}

// EngineUseCase reserva asientos: comprobación de capacidad, alta de la reserva e incremento
// de seats_filled dentro de la misma transacción, con la fila del bus bloqueada.
type EngineUseCase struct {
	txRunner     TxRunner
	newBookingID numcode.Generator
	cfg          EngineConfig
	log          *logger.Logger
}

// NewEngineUseCase construye el motor. gen nil usa numcode.New.
func NewEngineUseCase(txRunner TxRunner, gen numcode.Generator, cfg EngineConfig, log *logger.Logger) *EngineUseCase {
	if gen == nil {
		gen = numcode.New
	}
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}
	if cfg.BookingIDAttempts < 1 {
		cfg.BookingIDAttempts = 1
	}
	if log == nil {
		log = logger.Nop()
	}
	return &EngineUseCase{txRunner: txRunner, newBookingID: gen, cfg: cfg, log: log}
}

// BookInput datos de una reserva. Rider es el pasajero autenticado.
type BookInput struct {
	BusID string
	Seats int
	Rider *entity.Principal
}

// Book reserva Seats asientos del bus. Reintenta la transacción completa ante ErrConflict
// hasta MaxAttempts; el resto de errores se devuelven al primer intento.
func (uc *EngineUseCase) Book(ctx context.Context, in BookInput) (*entity.Booking, error) {
	in.BusID = strings.TrimSpace(in.BusID)
	if in.BusID == "" || in.Seats <= 0 || in.Seats > entity.MaxSeats || in.Rider == nil || in.Rider.Email == "" {
		return nil, domain.ErrInvalidInput
	}

	var lastErr error
	for attempt := 1; attempt <= uc.cfg.MaxAttempts; attempt++ {
		b, err := uc.attempt(ctx, in)
		if err == nil {
			return b, nil
		}
		if !errors.Is(err, domain.ErrConflict) {
			return nil, err
		}
		lastErr = err
		uc.log.Warn().Err(err).
			Str("bus_id", in.BusID).
			Int("seats", in.Seats).
			Int("attempt", attempt).
			Msg("conflicto en reserva, reintentando")
		if ctx.Err() != nil {
			break
		}
	}
	return nil, lastErr
}

func (uc *EngineUseCase) attempt(ctx context.Context, in BookInput) (*entity.Booking, error) {
	if uc.cfg.TxTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, uc.cfg.TxTimeout)
		defer cancel()
	}

	var booked *entity.Booking
	err := uc.txRunner.RunBooking(ctx, func(busRepo repository.BusRepository, bookingRepo repository.BookingRepository) error {
		bus, err := busRepo.GetForUpdate(ctx, in.BusID)
		if err != nil {
			return err
		}
		if bus == nil {
			return domain.ErrNotFound
		}
		if !bus.CanBook(in.Seats) {
			return domain.ErrCapacityExceeded
		}

		bookingID, err := uc.uniqueBookingID(ctx, bookingRepo)
		if err != nil {
			return err
		}

		b := &entity.Booking{
			ID:           uuid.New().String(),
			BookingID:    bookingID,
			BusID:        bus.ID,
			UserName:     in.Rider.Name,
			UserEmail:    in.Rider.Email,
			StartStation: bus.StartStation,
			EndStation:   bus.EndStation,
			SeatsBooked:  in.Seats,
			CreatedAt:    time.Now().UTC(),
		}
		if err := bookingRepo.Create(ctx, b); err != nil {
			if errors.Is(err, domain.ErrDuplicate) {
				return fmt.Errorf("%w: booking_id %s tomado por otra transacción", domain.ErrConflict, bookingID)
			}
			return err
		}
		if err := busRepo.IncrementFilled(ctx, bus.ID, in.Seats); err != nil {
			return err
		}
		booked = b
		return nil
	})
	if err != nil {
		return nil, err
	}
	return booked, nil
}

func (uc *EngineUseCase) uniqueBookingID(ctx context.Context, bookingRepo repository.BookingRepository) (string, error) {
	for i := 0; i < uc.cfg.BookingIDAttempts; i++ {
		id, err := uc.newBookingID()
		if err != nil {
			return "", err
		}
		exists, err := bookingRepo.ExistsByBookingID(ctx, id)
		if err != nil {
			return "", err
		}
		if !exists {
			return id, nil
		}
	}
	return "", fmt.Errorf("%w: sin booking_id libre tras %d intentos", domain.ErrConflict, uc.cfg.BookingIDAttempts)
}
