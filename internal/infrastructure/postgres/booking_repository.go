package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/kartheek0410/Bus-Management-API/internal/domain"
	"github.com/kartheek0410/Bus-Management-API/internal/domain/entity"
	"github.com/kartheek0410/Bus-Management-API/internal/domain/repository"
)

var _ repository.BookingRepository = (*BookingRepo)(nil)

// BookingRepo implementación del puerto BookingRepository sobre PostgreSQL.
type BookingRepo struct {
	db Querier
}

// NewBookingRepository construye el adaptador (pool o tx).
func NewBookingRepository(db Querier) *BookingRepo {
	return &BookingRepo{db: db}
}

const bookingColumns = `id, booking_id, bus_id, user_name, user_email, start_station, end_station, seats_booked, created_at`

// Create persiste la reserva. booking_id repetido devuelve domain.ErrDuplicate.
func (r *BookingRepo) Create(ctx context.Context, b *entity.Booking) error {
	query := `
		INSERT INTO bookings (` + bookingColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.db.Exec(ctx, query,
		b.ID, b.BookingID, b.BusID, b.UserName, b.UserEmail, b.StartStation, b.EndStation, b.SeatsBooked, b.CreatedAt,
	)
	if err != nil {
		if name, ok := uniqueConstraint(err); ok && name == constraintBookingsCodeID {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert booking: %w", err)
	}
	return nil
}

// GetByBookingID obtiene una reserva por su código de 9 dígitos.
func (r *BookingRepo) GetByBookingID(ctx context.Context, bookingID string) (*entity.Booking, error) {
	var b entity.Booking
	err := r.db.QueryRow(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE booking_id = $1`, bookingID).Scan(
		&b.ID, &b.BookingID, &b.BusID, &b.UserName, &b.UserEmail, &b.StartStation, &b.EndStation, &b.SeatsBooked, &b.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get booking: %w", err)
	}
	return &b, nil
}

// ExistsByBookingID indica si el código ya está asignado.
func (r *BookingRepo) ExistsByBookingID(ctx context.Context, bookingID string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM bookings WHERE booking_id = $1)`, bookingID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check booking_id: %w", err)
	}
	return exists, nil
}

// ListByEmail reservas del pasajero, más recientes primero.
func (r *BookingRepo) ListByEmail(ctx context.Context, email string) ([]*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE user_email = $1 ORDER BY created_at DESC, id DESC`
	rows, err := r.db.Query(ctx, query, email)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer rows.Close()

	list := []*entity.Booking{}
	for rows.Next() {
		var b entity.Booking
		if err := rows.Scan(&b.ID, &b.BookingID, &b.BusID, &b.UserName, &b.UserEmail, &b.StartStation, &b.EndStation, &b.SeatsBooked, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		list = append(list, &b)
	}
	return list, rows.Err()
}
