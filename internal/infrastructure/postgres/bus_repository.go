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

var _ repository.BusRepository = (*BusRepo)(nil)

// BusRepo implementación del puerto BusRepository sobre PostgreSQL.
type BusRepo struct {
	db Querier
}

// NewBusRepository construye el adaptador (pool o tx).
func NewBusRepository(db Querier) *BusRepo {
	return &BusRepo{db: db}
}

const busColumns = `id, start_station, end_station, seats_available, seats_filled, created_at, updated_at`

// Create persiste un bus.
func (r *BusRepo) Create(ctx context.Context, b *entity.Bus) error {
	query := `
		INSERT INTO buses (id, start_station, end_station, seats_available, seats_filled, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.Exec(ctx, query, b.ID, b.StartStation, b.EndStation, b.SeatsAvailable, b.SeatsFilled, b.CreatedAt, b.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert bus: %w", err)
	}
	return nil
}

// GetByID obtiene un bus sin bloquear la fila.
func (r *BusRepo) GetByID(ctx context.Context, id string) (*entity.Bus, error) {
	return r.getOne(ctx, `SELECT `+busColumns+` FROM buses WHERE id = $1`, id)
}

// GetForUpdate obtiene el bus con SELECT FOR UPDATE (debe llamarse dentro de una tx).
func (r *BusRepo) GetForUpdate(ctx context.Context, id string) (*entity.Bus, error) {
	return r.getOne(ctx, `SELECT `+busColumns+` FROM buses WHERE id = $1 FOR UPDATE`, id)
}

// ListByRoute buses con origen y destino exactos.
func (r *BusRepo) ListByRoute(ctx context.Context, startStation, endStation string) ([]*entity.Bus, error) {
	query := `SELECT ` + busColumns + ` FROM buses WHERE start_station = $1 AND end_station = $2 ORDER BY created_at, id`
	rows, err := r.db.Query(ctx, query, startStation, endStation)
	if err != nil {
		return nil, fmt.Errorf("list buses by route: %w", err)
	}
	defer rows.Close()

	list := []*entity.Bus{}
	for rows.Next() {
		var b entity.Bus
		if err := rows.Scan(&b.ID, &b.StartStation, &b.EndStation, &b.SeatsAvailable, &b.SeatsFilled, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan bus: %w", err)
		}
		list = append(list, &b)
	}
	return list, rows.Err()
}

// UpdateCapacity una sola sentencia condicional: no puede intercalarse con el commit de una reserva.
// Si no actualiza nada, consulta el bus para distinguir inexistente de capacidad insuficiente.
func (r *BusRepo) UpdateCapacity(ctx context.Context, id string, seatsAvailable int) (*entity.Bus, error) {
	query := `
		UPDATE buses SET seats_available = $2, updated_at = NOW()
		WHERE id = $1 AND seats_filled <= $2
		RETURNING ` + busColumns
	bus, err := r.getOne(ctx, query, id, seatsAvailable)
	if err != nil || bus != nil {
		return bus, err
	}
	current, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, nil
	}
	return nil, domain.ErrCapacityBelowBooked
}

// IncrementFilled suma seats a seats_filled solo si no supera seats_available.
func (r *BusRepo) IncrementFilled(ctx context.Context, id string, seats int) error {
	query := `
		UPDATE buses SET seats_filled = seats_filled + $2, updated_at = NOW()
		WHERE id = $1 AND $2 <= seats_available - seats_filled`
	tag, err := r.db.Exec(ctx, query, id, seats)
	if err != nil {
		return fmt.Errorf("increment seats_filled: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCapacityExceeded
	}
	return nil
}

func (r *BusRepo) getOne(ctx context.Context, query string, args ...any) (*entity.Bus, error) {
	var b entity.Bus
	err := r.db.QueryRow(ctx, query, args...).Scan(&b.ID, &b.StartStation, &b.EndStation, &b.SeatsAvailable, &b.SeatsFilled, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get bus: %w", err)
	}
	return &b, nil
}
