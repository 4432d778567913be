package entity

import (
	"math"
	"time"
)

// MaxSeats tope de capacidad y de asientos por reserva (columnas INT en PostgreSQL).
const MaxSeats = math.MaxInt32

// Bus representa una ruta operada por un bus con su capacidad.
// Invariante: 0 <= SeatsFilled <= SeatsAvailable.
type Bus struct {
	ID             string
	StartStation   string
	EndStation     string
	SeatsAvailable int // techo de capacidad
	SeatsFilled    int // asientos reservados acumulados
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Remaining asientos que aún se pueden reservar.
func (b *Bus) Remaining() int {
	return b.SeatsAvailable - b.SeatsFilled
}

// CanBook indica si caben seats asientos más sin romper la invariante.
func (b *Bus) CanBook(seats int) bool {
	return seats > 0 && seats <= b.Remaining()
}
