package entity

import "time"

// Booking reserva confirmada. Inmutable una vez creada.
type Booking struct {
	ID           string
	BookingID    string // código externo de 9 dígitos
	BusID        string
	UserName     string
	UserEmail    string
	StartStation string
	EndStation   string
	SeatsBooked  int
	CreatedAt    time.Time
}
