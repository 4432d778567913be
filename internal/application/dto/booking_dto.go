package dto

import "time"

// BookTicketsRequest entrada para reservar asientos.
type BookTicketsRequest struct {
	BusID string `json:"busId" validate:"required"`
	Seats int    `json:"seats" validate:"required,gt=0,lte=2147483647"`
}

// BookingDetailsRequest consulta de una reserva por su código.
type BookingDetailsRequest struct {
	BookingID string `json:"booking_id" validate:"required,len=9,numeric"`
}

// BookingResponse salida de una reserva.
type BookingResponse struct {
	ID           string    `json:"id"`
	BookingID    string    `json:"booking_id"`
	BusID        string    `json:"bus_id"`
	UserName     string    `json:"user_name"`
	UserEmail    string    `json:"user_email"`
	StartStation string    `json:"start_station"`
	EndStation   string    `json:"end_station"`
	SeatsBooked  int       `json:"seats_booked"`
	CreatedAt    time.Time `json:"created_at"`
}

// MyBookingsResponse reservas del pasajero, la más reciente primero.
type MyBookingsResponse struct {
	Total    int               `json:"total"`
	Bookings []BookingResponse `json:"bookings"`
}
