package dto

import "time"

// AddBusRequest entrada para registrar un bus.
type AddBusRequest struct {
	StartStation   string `json:"start_station" validate:"required"`
	EndStation     string `json:"end_station" validate:"required"`
	SeatsAvailable int    `json:"seats_available" validate:"required,gt=0,lte=2147483647"`
}

// ModifyAvailabilityRequest entrada para cambiar la capacidad de un bus.
type ModifyAvailabilityRequest struct {
	ID             string `json:"id" validate:"required"`
	SeatsAvailable int    `json:"seats_available" validate:"required,gt=0,lte=2147483647"`
}

// CheckBusesRequest búsqueda de buses por ruta.
type CheckBusesRequest struct {
	StartStation string `json:"start_station" validate:"required"`
	EndStation   string `json:"end_station" validate:"required"`
}

// SeatsAvailabilityRequest consulta de disponibilidad de un bus.
type SeatsAvailabilityRequest struct {
	ID string `json:"id" validate:"required"`
}

// BusResponse salida de un bus.
type BusResponse struct {
	ID             string    `json:"id"`
	StartStation   string    `json:"start_station"`
	EndStation     string    `json:"end_station"`
	SeatsAvailable int       `json:"seats_available"`
	SeatsFilled    int       `json:"seats_filled"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// AvailabilityResponse capacidad y ocupación de un bus.
type AvailabilityResponse struct {
	SeatsAvailable int `json:"seats_available"`
	SeatsFilled    int `json:"seats_filled"`
}
