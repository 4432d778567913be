package http

import (
	"github.com/kartheek0410/Bus-Management-API/internal/application/dto"
	"github.com/kartheek0410/Bus-Management-API/internal/domain/entity"
)

func toUserResponse(p *entity.Principal) dto.UserResponse {
	return dto.UserResponse{ID: p.ID, Name: p.Name, Email: p.Email}
}

func toAdminResponse(p *entity.Principal) dto.AdminResponse {
	return dto.AdminResponse{ID: p.ID, Name: p.Name, Email: p.Email, APIKey: p.APIKey}
}

func toBusResponse(b *entity.Bus) dto.BusResponse {
	return dto.BusResponse{
		ID:             b.ID,
		StartStation:   b.StartStation,
		EndStation:     b.EndStation,
		SeatsAvailable: b.SeatsAvailable,
		SeatsFilled:    b.SeatsFilled,
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
	}
}

func toBookingResponse(b *entity.Booking) dto.BookingResponse {
	return dto.BookingResponse{
		ID:           b.ID,
		BookingID:    b.BookingID,
		BusID:        b.BusID,
		UserName:     b.UserName,
		UserEmail:    b.UserEmail,
		StartStation: b.StartStation,
		EndStation:   b.EndStation,
		SeatsBooked:  b.SeatsBooked,
		CreatedAt:    b.CreatedAt,
	}
}
